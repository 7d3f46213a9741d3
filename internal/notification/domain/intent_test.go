package domain

import (
	"reflect"
	"testing"
)

func TestOrderUpdateIntent_StatusMessages(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "shipped",
			status:    "shipped",
			wantTitle: "Paket Dikirim!",
			wantBody:  "Pesanan #o42 sedang dalam perjalanan.",
		},
		{
			name:      "shipped is matched case-insensitively",
			status:    "Shipped",
			wantTitle: "Paket Dikirim!",
			wantBody:  "Pesanan #o42 sedang dalam perjalanan.",
		},
		{
			name:      "completed",
			status:    "completed",
			wantTitle: "Pesanan Selesai!",
			wantBody:  "Pesanan #o42 telah selesai. Terima kasih telah berbelanja!",
		},
		{
			name:      "completed uppercase",
			status:    "COMPLETED",
			wantTitle: "Pesanan Selesai!",
			wantBody:  "Pesanan #o42 telah selesai. Terima kasih telah berbelanja!",
		},
		{
			name:      "any other status falls through to the generic message",
			status:    "pending",
			wantTitle: "Order Updated",
			wantBody:  "Your order #o42 status is now pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := OrderUpdateIntent(WebhookRecord{UserID: "u1", ID: "o42", Status: tt.status})

			if intent.UserID != "u1" {
				t.Errorf("UserID = %q, want %q", intent.UserID, "u1")
			}
			if intent.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", intent.Title, tt.wantTitle)
			}
			if intent.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", intent.Body, tt.wantBody)
			}
		})
	}
}

func TestOrderUpdateIntent_DataIsAlwaysTheFixedShape(t *testing.T) {
	intent := OrderUpdateIntent(WebhookRecord{UserID: "u1", ID: "o42", Status: "Shipped"})

	want := map[string]string{
		"type":         "order_update",
		"status":       "Shipped", // original casing preserved in data
		"order_id":     "o42",
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}
	if !reflect.DeepEqual(intent.Data, want) {
		t.Errorf("Data = %v, want %v", intent.Data, want)
	}
}
