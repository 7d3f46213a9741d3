package domain

import (
	"fmt"
	"strings"
)

// WebhookRecord is the row image carried by an order-change webhook.
// Additional columns in the payload are ignored.
type WebhookRecord struct {
	UserID string `json:"user_id"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Intent is a fully resolved notification: who to reach and what to say.
type Intent struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]string
}

const clickAction = "FLUTTER_NOTIFICATION_CLICK"

// OrderUpdateIntent derives the notification for an order-change webhook
// record. Shipped and completed orders get their own wording; every other
// status falls through to the generic message. Data is always the fixed
// order_update shape the mobile app routes on, never merged with anything.
func OrderUpdateIntent(rec WebhookRecord) Intent {
	title := "Order Updated"
	body := fmt.Sprintf("Your order #%s status is now %s", rec.ID, rec.Status)

	switch strings.ToLower(rec.Status) {
	case "shipped":
		title = "Paket Dikirim!"
		body = fmt.Sprintf("Pesanan #%s sedang dalam perjalanan.", rec.ID)
	case "completed":
		title = "Pesanan Selesai!"
		body = fmt.Sprintf("Pesanan #%s telah selesai. Terima kasih telah berbelanja!", rec.ID)
	}

	return Intent{
		UserID: rec.UserID,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"type":         "order_update",
			"status":       rec.Status,
			"order_id":     rec.ID,
			"click_action": clickAction,
		},
	}
}
