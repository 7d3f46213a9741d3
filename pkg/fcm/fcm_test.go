package fcm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestSend_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"name": "projects/sabi-demo/messages/123"})
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	result, err := c.Send(context.Background(), "tok-abc", "sabi-demo", "device-1",
		Notification{Title: "Paket Dikirim!", Body: "Pesanan #o42 sedang dalam perjalanan."},
		map[string]string{"order_id": "o42"})
	if err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	if gotPath != "/v1/projects/sabi-demo/messages:send" {
		t.Errorf("path = %q, want %q", gotPath, "/v1/projects/sabi-demo/messages:send")
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-abc")
	}
	if result["name"] != "projects/sabi-demo/messages/123" {
		t.Errorf("result = %v, want provider response body", result)
	}

	msg, ok := gotBody["message"].(map[string]any)
	if !ok {
		t.Fatalf("request body = %v, want message wrapper", gotBody)
	}
	if msg["token"] != "device-1" {
		t.Errorf("message.token = %v, want %q", msg["token"], "device-1")
	}
	wantNotification := map[string]any{"title": "Paket Dikirim!", "body": "Pesanan #o42 sedang dalam perjalanan."}
	if !reflect.DeepEqual(msg["notification"], wantNotification) {
		t.Errorf("message.notification = %v, want %v", msg["notification"], wantNotification)
	}
}

func TestSend_NilDataSentAsEmptyObject(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"name": "ok"})
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	if _, err := c.Send(context.Background(), "tok", "p", "d", Notification{}, nil); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	msg := gotBody["message"].(map[string]any)
	data, ok := msg["data"].(map[string]any)
	if !ok || len(data) != 0 {
		t.Errorf("message.data = %v, want empty object", msg["data"])
	}
}

func TestSend_UnregisteredError(t *testing.T) {
	errorBody := map[string]any{
		"error": map[string]any{
			"code":   float64(404),
			"status": "NOT_FOUND",
			"details": []any{
				map[string]any{
					"@type":     "type.googleapis.com/google.firebase.fcm.v1.FcmError",
					"errorCode": "UNREGISTERED",
				},
			},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(errorBody)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Send(context.Background(), "tok", "p", "dead-device", Notification{}, nil)
	if err == nil {
		t.Fatal("Send() expected error for 404 response, got nil")
	}

	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("error = %T, want *SendError", err)
	}
	if sendErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", sendErr.StatusCode)
	}
	if sendErr.ErrorCode() != "UNREGISTERED" {
		t.Errorf("ErrorCode() = %q, want UNREGISTERED", sendErr.ErrorCode())
	}
	if !IsUnregistered(err) {
		t.Error("IsUnregistered() = false, want true")
	}
	if !reflect.DeepEqual(sendErr.Body, errorBody) {
		t.Errorf("Body = %v, want decoded provider error body", sendErr.Body)
	}
}

func TestSend_OtherProviderErrorIsNotUnregistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    400,
				"status":  "INVALID_ARGUMENT",
				"details": []any{map[string]any{"errorCode": "INVALID_ARGUMENT"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Send(context.Background(), "tok", "p", "d", Notification{}, nil)
	if err == nil {
		t.Fatal("Send() expected error, got nil")
	}
	if IsUnregistered(err) {
		t.Error("IsUnregistered() = true for INVALID_ARGUMENT, want false")
	}
}

func TestSend_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Send(context.Background(), "tok", "p", "d", Notification{}, nil)

	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("error = %T, want *SendError", err)
	}
	if sendErr.ErrorCode() != "" {
		t.Errorf("ErrorCode() = %q, want empty for unparseable body", sendErr.ErrorCode())
	}
	if IsUnregistered(err) {
		t.Error("IsUnregistered() = true, want false")
	}
}

func TestIsUnregistered_PlainError(t *testing.T) {
	if IsUnregistered(errors.New("dial tcp: i/o timeout")) {
		t.Error("IsUnregistered() = true for transport error, want false")
	}
}
