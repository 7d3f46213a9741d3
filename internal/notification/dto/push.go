package dto

import (
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/domain"
)

// PushRequest is the union of the two accepted payload shapes: a direct send
// and an order-change webhook. Unknown fields are ignored.
type PushRequest struct {
	UserID string                `json:"user_id"`
	Title  string                `json:"title"`
	Body   string                `json:"body"`
	Data   map[string]string     `json:"data"`
	Record *domain.WebhookRecord `json:"record"`
}

// SendOutcome is one device's delivery result. Error carries either the
// provider's error object or a transport error string.
type SendOutcome struct {
	Success bool           `json:"success"`
	Result  map[string]any `json:"result,omitempty"`
	Error   any            `json:"error,omitempty"`
}

// PushResult aggregates a push request. NoDevices marks the informational
// "nothing registered" outcome, which is not an error.
type PushResult struct {
	NoDevices bool
	Outcomes  []SendOutcome
}

// RegisterDeviceRequest registers (or refreshes) one device token for a user.
type RegisterDeviceRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Token      string `json:"fcm_token" binding:"required"`
	DeviceInfo string `json:"device_info"`
}
