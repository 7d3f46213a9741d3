package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://fcm.googleapis.com"

	// Provider error code meaning the device token will never accept
	// deliveries again and should be purged.
	errorCodeUnregistered = "UNREGISTERED"
)

// Client talks to the FCM HTTP v1 API directly. One instance is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client

	// BaseURL and TokenURL exist so tests can point the client at local
	// servers. Production code leaves the defaults alone.
	BaseURL  string
	TokenURL string
}

// NewClient creates a new FCM client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    defaultBaseURL,
		TokenURL:   tokenURL,
	}
}

// Notification is the user-visible part of a push message
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type message struct {
	Token        string            `json:"token"`
	Notification Notification      `json:"notification"`
	Data         map[string]string `json:"data"`
}

type sendRequest struct {
	Message message `json:"message"`
}

// SendError is a non-2xx response from the FCM API. Body holds the decoded
// provider error object so callers can report it verbatim.
type SendError struct {
	StatusCode int
	Body       map[string]any
}

func (e *SendError) Error() string {
	return fmt.Sprintf("fcm send failed with status %d", e.StatusCode)
}

// ErrorCode extracts error.details[0].errorCode from the provider error body.
// Returns "" when the body does not carry one.
func (e *SendError) ErrorCode() string {
	errObj, ok := e.Body["error"].(map[string]any)
	if !ok {
		return ""
	}
	details, ok := errObj["details"].([]any)
	if !ok || len(details) == 0 {
		return ""
	}
	first, ok := details[0].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := first["errorCode"].(string)
	return code
}

// IsUnregistered reports whether err signals a permanently invalid device
// token.
func IsUnregistered(err error) bool {
	var sendErr *SendError
	return errors.As(err, &sendErr) && sendErr.ErrorCode() == errorCodeUnregistered
}

// Send delivers one message to one device token. FCM requires every data
// value to be a string, so data is sent as-is with nil normalized to {}.
func (c *Client) Send(ctx context.Context, accessToken, projectID, deviceToken string, n Notification, data map[string]string) (map[string]any, error) {
	if data == nil {
		data = map[string]string{}
	}

	payload, err := json.Marshal(sendRequest{
		Message: message{Token: deviceToken, Notification: n, Data: data},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", c.BaseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = map[string]any{}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &SendError{StatusCode: resp.StatusCode, Body: decoded}
	}

	return decoded, nil
}
