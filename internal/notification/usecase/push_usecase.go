package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/rayhanoval/ecommerce-sabi/internal/notification/domain"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/dto"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/repository"
	"github.com/rayhanoval/ecommerce-sabi/pkg/config"
	"github.com/rayhanoval/ecommerce-sabi/pkg/fcm"
)

// Messenger is the outbound push provider: it mints bearer tokens and
// delivers one message per device token.
type Messenger interface {
	MintAccessToken(ctx context.Context, sa *fcm.ServiceAccount) (string, error)
	Send(ctx context.Context, accessToken, projectID, deviceToken string, n fcm.Notification, data map[string]string) (map[string]any, error)
}

// PushUsecase resolves a push request and fans it out to the recipient's
// registered devices. It also manages the registrations themselves.
type PushUsecase interface {
	SendPush(ctx context.Context, req *dto.PushRequest) (*dto.PushResult, error)
	RegisterDevice(userID, token, deviceInfo string) error
	UnregisterDevice(token string) error
}

// pushUsecase implements PushUsecase interface
type pushUsecase struct {
	deviceRepo repository.DeviceRepository
	messenger  Messenger
	config     *config.Config
}

// NewPushUsecase creates a new instance of pushUsecase
func NewPushUsecase(deviceRepo repository.DeviceRepository, messenger Messenger, cfg *config.Config) PushUsecase {
	return &pushUsecase{
		deviceRepo: deviceRepo,
		messenger:  messenger,
		config:     cfg,
	}
}

// SendPush runs the full pipeline: resolve the intent, load credentials,
// look up devices, mint an access token and fan out one send per device.
// Errors before the fan-out abort the whole request; per-device failures
// are reported in the outcome slice and never abort anything.
func (u *pushUsecase) SendPush(ctx context.Context, req *dto.PushRequest) (*dto.PushResult, error) {
	intent, err := resolveIntent(req)
	if err != nil {
		return nil, err
	}

	sa, err := u.loadServiceAccount()
	if err != nil {
		return nil, err
	}

	log.Printf("[Push] Fetching devices for user %s", intent.UserID)
	devices, err := u.deviceRepo.GetTokensByUserID(intent.UserID)
	if err != nil {
		return nil, &domain.DependencyError{Err: fmt.Errorf("fetch devices: %w", err)}
	}
	if len(devices) == 0 {
		log.Printf("[Push] No devices found for user %s", intent.UserID)
		return &dto.PushResult{NoDevices: true}, nil
	}

	log.Printf("[Push] Found %d devices for user %s, minting access token", len(devices), intent.UserID)
	accessToken, err := u.messenger.MintAccessToken(ctx, sa)
	if err != nil {
		return nil, &domain.DependencyError{Err: fmt.Errorf("mint access token: %w", err)}
	}

	// Fire all sends concurrently, join, and keep outcomes in device order.
	outcomes := make([]dto.SendOutcome, len(devices))
	var wg sync.WaitGroup
	for i, device := range devices {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			outcomes[i] = u.sendToDevice(ctx, accessToken, sa.ProjectID, token, intent)
		}(i, device.Token)
	}
	wg.Wait()

	log.Printf("[Push] All %d sends processed for user %s", len(devices), intent.UserID)
	return &dto.PushResult{Outcomes: outcomes}, nil
}

// sendToDevice delivers to a single device and classifies the result. It
// never returns an error: every failure becomes an outcome value.
func (u *pushUsecase) sendToDevice(ctx context.Context, accessToken, projectID, deviceToken string, intent *domain.Intent) dto.SendOutcome {
	result, err := u.messenger.Send(ctx, accessToken, projectID, deviceToken,
		fcm.Notification{Title: intent.Title, Body: intent.Body}, intent.Data)
	if err == nil {
		return dto.SendOutcome{Success: true, Result: result}
	}

	var sendErr *fcm.SendError
	if errors.As(err, &sendErr) {
		if fcm.IsUnregistered(err) {
			log.Printf("[Push] Device token unregistered, removing registration")
			// Cleanup is best-effort and independent of the delivery outcome
			if delErr := u.deviceRepo.DeleteToken(deviceToken); delErr != nil {
				log.Printf("[Push] Cleanup of unregistered token failed: %v", delErr)
			}
		}
		return dto.SendOutcome{Success: false, Error: sendErr.Body}
	}

	log.Printf("[Push] Send error: %v", err)
	return dto.SendOutcome{Success: false, Error: err.Error()}
}

// RegisterDevice stores or refreshes one device token for a user
func (u *pushUsecase) RegisterDevice(userID, token, deviceInfo string) error {
	if userID == "" || token == "" {
		return &domain.ValidationError{Err: errors.New("user_id and fcm_token are required")}
	}
	return u.deviceRepo.SaveToken(userID, token, deviceInfo)
}

// UnregisterDevice removes one device token
func (u *pushUsecase) UnregisterDevice(token string) error {
	if token == "" {
		return &domain.ValidationError{Err: errors.New("fcm_token is required")}
	}
	return u.deviceRepo.DeleteToken(token)
}

// loadServiceAccount parses the credential material fresh for every request,
// matching the per-invocation load of the function this service replaced.
func (u *pushUsecase) loadServiceAccount() (*fcm.ServiceAccount, error) {
	if u.config.ServiceAccountJSON == "" {
		return nil, &domain.ConfigError{Err: errors.New("missing FCM_SERVICE_ACCOUNT configuration")}
	}
	sa, err := fcm.ParseServiceAccount(u.config.ServiceAccountJSON)
	if err != nil {
		return nil, &domain.ConfigError{Err: err}
	}
	return sa, nil
}

// resolveIntent normalizes either payload form into a single Intent before
// any business logic runs. Direct fields win; a webhook record only applies
// when no direct user_id is present.
func resolveIntent(req *dto.PushRequest) (*domain.Intent, error) {
	if req.UserID == "" && req.Record != nil && req.Record.UserID != "" {
		log.Printf("[Push] Deriving notification from webhook record %s (status %s)", req.Record.ID, req.Record.Status)
		intent := domain.OrderUpdateIntent(*req.Record)
		return &intent, nil
	}

	if req.UserID == "" {
		return nil, &domain.ValidationError{Err: domain.ErrMissingUserID}
	}

	data := req.Data
	if data == nil {
		data = map[string]string{}
	}
	return &domain.Intent{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
		Data:   data,
	}, nil
}
