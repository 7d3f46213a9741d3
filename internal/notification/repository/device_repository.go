package repository

import (
	"time"

	"github.com/rayhanoval/ecommerce-sabi/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRepository defines the interface for device registration operations
type DeviceRepository interface {
	SaveToken(userID, token, deviceInfo string) error
	GetTokensByUserID(userID string) ([]domain.DeviceRegistration, error)
	DeleteToken(token string) error
	DeleteTokensByUserID(userID string) error
}

// deviceRepository implements DeviceRepository interface
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of deviceRepository
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// SaveToken saves or updates a device registration (atomic upsert)
func (r *deviceRepository) SaveToken(userID, token, deviceInfo string) error {
	device := &domain.DeviceRegistration{
		ID:         uuid.New().String(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// Atomic upsert: INSERT ... ON CONFLICT (fcm_token) DO UPDATE
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fcm_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_info", "updated_at"}),
	}).Create(device).Error
}

// GetTokensByUserID returns all device registrations for a user
func (r *deviceRepository) GetTokensByUserID(userID string) ([]domain.DeviceRegistration, error) {
	var devices []domain.DeviceRegistration
	err := r.db.Where("user_id = ?", userID).Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// DeleteToken removes a specific device registration
func (r *deviceRepository) DeleteToken(token string) error {
	return r.db.Where("fcm_token = ?", token).Delete(&domain.DeviceRegistration{}).Error
}

// DeleteTokensByUserID removes all device registrations for a user
func (r *deviceRepository) DeleteTokensByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.DeviceRegistration{}).Error
}
