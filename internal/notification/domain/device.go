package domain

import "time"

// DeviceRegistration associates a user with an FCM device token for push
// notifications. Backed by the user_devices table, which the order webhook
// producer also knows about.
type DeviceRegistration struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"column:user_id;index;not null"`
	Token      string    `json:"-" gorm:"column:fcm_token;uniqueIndex;not null"` // Don't expose token in JSON
	DeviceInfo string    `json:"device_info"`                                    // Browser/device metadata
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (DeviceRegistration) TableName() string {
	return "user_devices"
}
