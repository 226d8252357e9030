package models

// Device - устройство для push-уведомлений, ключ - firebase id
type Device struct {
	ID                 uint    `gorm:"primaryKey"`
	UserID             uint    `gorm:"not null;index"`
	FirebaseID         *string `gorm:"uniqueIndex"`
	UserAgent          *string
	EnableNotification bool    `gorm:"not null"`
}
