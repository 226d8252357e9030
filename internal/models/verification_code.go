package models

import "time"

// DefaultCodeTTL - срок жизни по умолчанию на уровне модели.
// При выдаче кода используется config.Verification.TTLMinutes (30 минут).
const DefaultCodeTTL = 5 * time.Minute

type VerificationCode struct {
	ID        uint      `gorm:"primaryKey"`
	Target    string    `gorm:"not null;index"`
	CodeHash  string    `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	ExpiredAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (c *VerificationCode) IsExpired(now time.Time) bool {
	return c.ExpiredAt.Before(now)
}
