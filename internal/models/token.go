package models

import "time"

// Token - непрозрачный access- или refresh-токен
type Token struct {
	ID        uint      `gorm:"primaryKey"`
	Value     string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (t *Token) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// TokenPair - сессия одного устройства
type TokenPair struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index"`
	Device         *string
	AccessTokenID  uint    `gorm:"not null;uniqueIndex"`
	RefreshTokenID uint    `gorm:"not null;uniqueIndex"`

	User         *User  `gorm:"foreignKey:UserID"`
	AccessToken  *Token `gorm:"foreignKey:AccessTokenID"`
	RefreshToken *Token `gorm:"foreignKey:RefreshTokenID"`
}
