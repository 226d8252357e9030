package models

import "time"

// Rent - бронирование квартиры на полуинтервал [StartAt, EndAt)
type Rent struct {
	ID      uint      `gorm:"primaryKey"`
	FlatID  uint      `gorm:"not null;index"`
	UserID  *uint     `gorm:"index"`
	StartAt time.Time `gorm:"not null;index"`
	EndAt   time.Time `gorm:"not null;index"`

	Flat *Flat `gorm:"foreignKey:FlatID"`
	User *User `gorm:"foreignKey:UserID"`
}
