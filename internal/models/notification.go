package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index"`
	Text      string         `gorm:"not null"`
	Read      bool           `gorm:"not null;default:false"`
	Data      datatypes.JSON // {"flat_id": 1, "rent_id": 3}
	CreatedAt time.Time      `gorm:"not null;index"`
}
