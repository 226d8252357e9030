package models

import "time"

type Flat struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    *uint     `gorm:"index"` // владелец, обнуляется при удалении пользователя
	CreatedAt time.Time `gorm:"not null"`

	Title         string  `gorm:"not null"`
	RoomCount     int     `gorm:"not null"`
	Address       string  `gorm:"not null"`
	Lat           float64 `gorm:"not null"`
	Lon           float64 `gorm:"not null"`
	Area          float64 `gorm:"not null"`
	PriceShort    *int
	PriceLong     *int
	GuestCount    int     `gorm:"not null"`
	BedCount      int     `gorm:"not null"`
	RestroomCount int     `gorm:"not null"`

	// Удобства
	HasBalcony     bool `gorm:"not null"`
	HasLoggia      bool `gorm:"not null"`
	Children       bool `gorm:"not null"`
	Animals        bool `gorm:"not null"`
	WashingMachine bool `gorm:"not null"`
	Fridge         bool `gorm:"not null"`
	TV             bool `gorm:"column:tv;not null"`
	Dishwasher     bool `gorm:"not null"`
	AirConditioner bool `gorm:"not null"`
	Smoking        bool `gorm:"not null"`
	Noise          bool `gorm:"not null"`
	Party          bool `gorm:"not null"`

	// Relations
	User     *User         `gorm:"foreignKey:UserID"`
	Pictures []FlatPicture `gorm:"foreignKey:FlatID"`
	Rents    []Rent        `gorm:"foreignKey:FlatID"`
}

// OwnedBy проверяет, что квартира принадлежит пользователю
func (f *Flat) OwnedBy(userID uint) bool {
	return f.UserID != nil && *f.UserID == userID
}

// AmenityColumns - колонки, по которым работает трехзначный фильтр списка
var AmenityColumns = []string{
	"has_balcony",
	"has_loggia",
	"children",
	"animals",
	"washing_machine",
	"fridge",
	"tv",
	"dishwasher",
	"air_conditioner",
	"smoking",
	"noise",
	"party",
}

type FlatPicture struct {
	ID     uint   `gorm:"primaryKey"`
	FlatID uint   `gorm:"not null;index"`
	Link   string `gorm:"not null"`
}
