package testutil

import (
	"testing"
	"time"

	"axas_backend/internal/models"

	"gorm.io/gorm"
)

func StrPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func UintPtr(u uint) *uint { return &u }

// CreateUser создает пользователя с указанным телефоном
func CreateUser(t *testing.T, db *gorm.DB, tel string) *models.User {
	t.Helper()
	user := &models.User{Tel: StrPtr(tel)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", tel, err)
	}
	return user
}

// NewFlat возвращает квартиру со всеми обязательными полями
func NewFlat(ownerID uint, title string) *models.Flat {
	return &models.Flat{
		UserID:        UintPtr(ownerID),
		Title:         title,
		RoomCount:     2,
		Address:       "Krasnodar, Krasnaya st. 1",
		Lat:           45.035,
		Lon:           38.975,
		Area:          54.5,
		PriceShort:    IntPtr(2500),
		PriceLong:     IntPtr(2000),
		GuestCount:    4,
		BedCount:      2,
		RestroomCount: 1,
	}
}

// CreateFlat сохраняет квартиру; mutate позволяет поменять поля перед сохранением
func CreateFlat(t *testing.T, db *gorm.DB, ownerID uint, title string, mutate ...func(*models.Flat)) *models.Flat {
	t.Helper()
	flat := NewFlat(ownerID, title)
	for _, m := range mutate {
		m(flat)
	}
	if err := db.Omit("User", "Pictures", "Rents").Create(flat).Error; err != nil {
		t.Fatalf("Не удалось создать квартиру %s: %v", title, err)
	}
	return flat
}

// CreateRent сохраняет бронирование [start, end)
func CreateRent(t *testing.T, db *gorm.DB, flatID, userID uint, start, end time.Time) *models.Rent {
	t.Helper()
	rent := &models.Rent{
		FlatID:  flatID,
		UserID:  UintPtr(userID),
		StartAt: start.UTC(),
		EndAt:   end.UTC(),
	}
	if err := db.Omit("Flat", "User").Create(rent).Error; err != nil {
		t.Fatalf("Не удалось создать бронирование: %v", err)
	}
	return rent
}

// FixedClock возвращает функцию времени, всегда отдающую now
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
