package services

import (
	"sort"
	"time"

	"axas_backend/internal/models"
)

// Статусы квартиры
const (
	FlatStatusFree     = "Free"
	FlatStatusReserved = "Reserved"
	FlatStatusRented   = "Rented"
)

// Статусы бронирования
const (
	RentStatusPast     = "past"
	RentStatusCurrent  = "current"
	RentStatusUpcoming = "upcoming"
)

// Availability - состояние квартиры на момент now
type Availability struct {
	Status      string
	NearRent    time.Time
	CurrentRent *models.Rent
}

// ComputeAvailability считает статус и ближайший момент освобождения квартиры.
// rents - все бронирования одной квартиры.
func ComputeAvailability(rents []models.Rent, now time.Time) Availability {
	ordered := make([]models.Rent, len(rents))
	copy(ordered, rents)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	result := Availability{Status: FlatStatusFree, NearRent: now}

	for i := range ordered {
		if ordered[i].EndAt.After(now) {
			result.CurrentRent = &ordered[i]
			break
		}
	}
	if result.CurrentRent != nil {
		if result.CurrentRent.StartAt.After(now) {
			result.Status = FlatStatusReserved
		} else {
			result.Status = FlatStatusRented
		}
	}

	var covering *models.Rent
	for i := range ordered {
		if ordered[i].StartAt.Before(now) && ordered[i].EndAt.After(now) {
			covering = &ordered[i]
			break
		}
	}
	if covering == nil {
		return result
	}

	// идем по цепочке бронирований, начинающихся ровно в момент окончания предыдущего
	visited := map[uint]bool{covering.ID: true}
	near := covering.EndAt
	for {
		var next *models.Rent
		for i := range ordered {
			if !visited[ordered[i].ID] && ordered[i].StartAt.Equal(near) {
				next = &ordered[i]
				break
			}
		}
		if next == nil {
			break
		}
		visited[next.ID] = true
		near = next.EndAt
	}
	result.NearRent = near
	return result
}

// RentStatus - прошедшее, текущее или предстоящее бронирование
func RentStatus(rent *models.Rent, now time.Time) string {
	switch {
	case rent.EndAt.Before(now):
		return RentStatusPast
	case !rent.StartAt.After(now):
		return RentStatusCurrent
	default:
		return RentStatusUpcoming
	}
}

// TotalPrice - полные сутки между началом и концом, умноженные на длинную цену.
// Короткая цена в расчете не участвует при любой длительности.
func TotalPrice(start, end time.Time, priceLong *int) *int {
	if priceLong == nil {
		return nil
	}
	days := int(end.Sub(start) / (24 * time.Hour))
	if end.Before(start) && end.Sub(start)%(24*time.Hour) != 0 {
		days--
	}
	total := days * *priceLong
	return &total
}
