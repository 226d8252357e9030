package services

import (
	"encoding/json"
	"time"

	"axas_backend/internal/models"
	"axas_backend/internal/services/dto"
)

func toProfileView(u *models.User) *dto.ProfileView {
	return &dto.ProfileView{
		ID:             u.ID,
		Tel:            u.Tel,
		Avatar:         u.Avatar,
		Name:           u.Name,
		Surname:        u.Surname,
		Patronymic:     u.Patronymic,
		PassportIssued: u.PassportIssued,
		IssueDate:      u.IssueDate,
		DepartmentCode: u.DepartmentCode,
		PassportSeries: u.PassportSeries,
		PassportNum:    u.PassportNum,
		Gender:         u.Gender,
		Birthdate:      u.Birthdate,
		Birthplace:     u.Birthplace,
		PassportPhoto:  u.PassportPhoto,
	}
}

func toDeviceView(d *models.Device) dto.DeviceView {
	return dto.DeviceView{
		Device:              d.FirebaseID,
		EnableNotifications: d.EnableNotification,
		UserAgent:           d.UserAgent,
	}
}

func pictureLinks(pictures []models.FlatPicture) []string {
	links := make([]string, 0, len(pictures))
	for _, p := range pictures {
		links = append(links, p.Link)
	}
	return links
}

func toFlatView(f *models.Flat, now time.Time) *dto.FlatView {
	availability := ComputeAvailability(f.Rents, now)
	return &dto.FlatView{
		ID:             f.ID,
		Title:          f.Title,
		RoomCount:      f.RoomCount,
		HasBalcony:     f.HasBalcony,
		HasLoggia:      f.HasLoggia,
		Address:        f.Address,
		Lat:            f.Lat,
		Lon:            f.Lon,
		Area:           f.Area,
		PriceShort:     f.PriceShort,
		PriceLong:      f.PriceLong,
		Children:       f.Children,
		Animals:        f.Animals,
		WashingMachine: f.WashingMachine,
		Fridge:         f.Fridge,
		TV:             f.TV,
		Dishwasher:     f.Dishwasher,
		AirConditioner: f.AirConditioner,
		Smoking:        f.Smoking,
		Noise:          f.Noise,
		Party:          f.Party,
		GuestCount:     f.GuestCount,
		BedCount:       f.BedCount,
		RestroomCount:  f.RestroomCount,
		NearRent:       availability.NearRent.Unix(),
		Pictures:       pictureLinks(f.Pictures),
		Status:         availability.Status,
	}
}

func toFlatShortView(f *models.Flat, now time.Time) dto.FlatShortView {
	availability := ComputeAvailability(f.Rents, now)
	return dto.FlatShortView{
		ID:         f.ID,
		Title:      f.Title,
		Address:    f.Address,
		PriceShort: f.PriceShort,
		PriceLong:  f.PriceLong,
		Pictures:   pictureLinks(f.Pictures),
		Lat:        f.Lat,
		Lon:        f.Lon,
		NearRent:   availability.NearRent.Unix(),
		Status:     availability.Status,
	}
}

func toRentView(r *models.Rent, now time.Time) dto.RentView {
	view := dto.RentView{
		ID:      r.ID,
		StartAt: r.StartAt.Unix(),
		EndAt:   r.EndAt.Unix(),
		Status:  RentStatus(r, now),
	}
	if r.Flat != nil {
		view.Flat = toFlatShortView(r.Flat, now)
		view.TotalPrice = TotalPrice(r.StartAt, r.EndAt, r.Flat.PriceLong)
	}
	if r.User != nil {
		view.User = &dto.RentUserView{
			ID:         r.User.ID,
			Tel:        r.User.Tel,
			Surname:    r.User.Surname,
			Name:       r.User.Name,
			Patronymic: r.User.Patronymic,
		}
	}
	return view
}

func toNotificationView(n *models.Notification) dto.NotificationView {
	data := json.RawMessage(n.Data)
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return dto.NotificationView{
		ID:        n.ID,
		Text:      n.Text,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Unix(),
		Data:      data,
	}
}
