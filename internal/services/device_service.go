package services

import (
	"errors"

	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"

	"gorm.io/gorm"
)

type DeviceService interface {
	// UpdateSettings создает или переназначает устройство пользователю и возвращает все его устройства.
	// firebaseID == nil - устройство не передано, меняется только список.
	UpdateSettings(db *gorm.DB, userID uint, firebaseID *string, enable bool, userAgent *string) ([]dto.DeviceView, error)
}

type deviceService struct {
	deviceRepo repositories.DeviceRepository
}

func NewDeviceService(deviceRepo repositories.DeviceRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) UpdateSettings(db *gorm.DB, userID uint, firebaseID *string, enable bool, userAgent *string) ([]dto.DeviceView, error) {
	var devices []models.Device
	err := db.Transaction(func(tx *gorm.DB) error {
		if firebaseID != nil && *firebaseID != "" {
			device, err := s.deviceRepo.FindByFirebaseID(tx, *firebaseID)
			if errors.Is(err, repositories.ErrDeviceNotFound) {
				device = &models.Device{FirebaseID: firebaseID}
			} else if err != nil {
				return err
			}

			device.UserID = userID
			device.EnableNotification = enable
			device.UserAgent = userAgent
			if err := s.deviceRepo.Save(tx, device); err != nil {
				return err
			}
		}

		var err error
		devices, err = s.deviceRepo.FindByUser(tx, userID)
		return err
	})
	if err != nil {
		return nil, persistenceError(err, "device")
	}

	views := make([]dto.DeviceView, 0, len(devices))
	for i := range devices {
		views = append(views, toDeviceView(&devices[i]))
	}
	return views, nil
}
