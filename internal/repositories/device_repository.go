package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	FindByFirebaseID(db *gorm.DB, firebaseID string) (*models.Device, error)
	Save(db *gorm.DB, device *models.Device) error
	FindByUser(db *gorm.DB, userID uint) ([]models.Device, error)
	DeleteByUser(db *gorm.DB, userID uint) (int64, error)
}

type deviceRepository struct{}

func NewDeviceRepository() DeviceRepository {
	return &deviceRepository{}
}

func (r *deviceRepository) FindByFirebaseID(db *gorm.DB, firebaseID string) (*models.Device, error) {
	var device models.Device
	if err := db.Where("firebase_id = ?", firebaseID).First(&device).Error; err != nil {
		return nil, notFound(err, ErrDeviceNotFound)
	}
	return &device, nil
}

// Save создает устройство или обновляет существующее (по ID)
func (r *deviceRepository) Save(db *gorm.DB, device *models.Device) error {
	return mapWriteError(db.Save(device).Error)
}

func (r *deviceRepository) FindByUser(db *gorm.DB, userID uint) ([]models.Device, error) {
	var devices []models.Device
	err := db.Where("user_id = ?", userID).Order("id").Find(&devices).Error
	return devices, err
}

func (r *deviceRepository) DeleteByUser(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.Device{})
	return result.RowsAffected, result.Error
}
