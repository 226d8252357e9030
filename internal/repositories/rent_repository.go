package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type RentRepository interface {
	Create(db *gorm.DB, rent *models.Rent) error
	// FindByID загружает бронирование с квартирой (фото, бронирования) и арендатором
	FindByID(db *gorm.DB, id uint) (*models.Rent, error)
	// FindByOwner - бронирования всех квартир владельца
	FindByOwner(db *gorm.DB, ownerID uint) ([]models.Rent, error)
	// ClearRenter отвязывает бронирования удаляемого пользователя
	ClearRenter(db *gorm.DB, userID uint) (int64, error)
}

type rentRepository struct{}

func NewRentRepository() RentRepository {
	return &rentRepository{}
}

func withRentRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").
		Preload("Flat").
		Preload("Flat.Pictures", byID).
		Preload("Flat.Rents", byID)
}

func (r *rentRepository) Create(db *gorm.DB, rent *models.Rent) error {
	return db.Omit("Flat", "User").Create(rent).Error
}

func (r *rentRepository) FindByID(db *gorm.DB, id uint) (*models.Rent, error) {
	var rent models.Rent
	if err := withRentRelations(db).First(&rent, id).Error; err != nil {
		return nil, notFound(err, ErrRentNotFound)
	}
	return &rent, nil
}

func (r *rentRepository) FindByOwner(db *gorm.DB, ownerID uint) ([]models.Rent, error) {
	var rents []models.Rent
	err := withRentRelations(db).
		Joins("JOIN flats ON flats.id = rents.flat_id").
		Where("flats.user_id = ?", ownerID).
		Order("rents.id").
		Find(&rents).Error
	return rents, err
}

func (r *rentRepository) ClearRenter(db *gorm.DB, userID uint) (int64, error) {
	result := db.Model(&models.Rent{}).
		Where("user_id = ?", userID).
		Update("user_id", nil)
	return result.RowsAffected, result.Error
}
