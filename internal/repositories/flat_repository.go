package repositories

import (
	"strings"

	"axas_backend/internal/models"

	"gorm.io/gorm"
)

// FlatFilter - условия выборки списка квартир
type FlatFilter struct {
	OwnerID *uint
	// Amenities - колонка удобства -> требуемое значение
	Amenities map[string]bool
	// Search - подстрока названия или адреса, без учета регистра
	Search string
	Limit  int
	Offset int
}

type FlatRepository interface {
	Create(db *gorm.DB, flat *models.Flat) error
	Save(db *gorm.DB, flat *models.Flat) error
	// FindByID загружает квартиру с фотографиями и бронированиями (по возрастанию id)
	FindByID(db *gorm.DB, id uint) (*models.Flat, error)
	List(db *gorm.DB, filter FlatFilter) ([]models.Flat, error)
	// ClearOwner отвязывает квартиры удаляемого пользователя
	ClearOwner(db *gorm.DB, ownerID uint) (int64, error)
}

type flatRepository struct{}

func NewFlatRepository() FlatRepository {
	return &flatRepository{}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *flatRepository) Create(db *gorm.DB, flat *models.Flat) error {
	return db.Omit("User", "Pictures", "Rents").Create(flat).Error
}

func (r *flatRepository) Save(db *gorm.DB, flat *models.Flat) error {
	return db.Omit("User", "Pictures", "Rents").Save(flat).Error
}

func (r *flatRepository) FindByID(db *gorm.DB, id uint) (*models.Flat, error) {
	var flat models.Flat
	err := db.Preload("Pictures", byID).
		Preload("Rents", byID).
		First(&flat, id).Error
	if err != nil {
		return nil, notFound(err, ErrFlatNotFound)
	}
	return &flat, nil
}

func (r *flatRepository) List(db *gorm.DB, filter FlatFilter) ([]models.Flat, error) {
	query := db.Model(&models.Flat{}).
		Preload("Pictures", byID).
		Preload("Rents", byID)

	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}

	// имена колонок берутся только из models.AmenityColumns
	for _, column := range models.AmenityColumns {
		if value, ok := filter.Amenities[column]; ok {
			query = query.Where(map[string]interface{}{column: value})
		}
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var flats []models.Flat
	err := query.Order("id").Find(&flats).Error
	return flats, err
}

func (r *flatRepository) ClearOwner(db *gorm.DB, ownerID uint) (int64, error) {
	result := db.Model(&models.Flat{}).
		Where("user_id = ?", ownerID).
		Update("user_id", nil)
	return result.RowsAffected, result.Error
}
