package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type FlatPictureRepository interface {
	Create(db *gorm.DB, picture *models.FlatPicture) error
}

type flatPictureRepository struct{}

func NewFlatPictureRepository() FlatPictureRepository {
	return &flatPictureRepository{}
}

func (r *flatPictureRepository) Create(db *gorm.DB, picture *models.FlatPicture) error {
	return db.Create(picture).Error
}
