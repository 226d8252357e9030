package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(db *gorm.DB, token *models.Token) error
	FindByValue(db *gorm.DB, value string) (*models.Token, error)
	// AllValues возвращает значения всех токенов (проверка уникальности при выпуске)
	AllValues(db *gorm.DB) ([]string, error)
	DeleteByIDs(db *gorm.DB, ids []uint) (int64, error)
}

type tokenRepository struct{}

func NewTokenRepository() TokenRepository {
	return &tokenRepository{}
}

func (r *tokenRepository) Create(db *gorm.DB, token *models.Token) error {
	return mapWriteError(db.Create(token).Error)
}

func (r *tokenRepository) FindByValue(db *gorm.DB, value string) (*models.Token, error) {
	var token models.Token
	if err := db.Where("value = ?", value).First(&token).Error; err != nil {
		return nil, notFound(err, ErrTokenNotFound)
	}
	return &token, nil
}

func (r *tokenRepository) AllValues(db *gorm.DB) ([]string, error) {
	var values []string
	err := db.Model(&models.Token{}).Pluck("value", &values).Error
	return values, err
}

func (r *tokenRepository) DeleteByIDs(db *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.Token{})
	return result.RowsAffected, result.Error
}
