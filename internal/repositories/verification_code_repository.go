package repositories

import (
	"time"

	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type VerificationCodeRepository interface {
	Create(db *gorm.DB, code *models.VerificationCode) error
	// FindByTarget возвращает коды адресата: сначала с самым поздним сроком, неиспользованные раньше использованных
	FindByTarget(db *gorm.DB, target string) ([]models.VerificationCode, error)
	MarkUsed(db *gorm.DB, code *models.VerificationCode) error
	DeleteExpiredBefore(db *gorm.DB, before time.Time) (int64, error)
}

type verificationCodeRepository struct{}

func NewVerificationCodeRepository() VerificationCodeRepository {
	return &verificationCodeRepository{}
}

func (r *verificationCodeRepository) Create(db *gorm.DB, code *models.VerificationCode) error {
	return db.Create(code).Error
}

func (r *verificationCodeRepository) FindByTarget(db *gorm.DB, target string) ([]models.VerificationCode, error) {
	var codes []models.VerificationCode
	err := db.Where("target = ?", target).
		Order("expired_at DESC").
		Order("used ASC").
		Order("id DESC").
		Find(&codes).Error
	return codes, err
}

// MarkUsed переводит код в used=true; обратного перехода нет
func (r *verificationCodeRepository) MarkUsed(db *gorm.DB, code *models.VerificationCode) error {
	result := db.Model(&models.VerificationCode{}).
		Where("id = ?", code.ID).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	code.Used = true
	return nil
}

func (r *verificationCodeRepository) DeleteExpiredBefore(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("expired_at < ?", before).Delete(&models.VerificationCode{})
	return result.RowsAffected, result.Error
}
