package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	Save(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	// FindByTel возвращает самого раннего пользователя с данным телефоном
	FindByTel(db *gorm.DB, tel string) (*models.User, error)
	Delete(db *gorm.DB, id uint) error
	// ClearReferrer обнуляет ссылки на реферера у приглашенных пользователей
	ClearReferrer(db *gorm.DB, referrerID uint) (int64, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	return mapWriteError(db.Create(user).Error)
}

func (r *userRepository) Save(db *gorm.DB, user *models.User) error {
	return mapWriteError(db.Omit("Referrer", "Devices", "TokenPairs").Save(user).Error)
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) FindByTel(db *gorm.DB, tel string) (*models.User, error) {
	var user models.User
	if err := db.Where("tel = ?", tel).Order("id").First(&user).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearReferrer(db *gorm.DB, referrerID uint) (int64, error) {
	result := db.Model(&models.User{}).
		Where("referrer_id = ?", referrerID).
		Update("referrer_id", nil)
	return result.RowsAffected, result.Error
}
