package repositories

import (
	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	// FindByUser возвращает уведомления пользователя, новые первыми; limit <= 0 - без ограничения
	FindByUser(db *gorm.DB, userID uint, limit, offset int) ([]models.Notification, int64, error)
	FindByIDForUser(db *gorm.DB, id, userID uint) (*models.Notification, error)
	MarkRead(db *gorm.DB, notification *models.Notification) error
	DeleteByUser(db *gorm.DB, userID uint) (int64, error)
}

type notificationRepository struct{}

func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindByUser(db *gorm.DB, userID uint, limit, offset int) ([]models.Notification, int64, error) {
	var total int64
	query := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	query = db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) FindByIDForUser(db *gorm.DB, id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		return nil, notFound(err, ErrNotificationNotFound)
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(db *gorm.DB, notification *models.Notification) error {
	if err := db.Model(notification).Update("read", true).Error; err != nil {
		return err
	}
	notification.Read = true
	return nil
}

func (r *notificationRepository) DeleteByUser(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
