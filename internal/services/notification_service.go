package services

import (
	"context"
	"encoding/json"
	"errors"

	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationService interface {
	// Notify создает уведомление в переданной транзакции
	Notify(ctx context.Context, db *gorm.DB, userID uint, text string, data map[string]interface{}) (*models.Notification, error)
	GetUserNotifications(db *gorm.DB, userID uint, query *dto.PageQuery) ([]dto.NotificationView, error)
	MarkAsRead(db *gorm.DB, userID, notificationID uint) (*dto.NotificationView, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	pageSize         int
	now              Clock
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, pageSize int, clock Clock) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pageSize:         pageSize,
		now:              clockOrSystem(clock),
	}
}

func (s *notificationService) Notify(ctx context.Context, db *gorm.DB, userID uint, text string, data map[string]interface{}) (*models.Notification, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:    userID,
		Text:      text,
		Data:      datatypes.JSON(payload),
		CreatedAt: s.now(),
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "Notification created", "user_id", userID, "notification_id", notification.ID)
	return notification, nil
}

func (s *notificationService) GetUserNotifications(db *gorm.DB, userID uint, query *dto.PageQuery) ([]dto.NotificationView, error) {
	if query == nil {
		query = &dto.PageQuery{}
	}
	limit, offset := dto.LimitOffset(query.Page, query.PageSize, s.pageSize)

	notifications, _, err := s.notificationRepo.FindByUser(db, userID, limit, offset)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	views := make([]dto.NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, toNotificationView(&notifications[i]))
	}
	return views, nil
}

func (s *notificationService) MarkAsRead(db *gorm.DB, userID, notificationID uint) (*dto.NotificationView, error) {
	var notification *models.Notification
	err := db.Transaction(func(tx *gorm.DB) error {
		n, err := s.notificationRepo.FindByIDForUser(tx, notificationID, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotificationNotFound) {
				return apperrors.ErrNotificationNotFound
			}
			return err
		}
		if !n.Read {
			if err := s.notificationRepo.MarkRead(tx, n); err != nil {
				return err
			}
		}
		notification = n
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "notification_id")
	}

	view := toNotificationView(notification)
	return &view, nil
}
