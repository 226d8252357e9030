package services

import (
	"context"
	"fmt"
	"time"

	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RentService interface {
	// CreateRent бронирует квартиру; пересечения с другими бронированиями не проверяются
	CreateRent(ctx context.Context, db *gorm.DB, flatID, userID uint, req *dto.CreateRentRequest) (*dto.RentView, error)
	// GetOwnerRents - бронирования всех квартир владельца
	GetOwnerRents(db *gorm.DB, ownerID uint) ([]dto.RentView, error)
}

type rentService struct {
	rentRepo            repositories.RentRepository
	flatRepo            repositories.FlatRepository
	notificationService NotificationService
	now                 Clock
}

func NewRentService(
	rentRepo repositories.RentRepository,
	flatRepo repositories.FlatRepository,
	notificationService NotificationService,
	clock Clock,
) RentService {
	return &rentService{
		rentRepo:            rentRepo,
		flatRepo:            flatRepo,
		notificationService: notificationService,
		now:                 clockOrSystem(clock),
	}
}

func (s *rentService) CreateRent(ctx context.Context, db *gorm.DB, flatID, userID uint, req *dto.CreateRentRequest) (*dto.RentView, error) {
	startAt := time.Unix(*req.StartAt, 0).UTC()
	endAt := time.Unix(*req.EndAt, 0).UTC()

	var rent *models.Rent
	err := db.Transaction(func(tx *gorm.DB) error {
		flat, err := s.flatRepo.FindByID(tx, flatID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrFlatNotFound) {
				return apperrors.ErrFlatNotFound
			}
			return err
		}

		if !endAt.After(startAt) {
			return apperrors.NewBadRequestError("end_at", apperrors.PathBody, "Must be greater than start_at")
		}

		renter := userID
		created := &models.Rent{
			FlatID:  flat.ID,
			UserID:  &renter,
			StartAt: startAt,
			EndAt:   endAt,
		}
		if err := s.rentRepo.Create(tx, created); err != nil {
			return err
		}

		if flat.UserID != nil && !flat.OwnedBy(userID) {
			text := fmt.Sprintf("Новое бронирование квартиры «%s»", flat.Title)
			data := map[string]interface{}{
				"flat_id":  flat.ID,
				"rent_id":  created.ID,
				"start_at": created.StartAt.Unix(),
				"end_at":   created.EndAt.Unix(),
			}
			if _, err := s.notificationService.Notify(ctx, tx, *flat.UserID, text, data); err != nil {
				return err
			}
		}

		rent, err = s.rentRepo.FindByID(tx, created.ID)
		return err
	})
	if err != nil {
		return nil, persistenceError(err, "rent")
	}

	logger.CtxInfo(ctx, "Rent created", "rent_id", rent.ID, "flat_id", flatID, "user_id", userID)
	view := toRentView(rent, s.now())
	return &view, nil
}

func (s *rentService) GetOwnerRents(db *gorm.DB, ownerID uint) ([]dto.RentView, error) {
	rents, err := s.rentRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	now := s.now()
	views := make([]dto.RentView, 0, len(rents))
	for i := range rents {
		views = append(views, toRentView(&rents[i], now))
	}
	return views, nil
}
