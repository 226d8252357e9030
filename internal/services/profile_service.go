package services

import (
	"context"
	"errors"
	"mime/multipart"

	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID uint) (*dto.ProfileView, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID uint, patch dto.ProfilePatch) (*dto.ProfileView, error)
	UpdateAvatar(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.ProfileView, error)
	UpdatePassportPhoto(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.ProfileView, error)
	// UpdateTel подтверждает новый номер кодом и назначает его пользователю
	UpdateTel(ctx context.Context, db *gorm.DB, userID uint, req *dto.SiwTelRequest) (*dto.ProfileView, error)
	// DeleteUser удаляет пользователя вместе с устройствами, уведомлениями и сессиями
	DeleteUser(ctx context.Context, db *gorm.DB, userID uint) error
}

type profileService struct {
	userRepo         repositories.UserRepository
	deviceRepo       repositories.DeviceRepository
	notificationRepo repositories.NotificationRepository
	tokenRepo        repositories.TokenRepository
	pairRepo         repositories.TokenPairRepository
	flatRepo         repositories.FlatRepository
	rentRepo         repositories.RentRepository
	verification     VerificationService
	uploadService    UploadService
}

func NewProfileService(
	userRepo repositories.UserRepository,
	deviceRepo repositories.DeviceRepository,
	notificationRepo repositories.NotificationRepository,
	tokenRepo repositories.TokenRepository,
	pairRepo repositories.TokenPairRepository,
	flatRepo repositories.FlatRepository,
	rentRepo repositories.RentRepository,
	verification VerificationService,
	uploadService UploadService,
) ProfileService {
	return &profileService{
		userRepo:         userRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		tokenRepo:        tokenRepo,
		pairRepo:         pairRepo,
		flatRepo:         flatRepo,
		rentRepo:         rentRepo,
		verification:     verification,
		uploadService:    uploadService,
	}
}

func (s *profileService) GetProfile(db *gorm.DB, userID uint) (*dto.ProfileView, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}
	return toProfileView(user), nil
}

func (s *profileService) findUser(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return user, nil
}

// applyProfilePatch переносит значения из патча в пользователя
func applyProfilePatch(user *models.User, patch dto.ProfilePatch) error {
	allowed := make(map[string]struct{}, len(models.ProfileFields))
	for _, name := range models.ProfileFields {
		allowed[name] = struct{}{}
	}

	fieldErrors := make(map[string]string)
	for key, raw := range patch {
		if _, ok := allowed[key]; !ok {
			fieldErrors[key] = "Unknown field"
			continue
		}
		field, _ := user.ProfileField(key)
		switch value := raw.(type) {
		case nil:
			*field = nil
		case string:
			v := value
			*field = &v
		default:
			fieldErrors[key] = "Must be a string or null"
		}
	}

	if len(fieldErrors) > 0 {
		return apperrors.ValidationError(fieldErrors, apperrors.PathBody)
	}
	return nil
}

func (s *profileService) UpdateProfile(ctx context.Context, db *gorm.DB, userID uint, patch dto.ProfilePatch) (*dto.ProfileView, error) {
	var updated *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := s.findUser(tx, userID)
		if err != nil {
			return err
		}
		before := *user

		if err := applyProfilePatch(user, patch); err != nil {
			return err
		}

		changes := repositories.Diff(&before, user)
		if len(changes) == 0 {
			updated = user
			return nil
		}
		if err := s.userRepo.Save(tx, user); err != nil {
			return err
		}

		fields := make([]string, 0, len(changes))
		for name := range changes {
			fields = append(fields, name)
		}
		logger.CtxInfo(ctx, "Profile updated", "user_id", userID, "fields", fields)

		updated = user
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "user")
	}
	return toProfileView(updated), nil
}

func (s *profileService) UpdateAvatar(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.ProfileView, error) {
	return s.updatePhoto(ctx, db, userID, CategoryAvatars, file, func(u *models.User, link string) {
		u.Avatar = &link
	})
}

func (s *profileService) UpdatePassportPhoto(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.ProfileView, error) {
	return s.updatePhoto(ctx, db, userID, CategoryPassports, file, func(u *models.User, link string) {
		u.PassportPhoto = &link
	})
}

func (s *profileService) updatePhoto(
	ctx context.Context,
	db *gorm.DB,
	userID uint,
	category string,
	file *multipart.FileHeader,
	assign func(*models.User, string),
) (*dto.ProfileView, error) {
	stored, err := s.uploadService.StoreImage(ctx, category, file)
	if err != nil {
		return nil, err
	}

	var updated *models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		user, err := s.findUser(tx, userID)
		if err != nil {
			return err
		}
		assign(user, stored.URL)
		if err := s.userRepo.Save(tx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		// запись в БД не сохранилась - файл больше никому не нужен
		s.uploadService.Remove(ctx, stored)
		return nil, persistenceError(err, "image")
	}

	logger.CtxInfo(ctx, "Profile photo updated", "user_id", userID, "category", category, "key", stored.Key)
	return toProfileView(updated), nil
}

func (s *profileService) UpdateTel(ctx context.Context, db *gorm.DB, userID uint, req *dto.SiwTelRequest) (*dto.ProfileView, error) {
	tel := NormalizeTarget(req.Tel)

	var updated *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.verification.Verify(tx, tel, req.Code); err != nil {
			return err
		}
		user, err := s.findUser(tx, userID)
		if err != nil {
			return err
		}
		user.Tel = &tel
		if err := s.userRepo.Save(tx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "tel")
	}

	logger.CtxInfo(ctx, "User phone changed", "user_id", userID)
	return toProfileView(updated), nil
}

func (s *profileService) DeleteUser(ctx context.Context, db *gorm.DB, userID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.findUser(tx, userID); err != nil {
			return err
		}

		if _, err := s.deviceRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}
		if _, err := s.notificationRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}

		pairs, err := s.pairRepo.FindByUser(tx, userID)
		if err != nil {
			return err
		}
		pairIDs, tokenIDs := repositories.TokenIDs(pairs)
		if _, err := s.pairRepo.DeleteByIDs(tx, pairIDs); err != nil {
			return err
		}
		if _, err := s.tokenRepo.DeleteByIDs(tx, tokenIDs); err != nil {
			return err
		}

		if _, err := s.userRepo.ClearReferrer(tx, userID); err != nil {
			return err
		}
		if _, err := s.flatRepo.ClearOwner(tx, userID); err != nil {
			return err
		}
		if _, err := s.rentRepo.ClearRenter(tx, userID); err != nil {
			return err
		}

		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		return persistenceError(err, "user")
	}

	logger.CtxInfo(ctx, "User deleted", "user_id", userID)
	return nil
}
