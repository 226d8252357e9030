package services

import (
	"context"
	"errors"

	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	// RequestCode выдает код подтверждения на телефон или email
	RequestCode(ctx context.Context, db *gorm.DB, req *dto.TelRequest) (*dto.IssueCodeResponse, error)
	// SignIn проверяет код, регистрирует пользователя при первом входе и выпускает пару токенов
	SignIn(ctx context.Context, db *gorm.DB, req *dto.SiwTelRequest, device dto.DeviceInfo) (*dto.SignInResponse, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	verification  VerificationService
	tokenService  TokenService
	deviceService DeviceService
	now           Clock
}

func NewAuthService(
	userRepo repositories.UserRepository,
	verification VerificationService,
	tokenService TokenService,
	deviceService DeviceService,
	clock Clock,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		verification:  verification,
		tokenService:  tokenService,
		deviceService: deviceService,
		now:           clockOrSystem(clock),
	}
}

func (s *authService) RequestCode(ctx context.Context, db *gorm.DB, req *dto.TelRequest) (*dto.IssueCodeResponse, error) {
	code, err := s.verification.Issue(ctx, db, req.Tel)
	if err != nil {
		return nil, err
	}
	return &dto.IssueCodeResponse{Code: code}, nil
}

func (s *authService) SignIn(ctx context.Context, db *gorm.DB, req *dto.SiwTelRequest, device dto.DeviceInfo) (*dto.SignInResponse, error) {
	tel := NormalizeTarget(req.Tel)

	var (
		user   *models.User
		issued *IssuedPair
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.verification.Verify(tx, tel, req.Code); err != nil {
			return err
		}

		var err error
		user, err = s.userRepo.FindByTel(tx, tel)
		if errors.Is(err, repositories.ErrUserNotFound) {
			user = &models.User{Tel: &tel, CreatedAt: s.now()}
			if err := s.userRepo.Create(tx, user); err != nil {
				return err
			}
			logger.CtxInfo(ctx, "User registered", "user_id", user.ID)
		} else if err != nil {
			return err
		}

		if _, err := s.deviceService.UpdateSettings(tx, user.ID, device.FirebaseID, device.EnableNotifications, device.UserAgent); err != nil {
			return err
		}

		issued, err = s.tokenService.MintPair(tx, user.ID, device.FirebaseID)
		return err
	})
	if err != nil {
		return nil, persistenceError(err, "tel")
	}

	logger.CtxInfo(ctx, "User signed in", "user_id", user.ID)
	return &dto.SignInResponse{
		User: toProfileView(user),
		Tokens: dto.TokensView{
			Access:  dto.TokenView{Value: issued.Access.Value, ExpireAt: issued.Access.ExpiresAt.Unix()},
			Refresh: dto.TokenView{Value: issued.Refresh.Value, ExpireAt: issued.Refresh.ExpiresAt.Unix()},
		},
	}, nil
}
