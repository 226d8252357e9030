package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"axas_backend/internal/auth"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// TokenConfig - длина и сроки жизни токенов
type TokenConfig struct {
	Length     int
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// IssuedPair - выпущенная пара токенов
type IssuedPair struct {
	Pair    *models.TokenPair
	Access  *models.Token
	Refresh *models.Token
}

type TokenService interface {
	MintPair(db *gorm.DB, userID uint, device *string) (*IssuedPair, error)
	// Lookup находит пользователя по access-токену из заголовка Authorization
	Lookup(db *gorm.DB, bearer string) (*models.User, *models.TokenPair, error)
}

type tokenService struct {
	tokenRepo repositories.TokenRepository
	pairRepo  repositories.TokenPairRepository
	config    TokenConfig
	now       Clock
}

func NewTokenService(
	tokenRepo repositories.TokenRepository,
	pairRepo repositories.TokenPairRepository,
	config TokenConfig,
	clock Clock,
) TokenService {
	return &tokenService{
		tokenRepo: tokenRepo,
		pairRepo:  pairRepo,
		config:    config,
		now:       clockOrSystem(clock),
	}
}

func (s *tokenService) MintPair(db *gorm.DB, userID uint, device *string) (*IssuedPair, error) {
	var issued *IssuedPair
	err := db.Transaction(func(tx *gorm.DB) error {
		// TODO: полный перебор значений растет вместе с таблицей tokens, перейти на проверку по уникальному индексу
		values, err := s.tokenRepo.AllValues(tx)
		if err != nil {
			return err
		}
		taken := make(map[string]struct{}, len(values)+2)
		for _, v := range values {
			taken[v] = struct{}{}
		}

		now := s.now()
		access, err := s.newToken(tx, taken, now.Add(s.config.AccessTTL))
		if err != nil {
			return err
		}
		refresh, err := s.newToken(tx, taken, now.Add(s.config.RefreshTTL))
		if err != nil {
			return err
		}

		pair := &models.TokenPair{
			UserID:         userID,
			Device:         device,
			AccessTokenID:  access.ID,
			RefreshTokenID: refresh.ID,
		}
		if err := s.pairRepo.Create(tx, pair); err != nil {
			return err
		}

		issued = &IssuedPair{Pair: pair, Access: access, Refresh: refresh}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "token")
	}
	return issued, nil
}

func (s *tokenService) newToken(tx *gorm.DB, taken map[string]struct{}, expiresAt time.Time) (*models.Token, error) {
	var value string
	for {
		v, err := auth.RandomAlphanumeric(s.config.Length)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		if _, exists := taken[v]; !exists {
			value = v
			break
		}
	}
	taken[value] = struct{}{}

	token := &models.Token{Value: value, ExpiresAt: expiresAt}
	if err := s.tokenRepo.Create(tx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// BearerValue извлекает значение токена из заголовка Authorization
func BearerValue(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func (s *tokenService) Lookup(db *gorm.DB, bearer string) (*models.User, *models.TokenPair, error) {
	value := BearerValue(bearer)
	if value == "" {
		return nil, nil, apperrors.ErrTokenMissing
	}

	token, err := s.tokenRepo.FindByValue(db, value)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, nil, apperrors.ErrInvalidToken
		}
		return nil, nil, apperrors.PersistenceError(err)
	}

	// refresh-токен не подходит для авторизации запросов
	pair, err := s.pairRepo.FindByAccessTokenID(db, token.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenPairNotFound) {
			return nil, nil, apperrors.ErrInvalidToken
		}
		return nil, nil, apperrors.PersistenceError(err)
	}
	if pair.User == nil {
		return nil, nil, apperrors.ErrInvalidToken
	}

	if token.IsExpired(s.now()) {
		return nil, nil, apperrors.ErrTokenExpired
	}

	return pair.User, pair, nil
}
