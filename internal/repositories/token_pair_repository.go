package repositories

import (
	"time"

	"axas_backend/internal/models"

	"gorm.io/gorm"
)

type TokenPairRepository interface {
	Create(db *gorm.DB, pair *models.TokenPair) error
	// FindByAccessTokenID находит сессию по access-токену вместе с пользователем
	FindByAccessTokenID(db *gorm.DB, tokenID uint) (*models.TokenPair, error)
	FindByUser(db *gorm.DB, userID uint) ([]models.TokenPair, error)
	// FindWithExpiredRefresh - сессии, refresh-токен которых истек до before
	FindWithExpiredRefresh(db *gorm.DB, before time.Time) ([]models.TokenPair, error)
	DeleteByIDs(db *gorm.DB, ids []uint) (int64, error)
}

type tokenPairRepository struct{}

func NewTokenPairRepository() TokenPairRepository {
	return &tokenPairRepository{}
}

func (r *tokenPairRepository) Create(db *gorm.DB, pair *models.TokenPair) error {
	return mapWriteError(db.Omit("User", "AccessToken", "RefreshToken").Create(pair).Error)
}

func (r *tokenPairRepository) FindByAccessTokenID(db *gorm.DB, tokenID uint) (*models.TokenPair, error) {
	var pair models.TokenPair
	err := db.Preload("User").
		Where("access_token_id = ?", tokenID).
		First(&pair).Error
	if err != nil {
		return nil, notFound(err, ErrTokenPairNotFound)
	}
	return &pair, nil
}

func (r *tokenPairRepository) FindByUser(db *gorm.DB, userID uint) ([]models.TokenPair, error) {
	var pairs []models.TokenPair
	err := db.Where("user_id = ?", userID).Order("id").Find(&pairs).Error
	return pairs, err
}

func (r *tokenPairRepository) FindWithExpiredRefresh(db *gorm.DB, before time.Time) ([]models.TokenPair, error) {
	var pairs []models.TokenPair
	err := db.Joins("JOIN tokens ON tokens.id = token_pairs.refresh_token_id").
		Where("tokens.expires_at < ?", before).
		Order("token_pairs.id").
		Find(&pairs).Error
	return pairs, err
}

func (r *tokenPairRepository) DeleteByIDs(db *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.TokenPair{})
	return result.RowsAffected, result.Error
}

// TokenIDs собирает id access- и refresh-токенов сессий
func TokenIDs(pairs []models.TokenPair) (pairIDs, tokenIDs []uint) {
	for _, p := range pairs {
		pairIDs = append(pairIDs, p.ID)
		tokenIDs = append(tokenIDs, p.AccessTokenID, p.RefreshTokenID)
	}
	return pairIDs, tokenIDs
}
