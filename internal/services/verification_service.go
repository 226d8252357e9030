package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"axas_backend/internal/auth"
	"axas_backend/internal/email"
	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/sms"
	"axas_backend/internal/throttle"
	"axas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^7\d{10}$`)

// VerificationConfig - параметры выдачи кодов подтверждения
type VerificationConfig struct {
	TTL           time.Duration
	Whitelist     []string
	WhitelistCode string
	BcryptCost    int
}

type VerificationService interface {
	// Issue создает новый код для адресата и доставляет его по SMS или email
	Issue(ctx context.Context, db *gorm.DB, target string) (string, error)
	// Verify проверяет код и помечает его использованным
	Verify(db *gorm.DB, target, code string) (*models.VerificationCode, error)
}

type verificationService struct {
	codeRepo  repositories.VerificationCodeRepository
	smsSender sms.Provider
	mailer    email.Provider
	limiter   throttle.Limiter
	config    VerificationConfig
	whitelist map[string]struct{}
	now       Clock
}

func NewVerificationService(
	codeRepo repositories.VerificationCodeRepository,
	smsSender sms.Provider,
	mailer email.Provider,
	limiter throttle.Limiter,
	config VerificationConfig,
	clock Clock,
) VerificationService {
	if limiter == nil {
		limiter = throttle.NoopLimiter{}
	}
	whitelist := make(map[string]struct{}, len(config.Whitelist))
	for _, tel := range config.Whitelist {
		whitelist[NormalizeTarget(tel)] = struct{}{}
	}
	return &verificationService{
		codeRepo:  codeRepo,
		smsSender: smsSender,
		mailer:    mailer,
		limiter:   limiter,
		config:    config,
		whitelist: whitelist,
		now:       clockOrSystem(clock),
	}
}

// NormalizeTarget убирает пробелы по краям и один ведущий "+"
func NormalizeTarget(target string) string {
	return strings.TrimPrefix(strings.TrimSpace(target), "+")
}

// IsPhone - адресат является российским номером телефона
func IsPhone(target string) bool {
	return phonePattern.MatchString(target)
}

func (s *verificationService) Issue(ctx context.Context, db *gorm.DB, target string) (string, error) {
	target = NormalizeTarget(target)

	allowed, err := s.limiter.Allow(ctx, target)
	if err != nil {
		// недоступный redis не блокирует вход
		logger.CtxWithError(ctx, "Verification throttle unavailable", err, "target", target)
	} else if !allowed {
		logger.CtxWarn(ctx, "Verification code requested too often", "target", target)
		return "", apperrors.ErrTooManyCodes
	}

	code, err := s.deliver(ctx, target)
	if err != nil {
		return "", err
	}

	hash, err := auth.HashCode(code, s.config.BcryptCost)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	now := s.now()
	record := &models.VerificationCode{
		Target:    target,
		CodeHash:  hash,
		ExpiredAt: now.Add(s.config.TTL),
		CreatedAt: now,
	}
	if err := s.codeRepo.Create(db, record); err != nil {
		return "", persistenceError(err, "tel")
	}

	logger.CtxInfo(ctx, "Verification code issued", "target", target, "code_id", record.ID)
	return code, nil
}

func (s *verificationService) deliver(ctx context.Context, target string) (string, error) {
	if IsPhone(target) {
		if _, ok := s.whitelist[target]; ok {
			return s.config.WhitelistCode, nil
		}
		code, err := s.smsSender.Send(ctx, target)
		if err != nil {
			logger.CtxWithError(ctx, "SMS provider failed", err, "target", target)
			return "", apperrors.ExternalServiceError(err, "sms")
		}
		return code, nil
	}

	code, err := auth.RandomDigits(4)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if err := s.mailer.Send(ctx, email.VerificationEmail(target, code)); err != nil {
		logger.CtxWithError(ctx, "Email provider failed", err, "target", target)
		return "", apperrors.ExternalServiceError(err, "email")
	}
	return code, nil
}

func (s *verificationService) Verify(db *gorm.DB, target, code string) (*models.VerificationCode, error) {
	target = NormalizeTarget(target)

	codes, err := s.codeRepo.FindByTarget(db, target)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if len(codes) == 0 {
		return nil, apperrors.ErrNoCodeIssued
	}

	var matched *models.VerificationCode
	for i := range codes {
		if auth.CheckCodeHash(code, codes[i].CodeHash) {
			matched = &codes[i]
			break
		}
	}
	switch {
	case matched == nil:
		return nil, apperrors.ErrCodeMismatch
	case matched.Used:
		return nil, apperrors.ErrCodeAlreadyUsed
	case matched.IsExpired(s.now()):
		return nil, apperrors.ErrCodeExpired
	}

	if err := s.codeRepo.MarkUsed(db, matched); err != nil {
		return nil, persistenceError(err, "tel")
	}
	return matched, nil
}
