package workers

import (
	"context"
	"fmt"
	"time"

	"axas_backend/internal/logger"
	"axas_backend/internal/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const cleanupWorkerName = "cleanup"

// CleanupConfig - расписание в формате cron (или @daily, @every 1h) и срок хранения кодов
type CleanupConfig struct {
	Schedule      string
	CodeRetention time.Duration
}

// CleanupWorker удаляет старые коды подтверждения и сессии с истекшим refresh-токеном
type CleanupWorker struct {
	db        *gorm.DB
	codeRepo  repositories.VerificationCodeRepository
	pairRepo  repositories.TokenPairRepository
	tokenRepo repositories.TokenRepository
	config    CleanupConfig
	now       func() time.Time
	cron      *cron.Cron
}

func NewCleanupWorker(
	db *gorm.DB,
	codeRepo repositories.VerificationCodeRepository,
	pairRepo repositories.TokenPairRepository,
	tokenRepo repositories.TokenRepository,
	config CleanupConfig,
	now func() time.Time,
) *CleanupWorker {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &CleanupWorker{
		db:        db,
		codeRepo:  codeRepo,
		pairRepo:  pairRepo,
		tokenRepo: tokenRepo,
		config:    config,
		now:       now,
	}
}

// Start регистрирует задачу в cron и останавливает ее вместе с ctx
func (w *CleanupWorker) Start(ctx context.Context) error {
	w.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := w.cron.AddFunc(w.config.Schedule, func() { w.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule cleanup job %q: %w", w.config.Schedule, err)
	}
	w.cron.Start()
	logger.Info("Cleanup worker started", "schedule", w.config.Schedule)

	go func() {
		<-ctx.Done()
		<-w.cron.Stop().Done()
		logger.Info("Cleanup worker stopped")
	}()
	return nil
}

// RunOnce выполняет один проход очистки
func (w *CleanupWorker) RunOnce(ctx context.Context) {
	now := w.now()
	db := w.db.WithContext(ctx)

	codes, err := w.codeRepo.DeleteExpiredBefore(db, now.Add(-w.config.CodeRetention))
	logger.WorkerLog(cleanupWorkerName, "delete_verification_codes", codes, err)

	sessions, err := w.deleteExpiredSessions(db, now)
	logger.WorkerLog(cleanupWorkerName, "delete_expired_sessions", sessions, err)
}

func (w *CleanupWorker) deleteExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		pairs, err := w.pairRepo.FindWithExpiredRefresh(tx, now)
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			return nil
		}

		pairIDs, tokenIDs := repositories.TokenIDs(pairs)
		if deleted, err = w.pairRepo.DeleteByIDs(tx, pairIDs); err != nil {
			return err
		}
		_, err = w.tokenRepo.DeleteByIDs(tx, tokenIDs)
		return err
	})
	return deleted, err
}
