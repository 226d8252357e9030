package services

import (
	"time"

	"axas_backend/internal/repositories"
	"axas_backend/pkg/apperrors"
)

// Clock возвращает текущее время; в тестах подменяется фиксированным
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func clockOrSystem(clock Clock) Clock {
	if clock == nil {
		return systemClock
	}
	return clock
}

// persistenceError приводит ошибку транзакции к AppError.
// Доменные ошибки возвращаются как есть, транзакция к этому моменту откачена.
func persistenceError(err error, source string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return err
	}
	if apperrors.Is(err, repositories.ErrDuplicate) {
		return apperrors.ErrAlreadyExists(err, source)
	}
	return apperrors.PersistenceError(err)
}
