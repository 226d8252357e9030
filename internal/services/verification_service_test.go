package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"axas_backend/internal/models"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTarget(t *testing.T) {
	assert.Equal(t, "79184167161", NormalizeTarget(" +79184167161 "))
	assert.Equal(t, "79184167161", NormalizeTarget("79184167161"))
	assert.Equal(t, "user@mail.ru", NormalizeTarget("user@mail.ru"))
	assert.True(t, IsPhone("79184167161"))
	assert.False(t, IsPhone("89184167161"))
	assert.False(t, IsPhone("7918416716"))
}

func TestVerificationService_IssueWhitelistedPhone(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	code, err := env.verification.Issue(context.Background(), db, "+79184167161")
	require.NoError(t, err)
	assert.Equal(t, "8085", code)
	assert.Empty(t, env.sms.calls, "для номера из белого списка SMS не отправляется")

	var stored []models.VerificationCode
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "79184167161", stored[0].Target)
	assert.NotEqual(t, "8085", stored[0].CodeHash, "код хранится в виде хеша")
	assert.False(t, stored[0].Used)
}

// Срок жизни кода задается при выдаче (30 минут), а не константой модели (5 минут)
func TestVerificationService_IssuedCodeLivesThirtyMinutes(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	_, err := env.verification.Issue(context.Background(), db, "79184167161")
	require.NoError(t, err)

	var stored models.VerificationCode
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, testNow.Add(30*time.Minute), stored.ExpiredAt.UTC())
	assert.NotEqual(t, models.DefaultCodeTTL, stored.ExpiredAt.Sub(testNow))

	env.clock.Advance(10 * time.Minute)
	_, err = env.verification.Verify(db, "79184167161", "8085")
	assert.NoError(t, err, "через 10 минут код еще действует")
}

func TestVerificationService_IssuePhoneUsesProviderCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	env.sms.code = "4321"

	code, err := env.verification.Issue(context.Background(), db, "79001112233")
	require.NoError(t, err)
	assert.Equal(t, "4321", code)
	assert.Equal(t, []string{"79001112233"}, env.sms.calls)

	_, err = env.verification.Verify(db, "+79001112233", "4321")
	assert.NoError(t, err)
}

func TestVerificationService_IssueEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	code, err := env.verification.Issue(context.Background(), db, "guest@axas.ru")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), code)
	assert.Empty(t, env.sms.calls)

	require.Len(t, env.mailer.sent, 1)
	sent := env.mailer.sent[0]
	assert.Equal(t, []string{"guest@axas.ru"}, sent.To)
	assert.Equal(t, "Verification in Axas Sharing", sent.Subject)
	assert.Contains(t, sent.Body, code)
}

func TestVerificationService_ProviderFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	env.sms.err = errProviderDown
	env.mailer.err = errProviderDown

	_, err := env.verification.Issue(context.Background(), db, "79001112233")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode)
	assert.ErrorIs(t, err, errProviderDown)

	_, err = env.verification.Issue(context.Background(), db, "guest@axas.ru")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode)

	var count int64
	require.NoError(t, db.Model(&models.VerificationCode{}).Count(&count).Error)
	assert.Zero(t, count, "недоставленный код не сохраняется")
}

func TestVerificationService_Throttle(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	env.limiter.allow = 1

	_, err := env.verification.Issue(context.Background(), db, "79184167161")
	require.NoError(t, err)

	_, err = env.verification.Issue(context.Background(), db, "79184167161")
	assert.ErrorIs(t, err, apperrors.ErrTooManyCodes)
	assert.Equal(t, 4, apperrors.ErrTooManyCodes.Number())

	// недоступный счетчик не блокирует выдачу
	env.limiter.err = errors.New("redis: connection refused")
	_, err = env.verification.Issue(context.Background(), db, "79184167161")
	assert.NoError(t, err)
}

func TestVerificationService_VerifyOutcomes(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	_, err := env.verification.Verify(db, "79184167161", "8085")
	assert.ErrorIs(t, err, apperrors.ErrNoCodeIssued)
	assert.Equal(t, 1, apperrors.ErrNoCodeIssued.Number())

	_, err = env.verification.Issue(context.Background(), db, "79184167161")
	require.NoError(t, err)

	_, err = env.verification.Verify(db, "79184167161", "0000")
	assert.ErrorIs(t, err, apperrors.ErrCodeMismatch)
	assert.Equal(t, 2, apperrors.ErrCodeMismatch.Number())

	code, err := env.verification.Verify(db, "79184167161", "8085")
	require.NoError(t, err)
	assert.True(t, code.Used)

	_, err = env.verification.Verify(db, "79184167161", "8085")
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)
	assert.Equal(t, 3, apperrors.ErrCodeAlreadyUsed.Number())
}

func TestVerificationService_VerifyExpired(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	_, err := env.verification.Issue(context.Background(), db, "79184167161")
	require.NoError(t, err)

	env.clock.Advance(31 * time.Minute)
	_, err = env.verification.Verify(db, "79184167161", "8085")
	assert.ErrorIs(t, err, apperrors.ErrCodeExpired)
	assert.Equal(t, 3, apperrors.ErrCodeExpired.Number())

	var stored models.VerificationCode
	require.NoError(t, db.First(&stored).Error)
	assert.False(t, stored.Used, "неудачная проверка не помечает код")
}

func TestVerificationService_PriorCodesStayValid(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)

	env.sms.code = "1111"
	_, err := env.verification.Issue(context.Background(), db, "79001112233")
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	env.sms.code = "2222"
	_, err = env.verification.Issue(context.Background(), db, "79001112233")
	require.NoError(t, err)

	_, err = env.verification.Verify(db, "79001112233", "1111")
	assert.NoError(t, err, "предыдущий код остается действительным")
	_, err = env.verification.Verify(db, "79001112233", "2222")
	assert.NoError(t, err)
}
