package services

import (
	"context"
	"testing"

	"axas_backend/internal/models"
	"axas_backend/internal/services/dto"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignInRegistersOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	ctx := context.Background()
	device := dto.DeviceInfo{FirebaseID: testutil.StrPtr("fb-1"), UserAgent: testutil.StrPtr("okhttp"), EnableNotifications: true}

	issued, err := env.auth.RequestCode(ctx, db, &dto.TelRequest{Tel: "+79184167161"})
	require.NoError(t, err)
	assert.Equal(t, "8085", issued.Code)

	first, err := env.auth.SignIn(ctx, db, &dto.SiwTelRequest{Tel: "+79184167161", Code: "8085"}, device)
	require.NoError(t, err)
	assert.Equal(t, "79184167161", *first.User.Tel)
	assert.Len(t, first.Tokens.Access.Value, 64)
	assert.Equal(t, testNow.Unix()+12*3600, first.Tokens.Access.ExpireAt)

	_, err = env.auth.SignIn(ctx, db, &dto.SiwTelRequest{Tel: "+79184167161", Code: "8085"}, device)
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)

	_, err = env.auth.RequestCode(ctx, db, &dto.TelRequest{Tel: "79184167161"})
	require.NoError(t, err)
	second, err := env.auth.SignIn(ctx, db, &dto.SiwTelRequest{Tel: "79184167161", Code: "8085"}, device)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID, "повторный вход не создает пользователя")
	assert.NotEqual(t, first.Tokens.Access.Value, second.Tokens.Access.Value)

	var users, devices, pairs int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Device{}).Count(&devices).Error)
	require.NoError(t, db.Model(&models.TokenPair{}).Count(&pairs).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), devices)
	assert.Equal(t, int64(2), pairs)
}

func TestAuthService_FailedSignInLeavesNoTrace(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.RequestCode(ctx, db, &dto.TelRequest{Tel: "79184167161"})
	require.NoError(t, err)

	_, err = env.auth.SignIn(ctx, db, &dto.SiwTelRequest{Tel: "79184167161", Code: "1111"}, dto.DeviceInfo{EnableNotifications: true})
	assert.ErrorIs(t, err, apperrors.ErrCodeMismatch)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
