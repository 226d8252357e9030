package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"axas_backend/internal/models"
	"axas_backend/internal/services/dto"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfilePatchSemantics(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")
	user.Name = testutil.StrPtr("Иван")
	user.Surname = testutil.StrPtr("Петров")
	require.NoError(t, db.Save(user).Error)

	view, err := env.profiles.UpdateProfile(context.Background(), db, user.ID, dto.ProfilePatch{
		"name":       nil,
		"patronymic": "Сергеевич",
	})
	require.NoError(t, err)
	assert.Nil(t, view.Name, "null очищает поле")
	assert.Equal(t, "Петров", *view.Surname, "отсутствующий ключ не меняет поле")
	assert.Equal(t, "Сергеевич", *view.Patronymic)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Nil(t, stored.Name)
	assert.Equal(t, "Сергеевич", *stored.Patronymic)
}

func TestProfileService_UpdateProfileRejectsInvalidValues(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")

	_, err := env.profiles.UpdateProfile(context.Background(), db, user.ID, dto.ProfilePatch{
		"name": 42.0,
		"tel":  "79000000000",
	})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	require.Len(t, appErr.Items, 2)
	assert.Equal(t, "name", appErr.Items[0].Source)
	assert.Equal(t, "tel", appErr.Items[1].Source)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "79184167161", *stored.Tel)
}

func TestProfileService_UpdateAvatar(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")

	file := multipartFile(t, "me.PNG", "image/png", pngHeader)
	view, err := env.profiles.UpdateAvatar(context.Background(), db, user.ID, file)
	require.NoError(t, err)
	require.NotNil(t, view.Avatar)
	assert.True(t, strings.HasPrefix(*view.Avatar, "/files/avatars/2024/5/10/"), *view.Avatar)
	assert.True(t, strings.HasSuffix(*view.Avatar, ".png"))

	key := strings.TrimPrefix(*view.Avatar, "/files/")
	exists, err := env.storage.Exists(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileService_UpdatePassportPhotoRejectsNonImage(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")

	file := multipartFile(t, "passport.pdf", "application/pdf", []byte("%PDF-1.4"))
	_, err := env.profiles.UpdatePassportPhoto(context.Background(), db, user.ID, file)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	// тип без заголовка определяется по содержимому
	file = multipartFile(t, "passport", "", pngHeader)
	view, err := env.profiles.UpdatePassportPhoto(context.Background(), db, user.ID, file)
	require.NoError(t, err)
	assert.Contains(t, *view.PassportPhoto, "/files/passports/")
}

func TestProfileService_UpdateAvatarIgnoresDeclaredType(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")

	page := multipartFile(t, "x.html", "image/png", []byte("<html><script>alert(1)</script></html>"))
	_, err := env.profiles.UpdateAvatar(context.Background(), db, user.ID, page)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	view, err := env.profiles.UpdateAvatar(context.Background(), db, user.ID, multipartFile(t, "x.html", "text/html", pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(*view.Avatar, ".png"), *view.Avatar)
}

func TestProfileService_UpdateTel(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79001112233")

	_, err := env.profiles.UpdateTel(context.Background(), db, user.ID, &dto.SiwTelRequest{Tel: "+79184167161", Code: "8085"})
	assert.ErrorIs(t, err, apperrors.ErrNoCodeIssued)

	_, err = env.verification.Issue(context.Background(), db, "+79184167161")
	require.NoError(t, err)

	view, err := env.profiles.UpdateTel(context.Background(), db, user.ID, &dto.SiwTelRequest{Tel: "+79184167161", Code: "8085"})
	require.NoError(t, err)
	assert.Equal(t, "79184167161", *view.Tel)
}

func TestProfileService_DeleteUserCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "79184167161")
	other := testutil.CreateUser(t, db, "79001112233")
	referred := testutil.CreateUser(t, db, "79002223344")
	referred.ReferrerID = &user.ID
	require.NoError(t, db.Save(referred).Error)

	_, err := env.devices.UpdateSettings(db, user.ID, testutil.StrPtr("fb-1"), true, nil)
	require.NoError(t, err)
	_, err = env.tokens.MintPair(db, user.ID, testutil.StrPtr("fb-1"))
	require.NoError(t, err)
	otherPair, err := env.tokens.MintPair(db, other.ID, nil)
	require.NoError(t, err)
	_, err = env.notices.Notify(ctx, db, user.ID, "hello", map[string]interface{}{"flat_id": 1})
	require.NoError(t, err)

	ownFlat := testutil.CreateFlat(t, db, user.ID, "Own flat")
	otherFlat := testutil.CreateFlat(t, db, other.ID, "Other flat")
	rent := testutil.CreateRent(t, db, otherFlat.ID, user.ID, testNow, testNow.Add(48*time.Hour))

	require.NoError(t, env.profiles.DeleteUser(ctx, db, user.ID))

	count := func(model interface{}, query string, args ...interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&models.User{}, "id = ?", user.ID))
	assert.Zero(t, count(&models.Device{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&models.Notification{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&models.TokenPair{}, "user_id = ?", user.ID))
	assert.Equal(t, int64(2), count(&models.Token{}, "1 = 1"), "остались только токены другого пользователя")
	assert.Equal(t, int64(1), count(&models.TokenPair{}, "id = ?", otherPair.Pair.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, referred.ID).Error)
	assert.Nil(t, reloaded.ReferrerID)

	var flat models.Flat
	require.NoError(t, db.First(&flat, ownFlat.ID).Error)
	assert.Nil(t, flat.UserID)

	var storedRent models.Rent
	require.NoError(t, db.First(&storedRent, rent.ID).Error)
	assert.Nil(t, storedRent.UserID)

	_, err = env.profiles.GetProfile(db, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
