package services

import (
	"testing"

	"axas_backend/internal/models"
	"axas_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_UpsertReassignsDevice(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	first := testutil.CreateUser(t, db, "79184167161")
	second := testutil.CreateUser(t, db, "79001112233")

	views, err := env.devices.UpdateSettings(db, first.ID, testutil.StrPtr("fb-1"), false, testutil.StrPtr("iOS"))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "fb-1", *views[0].Device)
	assert.False(t, views[0].EnableNotifications)
	assert.Equal(t, "iOS", *views[0].UserAgent)

	views, err = env.devices.UpdateSettings(db, second.ID, testutil.StrPtr("fb-1"), true, testutil.StrPtr("Android"))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].EnableNotifications)

	var count int64
	require.NoError(t, db.Model(&models.Device{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "устройство не дублируется")

	views, err = env.devices.UpdateSettings(db, first.ID, nil, true, nil)
	require.NoError(t, err)
	assert.Empty(t, views, "устройство переназначено второму пользователю")
}

func TestDeviceService_NilDeviceOnlyLists(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	user := testutil.CreateUser(t, db, "79184167161")

	_, err := env.devices.UpdateSettings(db, user.ID, testutil.StrPtr("fb-1"), true, nil)
	require.NoError(t, err)

	views, err := env.devices.UpdateSettings(db, user.ID, nil, false, nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].EnableNotifications, "без идентификатора устройства настройки не меняются")
}
