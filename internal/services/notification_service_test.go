package services

import (
	"context"
	"testing"
	"time"

	"axas_backend/internal/services/dto"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "79184167161")
	other := testutil.CreateUser(t, db, "79001112233")

	first, err := env.notices.Notify(ctx, db, user.ID, "first", map[string]interface{}{"flat_id": 1, "rent_id": 3})
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	_, err = env.notices.Notify(ctx, db, user.ID, "second", nil)
	require.NoError(t, err)
	foreign, err := env.notices.Notify(ctx, db, other.ID, "foreign", nil)
	require.NoError(t, err)

	list, err := env.notices.GetUserNotifications(db, user.ID, &dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Text, "новые сверху")
	assert.JSONEq(t, `{"flat_id":1,"rent_id":3}`, string(list[1].Data))
	assert.False(t, list[1].Read)

	page, err := env.notices.GetUserNotifications(db, user.ID, &dto.PageQuery{Page: 2, PageSize: testutil.IntPtr(1)})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Text)

	view, err := env.notices.MarkAsRead(db, user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, view.Read)

	_, err = env.notices.MarkAsRead(db, user.ID, foreign.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}
