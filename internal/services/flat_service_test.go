package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"axas_backend/internal/models"
	"axas_backend/internal/services/dto"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createFlatBody = `{
	"title": "Studio near the sea",
	"room_count": 1,
	"address": "Sochi, Morskaya 5",
	"lat": 43.58, "lon": 39.72, "area": 28.5,
	"price_short": 3000, "price_long": null,
	"guest_count": 2, "bed_count": 1, "restroom_count": 1,
	"has_balcony": true,
	"children": false, "animals": true, "washing_machine": true, "fridge": true, "tv": false,
	"dishwasher": false, "air_conditioner": true, "smoking": false, "noise": false, "party": false
}`

func decodeCreateFlat(t *testing.T, body string) *dto.CreateFlatRequest {
	t.Helper()
	var req dto.CreateFlatRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestFlatService_CreateFlat(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")

	view, err := env.flats.CreateFlat(context.Background(), db, owner.ID, decodeCreateFlat(t, createFlatBody))
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, "Studio near the sea", view.Title)
	assert.True(t, view.HasLoggia, "has_loggia по умолчанию равен has_balcony")
	assert.Equal(t, 3000, *view.PriceShort)
	assert.Nil(t, view.PriceLong)
	assert.Equal(t, FlatStatusFree, view.Status)
	assert.Equal(t, testNow.Unix(), view.NearRent)
	assert.Empty(t, view.Pictures)

	var stored models.Flat
	require.NoError(t, db.First(&stored, view.ID).Error)
	assert.True(t, stored.OwnedBy(owner.ID))
	assert.True(t, stored.Animals)
	assert.False(t, stored.TV)
}

func TestFlatService_CreateFlatRequiresPriceKeys(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(createFlatBody), &body))
	delete(body, "price_long")
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	_, err = env.flats.CreateFlat(context.Background(), db, owner.ID, decodeCreateFlat(t, string(raw)))
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	require.Len(t, appErr.Items, 1)
	assert.Equal(t, "price_long", appErr.Items[0].Source)
}

func TestFlatService_UpdateFlat(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")
	stranger := testutil.CreateUser(t, db, "79001112233")
	flat := testutil.CreateFlat(t, db, owner.ID, "Old title")

	var req dto.EditFlatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New title","price_short":null,"tv":true}`), &req))

	_, err := env.flats.UpdateFlat(context.Background(), db, stranger.ID, flat.ID, &req)
	assert.ErrorIs(t, err, apperrors.ErrFlatForbidden)

	_, err = env.flats.UpdateFlat(context.Background(), db, owner.ID, 9999, &req)
	assert.ErrorIs(t, err, apperrors.ErrFlatNotFound)

	view, err := env.flats.UpdateFlat(context.Background(), db, owner.ID, flat.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, "New title", view.Title)
	assert.Nil(t, view.PriceShort, "null очищает цену")
	assert.Equal(t, 2000, *view.PriceLong, "отсутствующая цена не меняется")
	assert.True(t, view.TV)
	assert.Equal(t, flat.Address, view.Address)
}

func TestFlatService_AddPicture(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")
	flat := testutil.CreateFlat(t, db, owner.ID, "With photos")

	_, err := env.flats.AddPicture(context.Background(), db, 9999, multipartFile(t, "a.png", "image/png", pngHeader))
	assert.ErrorIs(t, err, apperrors.ErrFlatNotFound)

	for _, name := range []string{"a.png", "b.png"} {
		_, err = env.flats.AddPicture(context.Background(), db, flat.ID, multipartFile(t, name, "image/png", pngHeader))
		require.NoError(t, err)
	}

	view, err := env.flats.GetFlat(db, flat.ID)
	require.NoError(t, err)
	require.Len(t, view.Pictures, 2)
	assert.Contains(t, view.Pictures[0], "/files/flats/2024/5/10/")
}

func TestFlatService_SearchFlats(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")
	other := testutil.CreateUser(t, db, "79001112233")

	testutil.CreateFlat(t, db, owner.ID, "Sunny loft", func(f *models.Flat) { f.HasBalcony = true; f.Animals = true })
	testutil.CreateFlat(t, db, owner.ID, "Dark basement", func(f *models.Flat) { f.Address = "Moscow, Tverskaya 1" })
	testutil.CreateFlat(t, db, other.ID, "Sunny studio", func(f *models.Flat) { f.HasBalcony = true })

	all, err := env.flats.SearchFlats(db, &dto.FlatListQuery{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	balcony, err := env.flats.SearchFlats(db, &dto.FlatListQuery{HasBalcony: "1", Animals: "2"}, nil)
	require.NoError(t, err)
	require.Len(t, balcony, 1)
	assert.Equal(t, "Sunny studio", balcony[0].Title)

	search, err := env.flats.SearchFlats(db, &dto.FlatListQuery{Search: "TVERSK"}, nil)
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Dark basement", search[0].Title)

	mine, err := env.flats.SearchFlats(db, &dto.FlatListQuery{Search: "sunny"}, &owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Sunny loft", mine[0].Title)

	_, err = env.flats.SearchFlats(db, &dto.FlatListQuery{Fridge: "3"}, nil)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "fridge", appErr.Items[0].Source)
	assert.Equal(t, apperrors.PathQuery, appErr.Items[0].Path)
}

func TestFlatService_SearchFlatsPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")
	for i := 0; i < 35; i++ {
		testutil.CreateFlat(t, db, owner.ID, "Flat")
	}

	unpaged, err := env.flats.SearchFlats(db, &dto.FlatListQuery{}, nil)
	require.NoError(t, err)
	assert.Len(t, unpaged, 35)

	firstPage, err := env.flats.SearchFlats(db, &dto.FlatListQuery{Page: 1}, nil)
	require.NoError(t, err)
	assert.Len(t, firstPage, 30)
	assert.Equal(t, unpaged[0].ID, firstPage[0].ID)

	sized, err := env.flats.SearchFlats(db, &dto.FlatListQuery{PageSize: testutil.IntPtr(10)}, nil)
	require.NoError(t, err)
	assert.Len(t, sized, 10)

	secondPage, err := env.flats.SearchFlats(db, &dto.FlatListQuery{Page: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, secondPage, 5)

	all, err := env.flats.SearchFlats(db, &dto.FlatListQuery{PageSize: testutil.IntPtr(0)}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 35)
}

func TestFlatService_GetFlatStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	env := newTestEnv(t)
	owner := testutil.CreateUser(t, db, "79184167161")
	flat := testutil.CreateFlat(t, db, owner.ID, "Busy flat")
	testutil.CreateRent(t, db, flat.ID, owner.ID, testNow.Add(-24*time.Hour), testNow.Add(24*time.Hour))

	view, err := env.flats.GetFlat(db, flat.ID)
	require.NoError(t, err)
	assert.Equal(t, FlatStatusRented, view.Status)
	assert.Equal(t, testNow.Add(24*time.Hour).Unix(), view.NearRent)

	_, err = env.flats.GetFlat(db, 9999)
	assert.ErrorIs(t, err, apperrors.ErrFlatNotFound)
}
