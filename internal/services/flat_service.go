package services

import (
	"context"
	"errors"
	"mime/multipart"

	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FlatService interface {
	CreateFlat(ctx context.Context, db *gorm.DB, ownerID uint, req *dto.CreateFlatRequest) (*dto.FlatView, error)
	UpdateFlat(ctx context.Context, db *gorm.DB, ownerID, flatID uint, req *dto.EditFlatRequest) (*dto.FlatView, error)
	AddPicture(ctx context.Context, db *gorm.DB, flatID uint, file *multipart.FileHeader) (*dto.FlatView, error)
	GetFlat(db *gorm.DB, flatID uint) (*dto.FlatView, error)
	// SearchFlats - список с фильтрами; ownerID != nil ограничивает квартирами владельца
	SearchFlats(db *gorm.DB, query *dto.FlatListQuery, ownerID *uint) ([]dto.FlatShortView, error)
}

type flatService struct {
	flatRepo      repositories.FlatRepository
	pictureRepo   repositories.FlatPictureRepository
	uploadService UploadService
	pageSize      int
	now           Clock
}

func NewFlatService(
	flatRepo repositories.FlatRepository,
	pictureRepo repositories.FlatPictureRepository,
	uploadService UploadService,
	pageSize int,
	clock Clock,
) FlatService {
	return &flatService{
		flatRepo:      flatRepo,
		pictureRepo:   pictureRepo,
		uploadService: uploadService,
		pageSize:      pageSize,
		now:           clockOrSystem(clock),
	}
}

func (s *flatService) findFlat(db *gorm.DB, flatID uint) (*models.Flat, error) {
	flat, err := s.flatRepo.FindByID(db, flatID)
	if err != nil {
		if errors.Is(err, repositories.ErrFlatNotFound) {
			return nil, apperrors.ErrFlatNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return flat, nil
}

func (s *flatService) CreateFlat(ctx context.Context, db *gorm.DB, ownerID uint, req *dto.CreateFlatRequest) (*dto.FlatView, error) {
	missing := make(map[string]string)
	if !req.PriceShort.Set {
		missing["price_short"] = "This field is required"
	}
	if !req.PriceLong.Set {
		missing["price_long"] = "This field is required"
	}
	if len(missing) > 0 {
		return nil, apperrors.ValidationError(missing, apperrors.PathBody)
	}

	hasLoggia := *req.HasBalcony
	if req.HasLoggia != nil {
		hasLoggia = *req.HasLoggia
	}

	owner := ownerID
	flat := &models.Flat{
		UserID:         &owner,
		CreatedAt:      s.now(),
		Title:          *req.Title,
		RoomCount:      *req.RoomCount,
		Address:        *req.Address,
		Lat:            *req.Lat,
		Lon:            *req.Lon,
		Area:           *req.Area,
		PriceShort:     req.PriceShort.Value,
		PriceLong:      req.PriceLong.Value,
		GuestCount:     *req.GuestCount,
		BedCount:       *req.BedCount,
		RestroomCount:  *req.RestroomCount,
		HasBalcony:     *req.HasBalcony,
		HasLoggia:      hasLoggia,
		Children:       *req.Children,
		Animals:        *req.Animals,
		WashingMachine: *req.WashingMachine,
		Fridge:         *req.Fridge,
		TV:             *req.TV,
		Dishwasher:     *req.Dishwasher,
		AirConditioner: *req.AirConditioner,
		Smoking:        *req.Smoking,
		Noise:          *req.Noise,
		Party:          *req.Party,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return s.flatRepo.Create(tx, flat)
	})
	if err != nil {
		return nil, persistenceError(err, "flat")
	}

	logger.CtxInfo(ctx, "Flat created", "flat_id", flat.ID, "owner_id", ownerID)
	return toFlatView(flat, s.now()), nil
}

func (s *flatService) UpdateFlat(ctx context.Context, db *gorm.DB, ownerID, flatID uint, req *dto.EditFlatRequest) (*dto.FlatView, error) {
	var updated *models.Flat
	err := db.Transaction(func(tx *gorm.DB) error {
		flat, err := s.findFlat(tx, flatID)
		if err != nil {
			return err
		}
		if !flat.OwnedBy(ownerID) {
			return apperrors.ErrFlatForbidden
		}

		before := *flat
		applyFlatPatch(flat, req)

		changes := repositories.Diff(&before, flat)
		if len(changes) > 0 {
			if err := s.flatRepo.Save(tx, flat); err != nil {
				return err
			}
			fields := make([]string, 0, len(changes))
			for name := range changes {
				fields = append(fields, name)
			}
			logger.CtxInfo(ctx, "Flat updated", "flat_id", flatID, "fields", fields)
		}

		updated = flat
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "flat_id")
	}
	return toFlatView(updated, s.now()), nil
}

func applyFlatPatch(flat *models.Flat, req *dto.EditFlatRequest) {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	setString(&flat.Title, req.Title)
	setInt(&flat.RoomCount, req.RoomCount)
	setString(&flat.Address, req.Address)
	setFloat(&flat.Lat, req.Lat)
	setFloat(&flat.Lon, req.Lon)
	setFloat(&flat.Area, req.Area)
	if req.PriceShort.Set {
		flat.PriceShort = req.PriceShort.Value
	}
	if req.PriceLong.Set {
		flat.PriceLong = req.PriceLong.Value
	}
	setInt(&flat.GuestCount, req.GuestCount)
	setInt(&flat.BedCount, req.BedCount)
	setInt(&flat.RestroomCount, req.RestroomCount)

	setBool(&flat.HasBalcony, req.HasBalcony)
	setBool(&flat.HasLoggia, req.HasLoggia)
	setBool(&flat.Children, req.Children)
	setBool(&flat.Animals, req.Animals)
	setBool(&flat.WashingMachine, req.WashingMachine)
	setBool(&flat.Fridge, req.Fridge)
	setBool(&flat.TV, req.TV)
	setBool(&flat.Dishwasher, req.Dishwasher)
	setBool(&flat.AirConditioner, req.AirConditioner)
	setBool(&flat.Smoking, req.Smoking)
	setBool(&flat.Noise, req.Noise)
	setBool(&flat.Party, req.Party)
}

func (s *flatService) AddPicture(ctx context.Context, db *gorm.DB, flatID uint, file *multipart.FileHeader) (*dto.FlatView, error) {
	// 404 до загрузки файла, чтобы не оставлять сирот в хранилище
	if _, err := s.findFlat(db, flatID); err != nil {
		return nil, err
	}

	stored, err := s.uploadService.StoreImage(ctx, CategoryFlats, file)
	if err != nil {
		return nil, err
	}

	var flat *models.Flat
	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.findFlat(tx, flatID); err != nil {
			return err
		}
		picture := &models.FlatPicture{FlatID: flatID, Link: stored.URL}
		if err := s.pictureRepo.Create(tx, picture); err != nil {
			return err
		}
		flat, err = s.findFlat(tx, flatID)
		return err
	})
	if err != nil {
		s.uploadService.Remove(ctx, stored)
		return nil, persistenceError(err, "image")
	}

	logger.CtxInfo(ctx, "Flat picture added", "flat_id", flatID, "key", stored.Key)
	return toFlatView(flat, s.now()), nil
}

func (s *flatService) GetFlat(db *gorm.DB, flatID uint) (*dto.FlatView, error) {
	flat, err := s.findFlat(db, flatID)
	if err != nil {
		return nil, err
	}
	return toFlatView(flat, s.now()), nil
}

// amenityFilter переводит трехзначные параметры в условия по колонкам
func amenityFilter(query *dto.FlatListQuery) (map[string]bool, error) {
	filter := make(map[string]bool)
	invalid := make(map[string]string)
	for column, value := range query.Amenities() {
		switch value {
		case "", "0":
		case "1":
			filter[column] = true
		case "2":
			filter[column] = false
		default:
			invalid[column] = "Must be one of: 0, 1, 2"
		}
	}
	if len(invalid) > 0 {
		return nil, apperrors.ValidationError(invalid, apperrors.PathQuery)
	}
	return filter, nil
}

func (s *flatService) SearchFlats(db *gorm.DB, query *dto.FlatListQuery, ownerID *uint) ([]dto.FlatShortView, error) {
	if query == nil {
		query = &dto.FlatListQuery{}
	}
	amenities, err := amenityFilter(query)
	if err != nil {
		return nil, err
	}

	// без page и page_size возвращаются все квартиры
	var limit, offset int
	if query.Page > 0 || query.PageSize != nil {
		limit, offset = dto.LimitOffset(query.Page, query.PageSize, s.pageSize)
	}
	flats, err := s.flatRepo.List(db, repositories.FlatFilter{
		OwnerID:   ownerID,
		Amenities: amenities,
		Search:    query.Search,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	now := s.now()
	views := make([]dto.FlatShortView, 0, len(flats))
	for i := range flats {
		views = append(views, toFlatShortView(&flats[i], now))
	}
	return views, nil
}
