package handlers

import (
	"axas_backend/internal/services"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type FlatHandler struct {
	*BaseHandler
	flatService services.FlatService
	rentService services.RentService
}

func NewFlatHandler(base *BaseHandler, flatService services.FlatService, rentService services.RentService) *FlatHandler {
	return &FlatHandler{
		BaseHandler: base,
		flatService: flatService,
		rentService: rentService,
	}
}

func (h *FlatHandler) RegisterRoutes(r *gin.RouterGroup) {
	flats := r.Group("/flats")
	{
		// Публичные
		flats.GET("/", h.ListFlats)
		flats.GET("/:flat_id/", h.GetFlat)

		// Владелец и арендатор
		flats.POST("/", h.RequireAuth(), h.CreateFlat)
		flats.GET("/me/", h.RequireAuth(), h.ListMyFlats)
		flats.GET("/me/rents/", h.RequireAuth(), h.ListMyRents)
		flats.PUT("/:flat_id/", h.RequireAuth(), h.UpdateFlat)
		flats.POST("/:flat_id/pictures/", h.RequireAuth(), h.AddPicture)
		flats.POST("/:flat_id/rents/", h.RequireAuth(), h.CreateRent)
	}
}

// CreateFlat godoc
// @Summary Разместить квартиру
// @Description Все поля обязательны; price_short и price_long допускают null. has_loggia по умолчанию равен has_balcony.
// @Tags flats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFlatRequest true "Квартира"
// @Success 200 {object} envelope.Envelope{data=dto.FlatView}
// @Failure 400 {object} envelope.Envelope
// @Failure 401 {object} envelope.Envelope
// @Router /flats/ [post]
func (h *FlatHandler) CreateFlat(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateFlatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flat, err := h.flatService.CreateFlat(c.Request.Context(), h.GetDB(c), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flat)
}

// UpdateFlat godoc
// @Summary Редактировать квартиру
// @Tags flats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param flat_id path int true "ID квартиры"
// @Param request body dto.EditFlatRequest true "Изменяемые поля"
// @Success 200 {object} envelope.Envelope{data=dto.FlatView}
// @Failure 403 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /flats/{flat_id}/ [put]
func (h *FlatHandler) UpdateFlat(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	flatID, ok := ParseParamUint(c, "flat_id", "flat_id")
	if !ok {
		return
	}

	var req dto.EditFlatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flat, err := h.flatService.UpdateFlat(c.Request.Context(), h.GetDB(c), user.ID, flatID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flat)
}

// AddPicture godoc
// @Summary Добавить фото квартиры
// @Tags flats
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param flat_id path int true "ID квартиры"
// @Param image formData file true "Изображение"
// @Success 200 {object} envelope.Envelope{data=dto.FlatView}
// @Failure 404 {object} envelope.Envelope
// @Failure 415 {object} envelope.Envelope
// @Router /flats/{flat_id}/pictures/ [post]
func (h *FlatHandler) AddPicture(c *gin.Context) {
	if _, ok := h.GetCurrentUser(c); !ok {
		return
	}

	flatID, ok := ParseParamUint(c, "flat_id", "flat_id")
	if !ok {
		return
	}

	file, ok := imageFromForm(c)
	if !ok {
		return
	}

	flat, err := h.flatService.AddPicture(c.Request.Context(), h.GetDB(c), flatID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flat)
}

// ListFlats godoc
// @Summary Поиск квартир
// @Description Фильтры удобств: 0 или пусто - без ограничения, 1 - есть, 2 - нет. search ищет по названию и адресу.
// @Tags flats
// @Produce json
// @Param has_balcony query string false "0/1/2"
// @Param children query string false "0/1/2"
// @Param animals query string false "0/1/2"
// @Param search query string false "Подстрока названия или адреса"
// @Param page query int false "Страница, с 1"
// @Param page_size query int false "Размер страницы, 0 - все; без page и page_size - все квартиры"
// @Success 200 {object} envelope.Envelope{data=[]dto.FlatShortView}
// @Failure 400 {object} envelope.Envelope
// @Router /flats/ [get]
func (h *FlatHandler) ListFlats(c *gin.Context) {
	var query dto.FlatListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	flats, err := h.flatService.SearchFlats(h.GetDB(c), &query, nil)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flats)
}

// ListMyFlats godoc
// @Summary Мои квартиры
// @Description Те же фильтры, что и у /flats/, только по квартирам текущего пользователя
// @Tags flats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} envelope.Envelope{data=[]dto.FlatShortView}
// @Failure 401 {object} envelope.Envelope
// @Router /flats/me/ [get]
func (h *FlatHandler) ListMyFlats(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var query dto.FlatListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	flats, err := h.flatService.SearchFlats(h.GetDB(c), &query, &user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flats)
}

// GetFlat godoc
// @Summary Карточка квартиры
// @Description Включает статус (Free/Reserved/Rented) и ближайшее бронирование
// @Tags flats
// @Produce json
// @Param flat_id path int true "ID квартиры"
// @Success 200 {object} envelope.Envelope{data=dto.FlatView}
// @Failure 404 {object} envelope.Envelope
// @Router /flats/{flat_id}/ [get]
func (h *FlatHandler) GetFlat(c *gin.Context) {
	flatID, ok := ParseParamUint(c, "flat_id", "flat_id")
	if !ok {
		return
	}

	flat, err := h.flatService.GetFlat(h.GetDB(c), flatID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, flat)
}

// CreateRent godoc
// @Summary Забронировать квартиру
// @Tags rents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param flat_id path int true "ID квартиры"
// @Param request body dto.CreateRentRequest true "Интервал в unix-секундах"
// @Success 200 {object} envelope.Envelope{data=dto.RentView}
// @Failure 400 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /flats/{flat_id}/rents/ [post]
func (h *FlatHandler) CreateRent(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	flatID, ok := ParseParamUint(c, "flat_id", "flat_id")
	if !ok {
		return
	}

	var req dto.CreateRentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	rent, err := h.rentService.CreateRent(c.Request.Context(), h.GetDB(c), flatID, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, rent)
}

// ListMyRents godoc
// @Summary Бронирования моих квартир
// @Tags rents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} envelope.Envelope{data=[]dto.RentView}
// @Failure 401 {object} envelope.Envelope
// @Router /flats/me/rents/ [get]
func (h *FlatHandler) ListMyRents(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	rents, err := h.rentService.GetOwnerRents(h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, rents)
}
