package handlers

import (
	"encoding/json"
	"mime/multipart"

	"axas_backend/internal/services"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/apperrors"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	profile.Use(h.RequireAuth())
	{
		profile.GET("/", h.GetProfile)
		profile.PUT("/", h.UpdateProfile)
		profile.DELETE("/", h.DeleteProfile)
		profile.PUT("/avatar/", h.UpdateAvatar)
		profile.PUT("/passport-photo/", h.UpdatePassportPhoto)
		profile.PUT("/tel/", h.UpdateTel)
	}
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} envelope.Envelope{data=dto.ProfileView}
// @Failure 401 {object} envelope.Envelope
// @Router /profile/ [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, profile)
}

// UpdateProfile godoc
// @Summary Редактировать профиль
// @Description Переданные поля заменяются (null очищает), отсутствующие остаются без изменений
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Поля профиля"
// @Success 200 {object} envelope.Envelope{data=dto.ProfileView}
// @Failure 400 {object} envelope.Envelope
// @Failure 401 {object} envelope.Envelope
// @Router /profile/ [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	// map, а не структура: нужно отличать null от отсутствующего ключа
	var patch dto.ProfilePatch
	if err := json.NewDecoder(c.Request.Body).Decode(&patch); err != nil || patch == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("body", apperrors.PathBody, "Must be a JSON object"))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), h.GetDB(c), user.ID, patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, profile)
}

// UpdateAvatar godoc
// @Summary Загрузить аватар
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Изображение"
// @Success 200 {object} envelope.Envelope{data=dto.ProfileView}
// @Failure 400 {object} envelope.Envelope
// @Failure 415 {object} envelope.Envelope
// @Router /profile/avatar/ [put]
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	file, ok := imageFromForm(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateAvatar(c.Request.Context(), h.GetDB(c), user.ID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, profile)
}

// UpdatePassportPhoto godoc
// @Summary Загрузить фото паспорта
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Изображение"
// @Success 200 {object} envelope.Envelope{data=dto.ProfileView}
// @Failure 400 {object} envelope.Envelope
// @Failure 415 {object} envelope.Envelope
// @Router /profile/passport-photo/ [put]
func (h *ProfileHandler) UpdatePassportPhoto(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	file, ok := imageFromForm(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdatePassportPhoto(c.Request.Context(), h.GetDB(c), user.ID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, profile)
}

// UpdateTel godoc
// @Summary Сменить телефон
// @Description Новый номер подтверждается кодом, выданным через /tels/verify/
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SiwTelRequest true "Новый телефон и код"
// @Success 200 {object} envelope.Envelope{data=dto.ProfileView}
// @Failure 401 {object} envelope.Envelope
// @Router /profile/tel/ [put]
func (h *ProfileHandler) UpdateTel(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.SiwTelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateTel(c.Request.Context(), h.GetDB(c), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, profile)
}

// DeleteProfile godoc
// @Summary Удалить аккаунт
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} envelope.Envelope
// @Failure 401 {object} envelope.Envelope
// @Router /profile/ [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteUser(c.Request.Context(), h.GetDB(c), user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, nil)
}

// imageFromForm достает файл из multipart-поля image
func imageFromForm(c *gin.Context) (*multipart.FileHeader, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileRequired)
		return nil, false
	}
	return file, true
}
