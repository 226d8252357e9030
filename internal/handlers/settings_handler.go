package handlers

import (
	"axas_backend/internal/services"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	deviceService services.DeviceService
}

func NewSettingsHandler(base *BaseHandler, deviceService services.DeviceService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:   base,
		deviceService: deviceService,
	}
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/settings/", h.RequireAuth(), h.EditSettings)
}

// EditSettings godoc
// @Summary Настройки уведомлений устройства
// @Description Привязывает устройство к текущему пользователю и возвращает все его устройства
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EditSettingsRequest true "Устройство и флаг уведомлений"
// @Success 200 {object} envelope.Envelope{data=[]dto.DeviceView}
// @Failure 400 {object} envelope.Envelope
// @Failure 401 {object} envelope.Envelope
// @Router /settings/ [put]
func (h *SettingsHandler) EditSettings(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.EditSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var userAgent *string
	if ua := c.GetHeader("User-Agent"); ua != "" {
		userAgent = &ua
	}

	devices, err := h.deviceService.UpdateSettings(h.GetDB(c), user.ID, &req.Device, *req.EnableNotifications, userAgent)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, devices)
}
