package handlers

import (
	"strconv"
	"strings"

	"axas_backend/internal/services"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/tels/verify/", h.RequestCode)
	r.POST("/siw/tel/", h.SignIn)
}

// RequestCode godoc
// @Summary Выдать код подтверждения
// @Description Отправляет 4-значный код по SMS (телефон) или email. Для номеров из белого списка код фиксированный.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TelRequest true "Телефон или email"
// @Success 200 {object} envelope.Envelope{data=dto.IssueCodeResponse}
// @Failure 400 {object} envelope.Envelope
// @Failure 429 {object} envelope.Envelope
// @Failure 502 {object} envelope.Envelope
// @Router /tels/verify/ [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req dto.TelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.RequestCode(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, resp)
}

// SignIn godoc
// @Summary Вход по коду подтверждения
// @Description Проверяет код, при первом входе регистрирует пользователя и выдает пару токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SiwTelRequest true "Телефон и код"
// @Param device header string false "Firebase ID устройства"
// @Param Enable-Notifications header bool false "Разрешить уведомления (по умолчанию true)"
// @Success 200 {object} envelope.Envelope{data=dto.SignInResponse}
// @Failure 400 {object} envelope.Envelope
// @Failure 401 {object} envelope.Envelope
// @Router /siw/tel/ [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SiwTelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.SignIn(c.Request.Context(), h.GetDB(c), &req, deviceFromHeaders(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, resp)
}

// deviceFromHeaders читает заголовки device, User-Agent и Enable-Notifications
func deviceFromHeaders(c *gin.Context) dto.DeviceInfo {
	info := dto.DeviceInfo{EnableNotifications: true}

	if device := strings.TrimSpace(c.GetHeader("device")); device != "" {
		info.FirebaseID = &device
	}
	if ua := c.GetHeader("User-Agent"); ua != "" {
		info.UserAgent = &ua
	}
	if raw := c.GetHeader("Enable-Notifications"); raw != "" {
		if enable, err := strconv.ParseBool(raw); err == nil {
			info.EnableNotifications = enable
		}
	}
	return info
}
