package handlers

import (
	"axas_backend/pkg/apperrors"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health godoc
// @Summary Проверка доступности
// @Tags system
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 500 {object} envelope.Envelope
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		apperrors.HandleError(c, apperrors.PersistenceError(err))
		return
	}

	envelope.OK(c, gin.H{"status": "ok"})
}
