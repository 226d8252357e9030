package handlers

import (
	"axas_backend/internal/services"
	"axas_backend/internal/services/dto"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(h.RequireAuth())
	{
		notifications.GET("/", h.GetUserNotifications)
		notifications.PUT("/:notification_id/read/", h.MarkAsRead)
	}
}

// GetUserNotifications godoc
// @Summary Уведомления текущего пользователя
// @Description Сначала новые
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница, с 1"
// @Param page_size query int false "Размер страницы, 0 - все"
// @Success 200 {object} envelope.Envelope{data=[]dto.NotificationView}
// @Failure 401 {object} envelope.Envelope
// @Router /notifications/ [get]
func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	notifications, err := h.notificationService.GetUserNotifications(h.GetDB(c), user.ID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, notifications)
}

// MarkAsRead godoc
// @Summary Отметить уведомление прочитанным
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param notification_id path int true "ID уведомления"
// @Success 200 {object} envelope.Envelope{data=dto.NotificationView}
// @Failure 404 {object} envelope.Envelope
// @Router /notifications/{notification_id}/read/ [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	notificationID, ok := ParseParamUint(c, "notification_id", "notification_id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkAsRead(h.GetDB(c), user.ID, notificationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope.OK(c, notification)
}
