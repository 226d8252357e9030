package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError пишет ошибку в конверт ответа
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", err, "path", c.Request.URL.Path)
	}

	body := appErr.Envelope()
	if h.Debug && appErr.Err != nil && len(body.Errors) > 0 {
		body.Errors[0].Additional = appErr.Err.Error()
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, body)
}

var defaultHandler = &GinErrorHandler{}

// SetDebug включает вывод внутренних ошибок в поле additional
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
