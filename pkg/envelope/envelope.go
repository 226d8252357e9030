package envelope

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error - элемент списка errors в ответе
type Error struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Source     string      `json:"source"`
	Path       string      `json:"path"`
	Additional interface{} `json:"additional"`
}

// Envelope - единый формат ответа для всех эндпоинтов
type Envelope struct {
	Status      int         `json:"status"`
	Data        interface{} `json:"data"`
	Message     *string     `json:"message"`
	Errors      []Error     `json:"errors"`
	Description *string     `json:"description"`
}

// New собирает конверт. Пустые message/description сериализуются как null.
func New(status int, data interface{}, message string, errs []Error, description string) Envelope {
	if errs == nil {
		errs = []Error{}
	}
	return Envelope{
		Status:      status,
		Data:        data,
		Message:     nullable(message),
		Errors:      errs,
		Description: nullable(description),
	}
}

// OK отвечает 200 с данными
func OK(c *gin.Context, data interface{}) {
	Respond(c, http.StatusOK, data)
}

// Respond отвечает успешным конвертом с произвольным статусом
func Respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, New(status, data, "", nil, ""))
}

// Fail отвечает конвертом ошибки и прерывает цепочку middleware
func Fail(c *gin.Context, status int, message string, errs []Error, description string) {
	c.AbortWithStatusJSON(status, New(status, nil, message, errs, description))
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
