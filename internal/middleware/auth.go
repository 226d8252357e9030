package middleware

import (
	"axas_backend/internal/logger"
	"axas_backend/internal/models"
	"axas_backend/internal/services"
	"axas_backend/pkg/apperrors"
	"axas_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware находит пользователя по access-токену из заголовка Authorization.
// Должен стоять после DBMiddleware.
func AuthMiddleware(tokenService services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		user, pair, err := tokenService.Lookup(db, c.GetHeader("Authorization"))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Authorization failed",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
				"error", err.Error(),
			)
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.UserContextKey), user)
		c.Set(string(contextkeys.TokenPairContextKey), pair)
		c.Next()
	}
}

// CurrentUser возвращает пользователя, найденного AuthMiddleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(string(contextkeys.UserContextKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok && user != nil
}
