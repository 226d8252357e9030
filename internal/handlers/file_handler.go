package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"axas_backend/internal/logger"
	"axas_backend/internal/storage"
	"axas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

var errFileNotFound = apperrors.NewNotFoundError("path", "Файл не найден")

// FileHandler отдает загруженные файлы из хранилища (для local-хранилища без CDN)
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, storage storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storage,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*path", h.ServeFile)
}

// ServeFile godoc
// @Summary Загруженный файл
// @Tags files
// @Produce octet-stream
// @Param path path string true "Ключ файла"
// @Success 200 {file} binary
// @Failure 404 {object} envelope.Envelope
// @Router /files/{path} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	ctx := c.Request.Context()
	key := strings.TrimPrefix(c.Param("path"), "/")

	exists, err := h.storage.Exists(ctx, key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, errFileNotFound)
		return
	}

	reader, err := h.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			apperrors.HandleError(c, errFileNotFound)
			return
		}
		logger.CtxWithError(ctx, "Failed to open stored file", err, "key", key)
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	// inline отдаются только изображения, остальное - как вложение
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if !strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "image/svg") {
		contentType = "application/octet-stream"
		c.Header("Content-Disposition", "attachment")
	}

	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}
