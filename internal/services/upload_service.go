package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"axas_backend/internal/logger"
	"axas_backend/internal/storage"
	"axas_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Категории загружаемых файлов, они же префиксы ключей в хранилище
const (
	CategoryAvatars   = "avatars"
	CategoryPassports = "passports"
	CategoryFlats     = "flats"
)

// UploadConfig - ограничения на загружаемые изображения
type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string // пустой список - любой image/*
}

// StoredFile - сохраненный файл
type StoredFile struct {
	Key         string
	URL         string
	ContentType string
}

type UploadService interface {
	// StoreImage сохраняет изображение под <category>/<y>/<m>/<d>/<uuid><ext>
	StoreImage(ctx context.Context, category string, file *multipart.FileHeader) (*StoredFile, error)
	// Remove удаляет файл, например после отката транзакции
	Remove(ctx context.Context, file *StoredFile)
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
	now     Clock
}

func NewUploadService(storage storage.Storage, config UploadConfig, clock Clock) UploadService {
	return &uploadService{
		storage: storage,
		config:  config,
		now:     clockOrSystem(clock),
	}
}

func (s *uploadService) StoreImage(ctx context.Context, category string, file *multipart.FileHeader) (*StoredFile, error) {
	if file == nil {
		return nil, apperrors.ErrFileRequired
	}
	if s.config.MaxFileSize > 0 && file.Size > s.config.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	detected, err := detectContentType(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	contentType := detected.String()
	if !s.isAllowed(contentType) {
		logger.CtxWarn(ctx, "Rejected upload",
			"content_type", contentType,
			"declared_type", file.Header.Get("Content-Type"),
			"filename", file.Filename,
		)
		return nil, apperrors.ErrInvalidFileType
	}

	key := s.buildKey(category, detected.Extension())
	if err := s.storage.Save(ctx, key, src, contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to save file to storage: %w", err))
	}

	logger.CtxInfo(ctx, "File stored", "key", key, "size", file.Size)
	return &StoredFile{Key: key, URL: s.storage.URL(key), ContentType: contentType}, nil
}

func (s *uploadService) Remove(ctx context.Context, file *StoredFile) {
	if file == nil {
		return
	}
	if err := s.storage.Delete(ctx, file.Key); err != nil {
		logger.CtxWithError(ctx, "CRITICAL: failed to remove stored file", err, "key", file.Key)
	}
}

// detectContentType определяет тип только по содержимому; заголовок и имя файла клиента не учитываются
func detectContentType(src multipart.File) (*mimetype.MIME, error) {
	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
	}
	return detected, nil
}

func (s *uploadService) isAllowed(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	// svg может содержать скрипты
	if !strings.HasPrefix(contentType, "image/") || contentType == "image/svg+xml" {
		return false
	}
	if len(s.config.AllowedTypes) == 0 {
		return true
	}
	for _, allowed := range s.config.AllowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}

// buildKey - расширение берется из определенного типа
func (s *uploadService) buildKey(category, ext string) string {
	now := s.now()
	return fmt.Sprintf("%s/%d/%d/%d/%s%s", category, now.Year(), int(now.Month()), now.Day(), uuid.New().String(), ext)
}
