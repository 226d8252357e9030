package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound - объект отсутствует в хранилище
var ErrNotFound = errors.New("storage: object not found")

// Storage - хранилище загруженных файлов (аватары, фото паспорта, фото квартир).
// Ключ - относительный путь вида "<category>/<year>/<month>/<day>/<name>".
type Storage interface {
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL возвращает публичную ссылку на объект
	URL(key string) string
}

type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local
	BaseURL    string // публичный префикс ссылок
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // R2 или совместимый S3
	UseSSL     bool
	PublicRead bool
}

// NewStorage выбирает реализацию по cfg.Type
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
