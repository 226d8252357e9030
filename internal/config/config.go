package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Env             string `yaml:"env"`
		PublicURL       string `yaml:"public_url"`
		ReadTimeout     int    `yaml:"read_timeout"`     // секунды
		WriteTimeout    int    `yaml:"write_timeout"`    // секунды
		ShutdownTimeout int    `yaml:"shutdown_timeout"` // секунды

		AllowedOrigins []string `yaml:"allowed_origins"` // пустой список или "*" - любой Origin
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver"` // postgres, mysql
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseSSL       bool   `yaml:"use_ssl"`
		DryRun       bool   `yaml:"dry_run"`
	} `yaml:"email"`

	SMS struct {
		BaseURL  string `yaml:"base_url"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DryRun   bool   `yaml:"dry_run"`
		Timeout  int    `yaml:"timeout"` // секунды
	} `yaml:"sms"`

	Verification struct {
		TTLMinutes    int      `yaml:"ttl_minutes"`
		Whitelist     []string `yaml:"whitelist"`
		WhitelistCode string   `yaml:"whitelist_code"`
		BcryptCost    int      `yaml:"bcrypt_cost"`
		MaxPerWindow  int64    `yaml:"max_per_window"`
		WindowSeconds int      `yaml:"window_seconds"`
	} `yaml:"verification"`

	Tokens struct {
		Length         int `yaml:"length"`
		AccessTTLHours int `yaml:"access_ttl_hours"`
		RefreshTTLDays int `yaml:"refresh_ttl_days"`
	} `yaml:"tokens"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3/R2
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3/R2
		SecretKey  string `yaml:"secret_key"`  // For S3/R2
		Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`     // For S3/R2
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Cleanup struct {
		Schedule           string `yaml:"schedule"`
		CodeRetentionHours int    `yaml:"code_retention_hours"`
	} `yaml:"cleanup"`

	Listing struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"listing"`
}

// DefaultWhitelist - номера, для которых выдается фиксированный тестовый код
var DefaultWhitelist = []string{"79184167161", "79183657351", "79914202022", "79897687220", "79298341480"}

var AppConfig *Config

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"
	cfg.Server.ReadTimeout = 30
	cfg.Server.WriteTimeout = 60
	cfg.Server.ShutdownTimeout = 15

	cfg.Database.Driver = "postgres"
	cfg.Database.MaxOpenConns = 100
	cfg.Database.MaxIdleConns = 10
	cfg.Database.AutoMigrate = true

	cfg.Email.SMTPHost = "smtp.gmail.com"
	cfg.Email.SMTPPort = 465
	cfg.Email.UseSSL = true
	cfg.Email.FromName = "Axas Sharing Team"

	cfg.SMS.BaseURL = "https://api3.greensms.ru"
	cfg.SMS.Timeout = 10

	cfg.Verification.TTLMinutes = 30
	cfg.Verification.Whitelist = append([]string(nil), DefaultWhitelist...)
	cfg.Verification.WhitelistCode = "8085"
	cfg.Verification.BcryptCost = 10
	cfg.Verification.MaxPerWindow = 5
	cfg.Verification.WindowSeconds = 600

	cfg.Tokens.Length = 64
	cfg.Tokens.AccessTTLHours = 12
	cfg.Tokens.RefreshTTLDays = 60

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./static"
	cfg.Storage.BaseURL = "/files"

	cfg.Upload.MaxSize = 10 * 1024 * 1024

	cfg.Cleanup.Schedule = "@daily"
	cfg.Cleanup.CodeRetentionHours = 24 * 7

	cfg.Listing.PageSize = 30

	return &cfg
}

// Load читает .env, затем yaml-файл (если он есть) и применяет переменные окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadConfig загружает глобальную конфигурацию
func LoadConfig() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// VerificationTTL - время жизни кода подтверждения
func (c *Config) VerificationTTL() time.Duration {
	return time.Duration(c.Verification.TTLMinutes) * time.Minute
}

// AccessTTL - время жизни access-токена
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.Tokens.AccessTTLHours) * time.Hour
}

// RefreshTTL - время жизни refresh-токена
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.Tokens.RefreshTTLDays) * 24 * time.Hour
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.PublicURL, "PUBLIC_URL")

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")

	setString(&cfg.SMS.User, "GREEN_SMS_LOGIN")
	setString(&cfg.SMS.Password, "GREEN_SMS_PASSWORD")
	setBool(&cfg.SMS.DryRun, "SMS_DRY_RUN")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	if wl := os.Getenv("TEL_WHITE_LIST"); wl != "" {
		cfg.Verification.Whitelist = strings.Split(wl, ",")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
