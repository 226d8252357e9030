package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"axas_backend/database"
	"axas_backend/internal/config"
	"axas_backend/internal/email"
	"axas_backend/internal/handlers"
	"axas_backend/internal/logger"
	"axas_backend/internal/middleware"
	"axas_backend/internal/repositories"
	"axas_backend/internal/routes"
	"axas_backend/internal/services"
	"axas_backend/internal/sms"
	"axas_backend/internal/storage"
	"axas_backend/internal/throttle"
	"axas_backend/internal/validator"
	"axas_backend/internal/workers"
	"axas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps - внешние зависимости сервисов; тесты подставляют фейки
type Deps struct {
	SMS     sms.Provider
	Email   email.Provider
	Limiter throttle.Limiter
	Storage storage.Storage
	Clock   services.Clock
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.Server.Env == "development")
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, redisClient, err := buildDeps(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize dependencies", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	ginRouter := SetupRouter(cfg, gormDB, deps)

	cleanupWorker := workers.NewCleanupWorker(
		gormDB,
		repositories.NewVerificationCodeRepository(),
		repositories.NewTokenPairRepository(),
		repositories.NewTokenRepository(),
		workers.CleanupConfig{
			Schedule:      cfg.Cleanup.Schedule,
			CodeRetention: time.Duration(cfg.Cleanup.CodeRetentionHours) * time.Hour,
		},
		nil,
	)
	if err := cleanupWorker.Start(ctx); err != nil {
		logger.Fatal("Failed to start cleanup worker", "error", err)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      ginRouter,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("Server exited")
}

// buildDeps создает реальных провайдеров по конфигурации
func buildDeps(ctx context.Context, cfg *config.Config) (Deps, *redis.Client, error) {
	var deps Deps

	storageInstance, err := storage.NewStorage(storageConfig(cfg))
	if err != nil {
		return deps, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	deps.Storage = storageInstance
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	deps.SMS = sms.NewClient(cfg.SMS.BaseURL, cfg.SMS.User, cfg.SMS.Password, cfg.SMS.DryRun,
		time.Duration(cfg.SMS.Timeout)*time.Second)

	if cfg.Email.DryRun {
		logger.Warn("Email dry-run enabled, messages are only logged")
		deps.Email = &email.LogProvider{}
	} else {
		smtp := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseSSL:    cfg.Email.UseSSL,
			Timeout:   30 * time.Second,
		})
		if err := smtp.Validate(); err != nil {
			return deps, nil, fmt.Errorf("invalid SMTP configuration: %w", err)
		}
		deps.Email = smtp
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = throttle.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, verification throttling disabled", "error", err)
		} else {
			deps.Limiter = throttle.NewRedisLimiter(redisClient, "verification", cfg.Verification.MaxPerWindow,
				time.Duration(cfg.Verification.WindowSeconds)*time.Second)
			logger.Info("Redis connected", "addr", cfg.Redis.Addr)
		}
	}

	return deps, redisClient, nil
}

func storageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, deps Deps) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, deps)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, deps Deps) *services.ServiceContainer {
	// --- Репозитории ---
	userRepo := repositories.NewUserRepository()
	codeRepo := repositories.NewVerificationCodeRepository()
	tokenRepo := repositories.NewTokenRepository()
	pairRepo := repositories.NewTokenPairRepository()
	deviceRepo := repositories.NewDeviceRepository()
	notificationRepo := repositories.NewNotificationRepository()
	flatRepo := repositories.NewFlatRepository()
	pictureRepo := repositories.NewFlatPictureRepository()
	rentRepo := repositories.NewRentRepository()

	// --- Сервисы ---
	verificationService := services.NewVerificationService(codeRepo, deps.SMS, deps.Email, deps.Limiter,
		services.VerificationConfig{
			TTL:           cfg.VerificationTTL(),
			Whitelist:     cfg.Verification.Whitelist,
			WhitelistCode: cfg.Verification.WhitelistCode,
			BcryptCost:    cfg.Verification.BcryptCost,
		}, deps.Clock)
	tokenService := services.NewTokenService(tokenRepo, pairRepo, services.TokenConfig{
		Length:     cfg.Tokens.Length,
		AccessTTL:  cfg.AccessTTL(),
		RefreshTTL: cfg.RefreshTTL(),
	}, deps.Clock)
	deviceService := services.NewDeviceService(deviceRepo)
	uploadService := services.NewUploadService(deps.Storage, services.UploadConfig{
		MaxFileSize:  cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}, deps.Clock)
	notificationService := services.NewNotificationService(notificationRepo, cfg.Listing.PageSize, deps.Clock)
	profileService := services.NewProfileService(userRepo, deviceRepo, notificationRepo, tokenRepo, pairRepo,
		flatRepo, rentRepo, verificationService, uploadService)
	flatService := services.NewFlatService(flatRepo, pictureRepo, uploadService, cfg.Listing.PageSize, deps.Clock)
	rentService := services.NewRentService(rentRepo, flatRepo, notificationService, deps.Clock)
	authService := services.NewAuthService(userRepo, verificationService, tokenService, deviceService, deps.Clock)

	return &services.ServiceContainer{
		AuthService:         authService,
		VerificationService: verificationService,
		TokenService:        tokenService,
		DeviceService:       deviceService,
		ProfileService:      profileService,
		FlatService:         flatService,
		RentService:         rentService,
		NotificationService: notificationService,
		UploadService:       uploadService,
		EmailService:        deps.Email,
		SMSService:          deps.SMS,
		Storage:             deps.Storage,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, middleware.AuthMiddleware(services.TokenService))

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		SettingsHandler:     handlers.NewSettingsHandler(baseHandler, services.DeviceService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		FlatHandler:         handlers.NewFlatHandler(baseHandler, services.FlatService, services.RentService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		FileHandler:         handlers.NewFileHandler(baseHandler, services.Storage),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	// /flats/ и /flats - разные маршруты
	router.RedirectTrailingSlash = false
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
