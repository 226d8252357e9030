package services

import (
	"axas_backend/internal/email"
	"axas_backend/internal/sms"
	"axas_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	VerificationService VerificationService
	TokenService        TokenService
	DeviceService       DeviceService
	ProfileService      ProfileService
	FlatService         FlatService
	RentService         RentService
	NotificationService NotificationService
	UploadService       UploadService
	EmailService        email.Provider
	SMSService          sms.Provider
	Storage             storage.Storage
}
