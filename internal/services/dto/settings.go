package dto

// EditSettingsRequest - настройки уведомлений устройства
type EditSettingsRequest struct {
	Device              string `json:"device" validate:"required"`
	EnableNotifications *bool  `json:"enable_notifications" validate:"required"`
}

type DeviceView struct {
	Device              *string `json:"device"`
	EnableNotifications bool    `json:"enable_notifications"`
	UserAgent           *string `json:"user_agent"`
}
