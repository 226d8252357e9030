package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	SettingsHandler     *SettingsHandler
	ProfileHandler      *ProfileHandler
	FlatHandler         *FlatHandler
	NotificationHandler *NotificationHandler
	FileHandler         *FileHandler
	HealthHandler       *HealthHandler
}
