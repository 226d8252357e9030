package models

// AllModels - список моделей для AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&VerificationCode{},
		&Token{},
		&TokenPair{},
		&Device{},
		&Notification{},
		&Flat{},
		&FlatPicture{},
		&Rent{},
	}
}

