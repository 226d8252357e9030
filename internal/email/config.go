package email

import "time"

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseSSL    bool
	Timeout   time.Duration
}

// DefaultConfig - gmail по SSL
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     "smtp.gmail.com",
		Port:     465,
		FromName: "Axas Sharing Team",
		UseSSL:   true,
		Timeout:  30 * time.Second,
	}
}
