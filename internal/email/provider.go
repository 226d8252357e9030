package email

import "context"

// Provider отправляет письма
type Provider interface {
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
