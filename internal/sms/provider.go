// Package sms отправляет коды подтверждения на телефон.
package sms

import "context"

// Provider отправляет код на номер и возвращает отправленный код
type Provider interface {
	Send(ctx context.Context, to string) (string, error)
}
