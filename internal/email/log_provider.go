package email

import (
	"context"
	"strings"

	"axas_backend/internal/logger"
)

// LogProvider ничего не отправляет, только пишет письмо в лог (dry-run и локальная разработка)
type LogProvider struct{}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxInfo(ctx, "[email][dry-run] message not sent",
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) Validate() error { return nil }
