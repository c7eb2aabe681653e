// Package logmail no envía nada: registra el correo en el log. Driver por defecto en desarrollo.
package logmail

import (
	"context"

	"pawfam-api/internal/platform/logger"
	"pawfam-api/internal/ports/mail"
)

type Sender struct {
	log logger.Logger
}

func New(log logger.Logger) *Sender {
	if log == nil {
		log = logger.Nop()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	s.log.Info("mail (log driver)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
		"text":    msg.Text,
	})
	return nil
}
