package mail

import (
	"context"

	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
)

// LogMailer writes outgoing mail to the log instead of sending it.
// Registration and activation flows only need the notification to be
// observable; real SMTP delivery is a deployment concern.
type LogMailer struct {
	log logger.Logger
}

// NewLogMailer creates a new logging mailer
func NewLogMailer(log logger.Logger) ports.Mailer {
	return &LogMailer{log: log}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.log.Info(ctx, "email sent", map[string]interface{}{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}
