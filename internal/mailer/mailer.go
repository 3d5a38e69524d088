// Package mailer is the outbound notification gateway. Delivery runs over
// SMTP using the persisted email configuration, re-read on every send so an
// administrator can change transport settings without a restart.
package mailer

import (
	"context"
	"fmt"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// A slow relay must surface as a delivery failure, not an indefinite hang.
const smtpTimeout = 10 * time.Second

type SMTPMailer struct {
	configs repo.EmailConfig
	logger  *zap.Logger
}

func New(configs repo.EmailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{configs: configs, logger: logger}
}

// Send delivers one message using the currently persisted configuration.
func (m *SMTPMailer) Send(ctx context.Context, to string, subject string, body string) error {
	config, err := m.configs.GetEmailConfig(ctx)
	if err != nil {
		return fmt.Errorf("resolving email config: %w", err)
	}

	return m.SendWith(ctx, config, to, subject, body)
}

// SendWith delivers one message using an ad-hoc, possibly unsaved
// configuration. Administrators use this to validate settings before saving.
func (m *SMTPMailer) SendWith(ctx context.Context, config *entity.EmailConfig, to string, subject string, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(config.SMTPFrom); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", config.SMTPFrom, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(config.SMTPHost,
		mail.WithPort(config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.SMTPUser),
		mail.WithPassword(config.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return fmt.Errorf("building smtp client for %s: %w", config.SMTPHost, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail to %s via %s: %w", to, config.SMTPHost, err)
	}

	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))

	return nil
}
