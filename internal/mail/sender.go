// Package mail delivers outbound email for the catalog API.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/benx421/catalog/internal/config"
)

// Sender delivers one-time reset codes to account holders.
type Sender interface {
	SendPasswordResetCode(ctx context.Context, to, code string) error
}

// SMTPSender sends mail over SMTP using the configured relay
type SMTPSender struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(cfg *config.SMTPConfig, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

// SendPasswordResetCode mails the reset code as a short plain-text message.
// Delivery is synchronous; the caller decides how a failure surfaces.
func (s *SMTPSender) SendPasswordResetCode(ctx context.Context, to, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject("Your password reset code")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Use the following code to reset your password: %s\n\n"+
			"If you did not request a reset, you can ignore this message.\n", code))

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	s.logger.Info("sent password reset code", "to", to)
	return nil
}

func (s *SMTPSender) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	return gomail.NewClient(s.cfg.Host, opts...)
}
