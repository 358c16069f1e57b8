// Package notification provides Notifier implementations for outbound
// employee email.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	employeeapp "github.com/bitfutura/ems/internal/application/employee"
	infraconfig "github.com/bitfutura/ems/internal/infrastructure/config"
)

// Ensure SMTPNotifier implements the application Notifier port
var _ employeeapp.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier delivers plain-text email through an SMTP relay.
type SMTPNotifier struct {
	client *mail.Client
	from   string
	logger *zap.Logger
}

// NewSMTPNotifier creates an SMTP notifier from configuration.
func NewSMTPNotifier(cfg *infraconfig.SMTPConfig, logger *zap.Logger) (*SMTPNotifier, error) {
	if cfg == nil {
		return nil, errors.New("smtp configuration is required")
	}
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPNotifier{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

// Send delivers one message to the given recipient.
func (n *SMTPNotifier) Send(ctx context.Context, recipientName, recipientAddress, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.AddToFormat(recipientName, recipientAddress); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipientAddress, err)
	}

	n.logger.Info("Notification sent", zap.String("recipient", recipientAddress), zap.String("subject", subject))
	return nil
}
