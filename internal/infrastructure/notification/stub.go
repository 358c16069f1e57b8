package notification

import (
	"context"

	"go.uber.org/zap"

	employeeapp "github.com/bitfutura/ems/internal/application/employee"
)

// Ensure StubNotifier implements the application Notifier port
var _ employeeapp.Notifier = (*StubNotifier)(nil)

// StubNotifier is a no-delivery Notifier used when SMTP is not configured
// and in tests. It logs the message and reports success.
type StubNotifier struct {
	logger *zap.Logger
}

// NewStubNotifier creates a new StubNotifier
func NewStubNotifier(logger *zap.Logger) *StubNotifier {
	return &StubNotifier{logger: logger}
}

// Send logs the message instead of delivering it.
func (n *StubNotifier) Send(ctx context.Context, recipientName, recipientAddress, subject, body string) error {
	n.logger.Info("Notification suppressed (smtp disabled)",
		zap.String("recipient_name", recipientName),
		zap.String("recipient", recipientAddress),
		zap.String("subject", subject),
	)
	return nil
}
