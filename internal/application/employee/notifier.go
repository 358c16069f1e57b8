package employee

import "context"

// Notifier delivers a message to an employee. It is consumed by the service
// and implemented in the infrastructure layer; delivery failures are
// non-fatal and never roll back a committed record change.
type Notifier interface {
	Send(ctx context.Context, recipientName, recipientAddress, subject, body string) error
}
