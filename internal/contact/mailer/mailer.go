package mailer

import "context"

// Message is a single outbound transactional email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single email. Delivery is best-effort from the
// pipeline's point of view: callers log failures and move on.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Noop is the sender used when no mail provider is configured. It
// silently accepts everything; an unconfigured mailer is a deployment
// choice, not an error.
type Noop struct{}

func (Noop) Send(context.Context, Message) error { return nil }
