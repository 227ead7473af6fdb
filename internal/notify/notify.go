package notify

import (
	"context"
	"encoding/json"
)

// Message represents a broker-agnostic payload delivered to subscribers.
type Message struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// Handler processes a message. Return an error to signal a retry/nack.
type Handler func(ctx context.Context, msg Message) error

// Backend defines the broker-agnostic operations used by the app.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Subscribe(ctx context.Context, channel string, handler Handler) error
	Close() error
}

const attrKind = "kind"
const kindPasswordReset = "password-reset"

// ResetEmail is the payload published when a user requests a password reset.
// The mailer worker consumes it and delivers the actual email.
type ResetEmail struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	ResetLink string `json:"reset_link"`
}

// Notifier publishes outbound notifications to a fixed channel on a backend.
// Delivery is fire-and-forget from the API server's perspective; the mailer
// worker owns retries via nack/requeue.
type Notifier struct {
	backend Backend
	queue   string
}

// New constructs a Notifier for the provided backend and channel.
func New(backend Backend, queue string) *Notifier {
	return &Notifier{backend: backend, queue: queue}
}

// SendPasswordReset publishes a reset email request.
func (n *Notifier) SendPasswordReset(ctx context.Context, email ResetEmail) error {
	data, err := json.Marshal(email)
	if err != nil {
		return err
	}
	_, err = n.backend.Publish(ctx, n.queue, data, map[string]string{attrKind: kindPasswordReset})
	return err
}

// ConsumePasswordResets blocks, delivering each published reset email to
// handler. Messages of other kinds are acked and dropped.
func (n *Notifier) ConsumePasswordResets(ctx context.Context, handler func(ctx context.Context, email ResetEmail) error) error {
	return n.backend.Subscribe(ctx, n.queue, func(ctx context.Context, msg Message) error {
		if msg.Attributes[attrKind] != kindPasswordReset {
			return nil
		}
		var email ResetEmail
		if err := json.Unmarshal(msg.Data, &email); err != nil {
			// Undecodable payloads would requeue forever; drop them.
			return nil
		}
		return handler(ctx, email)
	})
}

// Close closes the underlying backend.
func (n *Notifier) Close() error {
	return n.backend.Close()
}
