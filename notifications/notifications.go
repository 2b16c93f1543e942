// Package notifications defines the email delivery abstraction used by the
// contact-form relay, with pluggable provider implementations.
package notifications

import "context"

// Notification is a single outbound email.
type Notification struct {
	ToName    string
	ToAddress string
	ReplyTo   string
	Subject   string
	Body      string
}

// NotificationService is implemented by each delivery provider. Init
// receives a provider-specific configuration struct. SendNotification
// returns the provider-assigned message id, which may be empty for
// transports that do not issue one.
type NotificationService interface {
	Init(conf any) error
	SendNotification(ctx context.Context, n *Notification) (id string, err error)
}
