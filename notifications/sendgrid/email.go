// Package sendgrid provides a SendGrid-backed implementation of the
// NotificationService interface.
package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/withamcommunity/wmc-api/notifications"
)

// Config holds the sender identity and the SendGrid API key.
type Config struct {
	FromName    string
	FromAddress string
	APIKey      string
}

// Email is the SendGrid implementation of the NotificationService interface.
type Email struct {
	config *Config
	client *sendgrid.Client
}

// Init parses the configuration and creates the SendGrid client.
func (sg *Email) Init(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid SendGrid configuration")
	}
	if config.APIKey == "" {
		return fmt.Errorf("SendGrid API key is required")
	}
	sg.config = config
	sg.client = sendgrid.NewSendClient(sg.config.APIKey)
	return nil
}

// SendNotification sends the email through the SendGrid API and returns the
// message id assigned by SendGrid, taken from the X-Message-Id response
// header.
func (sg *Email) SendNotification(ctx context.Context, n *notifications.Notification) (string, error) {
	from := mail.NewEmail(sg.config.FromName, sg.config.FromAddress)
	to := mail.NewEmail(n.ToName, n.ToAddress)
	message := mail.NewSingleEmail(from, n.Subject, to, n.Body, n.Body)
	if n.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", n.ReplyTo))
	}
	resp, err := sg.client.SendWithContext(ctx, message)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid rejected the message: %d %s", resp.StatusCode, resp.Body)
	}
	var id string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	return id, nil
}
