// Package smtp provides an SMTP-based implementation of the
// NotificationService interface, supporting both implicit TLS (the default,
// port 465) and STARTTLS submission.
package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/smtp"

	"github.com/withamcommunity/wmc-api/notifications"
)

// Supported connection security modes.
const (
	SecuritySSL      = "ssl"      // implicit TLS from the first byte
	SecurityStartTLS = "starttls" // plaintext upgraded via STARTTLS
)

// Config represents the configuration for the SMTP email service: the
// sender identity plus the submission server coordinates and credentials.
type Config struct {
	FromName    string
	FromAddress string
	Username    string
	Password    string
	Server      string
	Port        int
	Security    string // "ssl" (default) or "starttls"
}

// Email is the SMTP implementation of the NotificationService interface.
type Email struct {
	config *Config
	auth   smtp.Auth
}

// Init parses the configuration and prepares the SMTP auth. It returns an
// error if the configuration is invalid or the from address does not parse.
func (se *Email) Init(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid SMTP configuration")
	}
	if _, err := mail.ParseAddress(config.FromAddress); err != nil {
		return fmt.Errorf("could not parse from email: %v", err)
	}
	switch config.Security {
	case "", SecuritySSL, SecurityStartTLS:
	default:
		return fmt.Errorf("unknown SMTP security mode %q", config.Security)
	}
	se.config = config
	if se.config.Username != "" && se.config.Password != "" {
		se.auth = smtp.PlainAuth("", se.config.Username, se.config.Password, se.config.Server)
	}
	return nil
}

// SendNotification composes and submits the email. SMTP servers do not hand
// back a message id on submission, so the returned id is always empty.
func (se *Email) SendNotification(ctx context.Context, n *notifications.Notification) (string, error) {
	body, err := se.composeBody(n)
	if err != nil {
		return "", fmt.Errorf("could not compose email body: %v", err)
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- se.submit(n.ToAddress, body)
		close(errCh)
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errCh:
		return "", err
	}
}

// submit delivers the message to the configured server. STARTTLS mode relies
// on net/smtp upgrading the connection when the server advertises it; the
// default mode opens a TLS connection directly.
func (se *Email) submit(to string, body []byte) error {
	addr := fmt.Sprintf("%s:%d", se.config.Server, se.config.Port)
	if se.config.Security == SecurityStartTLS {
		return smtp.SendMail(addr, se.auth, se.config.FromAddress, []string{to}, body)
	}
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: se.config.Server})
	if err != nil {
		return fmt.Errorf("could not connect to SMTP server: %v", err)
	}
	client, err := smtp.NewClient(conn, se.config.Server)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("could not create SMTP client: %v", err)
	}
	defer func() {
		_ = client.Close()
	}()
	if se.auth != nil {
		if err := client.Auth(se.auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %v", err)
		}
	}
	if err := client.Mail(se.config.FromAddress); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// composeBody creates the raw message with the notification data. The relay
// only ever sends plain text, so no multipart wrapping is needed.
func (se *Email) composeBody(n *notifications.Notification) ([]byte, error) {
	to, err := mail.ParseAddress(n.ToAddress)
	if err != nil {
		return nil, fmt.Errorf("could not parse to email: %v", err)
	}
	var msg bytes.Buffer
	fromAddr := mail.Address{Name: se.config.FromName, Address: se.config.FromAddress}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", fromAddr.String()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to.String()))
	if n.ReplyTo != "" {
		replyTo, err := mail.ParseAddress(n.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("could not parse reply-to email: %v", err)
		}
		msg.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo.String()))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", n.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(n.Body)
	msg.WriteString("\r\n")
	return msg.Bytes(), nil
}
