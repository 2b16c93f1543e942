package smtp

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/withamcommunity/wmc-api/notifications"
)

func newTestEmail(t *testing.T) *Email {
	t.Helper()
	se := new(Email)
	err := se.Init(&Config{
		FromName:    "WMC Website",
		FromAddress: "noreply@example.org",
		Server:      "smtp.example.org",
		Port:        465,
	})
	qt.Assert(t, err, qt.IsNil)
	return se
}

func TestInitRejectsBadConfig(t *testing.T) {
	c := qt.New(t)
	se := new(Email)
	c.Assert(se.Init("not a config"), qt.IsNotNil)
	c.Assert(se.Init(&Config{FromAddress: "not-an-address"}), qt.IsNotNil)
	c.Assert(se.Init(&Config{FromAddress: "a@b.org", Security: "tls13"}), qt.IsNotNil)
}

func TestComposeBody(t *testing.T) {
	c := qt.New(t)
	se := newTestEmail(t)

	body, err := se.composeBody(&notifications.Notification{
		ToAddress: "committee@example.org",
		Subject:   "[WMC] Contact form – Alice",
		Body:      "Name: Alice\nContact: alice@example.com\n\nHello",
	})
	c.Assert(err, qt.IsNil)
	text := string(body)
	c.Assert(text, qt.Contains, "From: \"WMC Website\" <noreply@example.org>\r\n")
	c.Assert(text, qt.Contains, "To: <committee@example.org>\r\n")
	c.Assert(text, qt.Contains, "Subject: [WMC] Contact form – Alice\r\n")
	c.Assert(text, qt.Contains, "\r\n\r\nName: Alice\nContact: alice@example.com\n\nHello\r\n")
	c.Assert(strings.Contains(text, "Reply-To:"), qt.IsFalse)
}

func TestComposeBodyReplyTo(t *testing.T) {
	c := qt.New(t)
	se := newTestEmail(t)

	body, err := se.composeBody(&notifications.Notification{
		ToAddress: "committee@example.org",
		ReplyTo:   "alice@example.com",
		Subject:   "hi",
		Body:      "hello",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(body), qt.Contains, "Reply-To: <alice@example.com>\r\n")
}

func TestComposeBodyRejectsBadAddresses(t *testing.T) {
	c := qt.New(t)
	se := newTestEmail(t)

	_, err := se.composeBody(&notifications.Notification{ToAddress: "nope"})
	c.Assert(err, qt.IsNotNil)

	_, err = se.composeBody(&notifications.Notification{
		ToAddress: "committee@example.org",
		ReplyTo:   "not an address",
	})
	c.Assert(err, qt.IsNotNil)
}
