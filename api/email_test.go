package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/withamcommunity/wmc-api/notifications/testmail"
)

func TestSendEmail(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)

	rec := ta.postForm("/send-email", nil, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	resp := decodeJSON[SendEmailResponse](t, rec)
	c.Assert(resp.OK, qt.IsTrue)
	c.Assert(resp.ID, qt.Equals, testMessageID)
	c.Assert(resp.Duplicate, qt.IsFalse)

	sent := ta.mail.Sent()
	c.Assert(sent, qt.HasLen, 1)
	c.Assert(sent[0].ToAddress, qt.Equals, testMailTo)
	c.Assert(sent[0].Subject, qt.Equals, "[WMC] Contact form – Alice")
	c.Assert(sent[0].Body, qt.Equals, "Name: Alice\nContact: alice@example.com\n\nHello")
	c.Assert(sent[0].ReplyTo, qt.Equals, "alice@example.com")
}

func TestSendEmailNonEmailContact(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)

	form := contactForm()
	form.Set("contact", "07700 900123")
	rec := ta.postForm("/send-email", nil, form)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	sent := ta.mail.Sent()
	c.Assert(sent, qt.HasLen, 1)
	c.Assert(sent[0].ReplyTo, qt.Equals, "")
	c.Assert(sent[0].Body, qt.Contains, "Contact: 07700 900123")
}

func TestSendEmailIdempotency(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)

	header := http.Header{}
	header.Set(IdempotencyKeyHeader, "abc123")

	rec := ta.postForm("/send-email", header, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	first := decodeJSON[SendEmailResponse](t, rec)
	c.Assert(first.Duplicate, qt.IsFalse)
	c.Assert(first.ID, qt.Equals, testMessageID)

	// a repeat inside the window is acknowledged without sending
	rec = ta.postForm("/send-email", header, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	second := decodeJSON[SendEmailResponse](t, rec)
	c.Assert(second.Duplicate, qt.IsTrue)
	c.Assert(second.ID, qt.Equals, "")
	c.Assert(ta.mail.Sent(), qt.HasLen, 1)

	// once the window passes the same token sends again
	ta.clock.Advance(16 * time.Second)
	rec = ta.postForm("/send-email", header, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	third := decodeJSON[SendEmailResponse](t, rec)
	c.Assert(third.Duplicate, qt.IsFalse)
	c.Assert(ta.mail.Sent(), qt.HasLen, 2)
}

func TestSendEmailWithoutTokenNeverDeduplicates(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)

	ta.postForm("/send-email", nil, contactForm())
	ta.postForm("/send-email", nil, contactForm())
	c.Assert(ta.mail.Sent(), qt.HasLen, 2)
}

func TestSendEmailNotConfigured(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, func(conf *Config) {
		conf.MailService = nil
	})

	rec := ta.postForm("/send-email", nil, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Contains, "email not configured on server")
}

func TestSendEmailMissingDestination(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, func(conf *Config) {
		conf.MailTo = ""
	})

	rec := ta.postForm("/send-email", nil, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(ta.mail.Sent(), qt.HasLen, 0)
}

func TestSendEmailProviderError(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)
	// make every send fail from here on
	err := ta.mail.Init(&testmail.Config{FailWith: fmt.Errorf("smtp: connection refused")})
	c.Assert(err, qt.IsNil)

	rec := ta.postForm("/send-email", nil, contactForm())
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Contains, "email send failed")
	c.Assert(rec.Body.String(), qt.Contains, "smtp: connection refused")
	c.Assert(ta.mail.Sent(), qt.HasLen, 0)
}

func TestSendEmailMissingFields(t *testing.T) {
	c := qt.New(t)
	ta := newTestAPI(t, nil)

	form := contactForm()
	form.Del("message")
	rec := ta.postForm("/send-email", nil, form)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(ta.mail.Sent(), qt.HasLen, 0)
}
