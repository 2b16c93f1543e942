package api

import (
	"fmt"
	"net/http"

	"github.com/withamcommunity/wmc-api/errors"
	"github.com/withamcommunity/wmc-api/internal"
	"github.com/withamcommunity/wmc-api/notifications"
)

// sendEmailHandler relays a contact-form submission to the configured
// destination mailbox. Submissions carrying an already-seen idempotency
// token are acknowledged without sending anything.
func (a *API) sendEmailHandler(w http.ResponseWriter, r *http.Request) {
	if key := r.Header.Get(IdempotencyKeyHeader); key != "" && a.dedup.SeenOrRecord(key) {
		httpWriteJSON(w, &SendEmailResponse{OK: true, Duplicate: true})
		return
	}
	if a.mail == nil || a.mailTo == "" {
		errors.ErrEmailNotConfigured.Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	name := r.PostFormValue("name")
	contact := r.PostFormValue("contact")
	message := r.PostFormValue("message")
	if name == "" || contact == "" || message == "" {
		errors.ErrMalformedBody.With("name, contact and message are required").Write(w)
		return
	}
	notification := &notifications.Notification{
		ToName:    a.mailToName,
		ToAddress: a.mailTo,
		Subject:   fmt.Sprintf(ContactSubjectFormat, name),
		Body:      fmt.Sprintf(ContactBodyFormat, name, contact, message),
	}
	// The contact field is free text; when it plausibly holds an email
	// address, replies to the relayed mail go straight back to the sender.
	if internal.LooksLikeEmail(contact) {
		notification.ReplyTo = contact
	}
	id, err := a.mail.SendNotification(r.Context(), notification)
	if err != nil {
		errors.ErrEmailSendFailure.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, &SendEmailResponse{OK: true, ID: id})
}
