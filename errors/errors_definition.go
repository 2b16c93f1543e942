package errors

import (
	"fmt"
	"net/http"
)

// Error codes in the 40001-49999 range are the caller's fault and return an
// HTTP 4xx status; codes in the 50001-59999 range are the server's fault and
// return 5xx. Never change an existing code, only append.
var (
	// Validation errors (400)
	ErrAmountTooLow  = Error{Code: 40001, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("amount must be at least £1")}
	ErrMalformedBody = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid request body")}

	// Configuration errors (500): a provider the handler depends on is not
	// configured on the server.
	ErrEmailNotConfigured  = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("email not configured on server")}
	ErrStripeNotConfigured = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("stripe not configured")}

	// Provider errors (500): the external call failed; the provider's own
	// error text is appended via WithErr.
	ErrEmailSendFailure     = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("email send failed")}
	ErrStripeSessionFailure = Error{Code: 50004, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("could not create checkout session")}

	// Generic internal error (500)
	ErrInternal = Error{Code: 50005, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("internal server error")}
)
