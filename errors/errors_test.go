package errors

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMarshalJSON(t *testing.T) {
	c := qt.New(t)
	data, err := json.Marshal(ErrAmountTooLow)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `{"error":"amount must be at least £1","code":40001}`)
}

func TestWithErrAppendsProviderText(t *testing.T) {
	c := qt.New(t)
	wrapped := ErrEmailSendFailure.WithErr(fmt.Errorf("connection refused"))
	c.Assert(wrapped.Error(), qt.Equals, "email send failed: connection refused")
	c.Assert(wrapped.Code, qt.Equals, ErrEmailSendFailure.Code)
	c.Assert(wrapped.HTTPstatus, qt.Equals, ErrEmailSendFailure.HTTPstatus)
	// the original definition is untouched
	c.Assert(ErrEmailSendFailure.Error(), qt.Equals, "email send failed")
}

func TestWriteSetsStatusAndBody(t *testing.T) {
	c := qt.New(t)
	rec := httptest.NewRecorder()
	ErrStripeNotConfigured.Write(rec)

	c.Assert(rec.Code, qt.Equals, ErrStripeNotConfigured.HTTPstatus)
	c.Assert(rec.Header().Get("Content-Type"), qt.Equals, "application/json")

	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	c.Assert(json.Unmarshal(rec.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body.Error, qt.Equals, "stripe not configured")
	c.Assert(body.Code, qt.Equals, ErrStripeNotConfigured.Code)
}

func TestErrorCodesAreUnique(t *testing.T) {
	c := qt.New(t)
	all := []Error{
		ErrAmountTooLow, ErrMalformedBody,
		ErrEmailNotConfigured, ErrStripeNotConfigured,
		ErrEmailSendFailure, ErrStripeSessionFailure,
		ErrInternal,
	}
	seen := map[int]bool{}
	for _, e := range all {
		c.Assert(seen[e.Code], qt.IsFalse, qt.Commentf("duplicate code %d", e.Code))
		seen[e.Code] = true
	}
}
