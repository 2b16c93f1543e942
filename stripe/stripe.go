// Package stripe wraps the Stripe API for creating donation checkout
// sessions. The service holds no state about a session after creation:
// payment completion, receipts and reconciliation are all Stripe's job.
package stripe

// CheckoutSessionParams describes one donation checkout session to create.
type CheckoutSessionParams struct {
	// AmountGBP is the donation amount in whole pounds.
	AmountGBP int64
	// Recurring marks the session as a monthly subscription instead of a
	// one-time payment.
	Recurring bool
	// PriceID optionally references a pre-defined Stripe price for the
	// recurring donation; when empty an inline price is constructed from
	// AmountGBP. Ignored for one-time sessions.
	PriceID string
	// SuccessURL and CancelURL are where Stripe redirects the payer.
	SuccessURL string
	CancelURL  string
}

// SessionCreator creates a checkout session and returns the Stripe-hosted
// URL the payer should be redirected to. It exists so handlers can be
// tested against a stub instead of the Stripe API.
type SessionCreator interface {
	CreateCheckoutSession(params *CheckoutSessionParams) (url string, err error)
}
