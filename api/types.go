package api

// StatusResponse is the body of the root status endpoint.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// SendEmailResponse is the body of a successful /send-email call. ID is the
// provider-assigned message id when the provider issues one. Duplicate is
// set when the submission was suppressed as an idempotent repeat and no
// email was sent.
type SendEmailResponse struct {
	OK        bool   `json:"ok"`
	ID        string `json:"id,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// CheckoutSessionResponse carries the Stripe-hosted URL the caller should
// redirect the payer to.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}
