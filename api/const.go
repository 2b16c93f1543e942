package api

const (
	// ServiceName identifies the service in the status response.
	ServiceName = "wmc-api"

	statusEndpoint          = "/"
	sendEmailEndpoint       = "/send-email"
	oneOffCheckoutEndpoint  = "/create-checkout-session/oneoff"
	monthlyCheckoutEndpoint = "/create-checkout-session/monthly"

	// IdempotencyKeyHeader carries the client-generated token used to
	// recognize duplicate contact-form submissions.
	IdempotencyKeyHeader = "X-Idempotency-Key"

	// ContactSubjectFormat is the subject line of relayed contact-form
	// emails; the argument is the sender's name.
	ContactSubjectFormat = "[WMC] Contact form – %s"
	// ContactBodyFormat is the plain-text body of relayed contact-form
	// emails; the arguments are name, contact and message.
	ContactBodyFormat = "Name: %s\nContact: %s\n\n%s"

	// MinDonationGBP is the smallest accepted donation, in whole pounds.
	MinDonationGBP = 1
	// DefaultMonthlyDonationGBP is the recurring amount used when the
	// caller does not specify one.
	DefaultMonthlyDonationGBP = 10
)
