package api

import (
	"net/http"

	"github.com/withamcommunity/wmc-api/errors"
	"github.com/withamcommunity/wmc-api/stripe"
)

// createOneOffCheckoutHandler creates a one-time donation checkout session
// and returns its URL. The amount is required.
func (a *API) createOneOffCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if a.payments == nil {
		errors.ErrStripeNotConfigured.Write(w)
		return
	}
	amount, ok, err := amountFromRequest(r)
	if err != nil {
		errors.ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	if !ok {
		errors.ErrMalformedBody.With("amount_gbp is required").Write(w)
		return
	}
	if amount < MinDonationGBP {
		errors.ErrAmountTooLow.Write(w)
		return
	}
	url, err := a.payments.CreateCheckoutSession(&stripe.CheckoutSessionParams{
		AmountGBP:  amount,
		SuccessURL: a.successURL,
		CancelURL:  a.cancelURL,
	})
	if err != nil {
		errors.ErrStripeSessionFailure.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, &CheckoutSessionResponse{URL: url})
}

// createMonthlyCheckoutHandler creates a monthly recurring donation
// checkout session. The amount defaults to DefaultMonthlyDonationGBP and is
// superseded by the fixed Stripe price when one is configured.
func (a *API) createMonthlyCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if a.payments == nil {
		errors.ErrStripeNotConfigured.Write(w)
		return
	}
	amount, ok, err := amountFromRequest(r)
	if err != nil {
		errors.ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	if !ok {
		amount = DefaultMonthlyDonationGBP
	}
	if amount < MinDonationGBP {
		errors.ErrAmountTooLow.Write(w)
		return
	}
	url, err := a.payments.CreateCheckoutSession(&stripe.CheckoutSessionParams{
		AmountGBP:  amount,
		Recurring:  true,
		PriceID:    a.monthlyPriceID,
		SuccessURL: a.successURL,
		CancelURL:  a.cancelURL,
	})
	if err != nil {
		errors.ErrStripeSessionFailure.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, &CheckoutSessionResponse{URL: url})
}
