package stripe

import (
	stripeapi "github.com/stripe/stripe-go/v82"
	stripecheckoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

const (
	// minorUnitsPerPound converts whole pounds into pence, the unit the
	// Stripe amount fields expect.
	minorUnitsPerPound = 100

	oneTimeProductName = "One-time Donation"
	monthlyProductName = "Monthly Donation"
)

// Client implements SessionCreator against the Stripe API.
type Client struct{}

// NewClient sets the global Stripe API key and returns a client.
func NewClient(secretKey string) *Client {
	stripeapi.Key = secretKey
	return &Client{}
}

// CreateCheckoutSession creates the session and returns its hosted URL.
// Overview of stripe checkout mechanics: https://docs.stripe.com/api/checkout/sessions
func (*Client) CreateCheckoutSession(params *CheckoutSessionParams) (string, error) {
	session, err := stripecheckoutsession.New(buildSessionParams(params))
	if err != nil {
		return "", NewStripeError("api_call_failed", "failed to create checkout session", err)
	}
	return session.URL, nil
}

// buildSessionParams translates a donation description into the Stripe
// checkout session request. Kept separate from the API call so the exact
// request shape is testable without the network.
func buildSessionParams(params *CheckoutSessionParams) *stripeapi.CheckoutSessionParams {
	checkoutParams := &stripeapi.CheckoutSessionParams{
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
		SuccessURL:         stripeapi.String(params.SuccessURL),
		CancelURL:          stripeapi.String(params.CancelURL),
	}
	if !params.Recurring {
		checkoutParams.Mode = stripeapi.String(string(stripeapi.CheckoutSessionModePayment))
		checkoutParams.LineItems = []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency: stripeapi.String(string(stripeapi.CurrencyGBP)),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(oneTimeProductName),
					},
					UnitAmount: stripeapi.Int64(params.AmountGBP * minorUnitsPerPound),
				},
				Quantity: stripeapi.Int64(1),
			},
		}
		return checkoutParams
	}

	checkoutParams.Mode = stripeapi.String(string(stripeapi.CheckoutSessionModeSubscription))
	checkoutParams.AllowPromotionCodes = stripeapi.Bool(true)
	lineItem := &stripeapi.CheckoutSessionLineItemParams{
		Quantity: stripeapi.Int64(1),
	}
	if params.PriceID != "" {
		// a price pre-defined in the Stripe dashboard takes precedence
		// over the amount the caller asked for
		lineItem.Price = stripeapi.String(params.PriceID)
	} else {
		lineItem.PriceData = &stripeapi.CheckoutSessionLineItemPriceDataParams{
			Currency: stripeapi.String(string(stripeapi.CurrencyGBP)),
			ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripeapi.String(monthlyProductName),
			},
			UnitAmount: stripeapi.Int64(params.AmountGBP * minorUnitsPerPound),
			Recurring: &stripeapi.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripeapi.String(string(stripeapi.PriceRecurringIntervalMonth)),
			},
		}
	}
	checkoutParams.LineItems = []*stripeapi.CheckoutSessionLineItemParams{lineItem}
	return checkoutParams
}
