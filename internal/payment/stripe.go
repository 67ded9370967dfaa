// Package payment wraps the Stripe Checkout integration.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

var ErrNotConfigured = errors.New("payment provider not configured")

const (
	productName = "Travel Service"
	successURL  = "https://example.com/success"
	cancelURL   = "https://example.com/cancel"
)

// CheckoutSession is the caller-facing result of a created checkout.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Client creates Stripe Checkout sessions. A client with an empty API key
// reports ErrNotConfigured on every call.
type Client struct {
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// CreateCheckoutSession creates a single-item payment session for the given
// amount. Currency defaults to usd.
func (c *Client) CreateCheckoutSession(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (CheckoutSession, error) {
	if c.apiKey == "" {
		return CheckoutSession{}, ErrNotConfigured
	}
	if currency == "" {
		currency = "usd"
	}

	stripe.Key = c.apiKey

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(amountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(productName),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("creating checkout session: %w", err)
	}

	return CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}
