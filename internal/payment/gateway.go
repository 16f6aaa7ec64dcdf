// Package payment wraps the payment provider behind a small interface so
// the subscription engine only consumes opened-transaction results, never
// provider internals.
package payment

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway opens a payment transaction for an amount in minor currency
// units and returns the provider's client-side confirmation token. It is
// non-mutating on our side, so callers may safely retry.
type Gateway interface {
	CreateIntent(amount int64, currency string) (string, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
