package enrichment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeEnricher resolves a customer's contact email from the Stripe API.
// Lookups are best-effort from the pipeline's point of view: any error here
// degrades to the "not available" sentinel upstream.
type StripeEnricher struct {
	API *client.API
}

func New(apiKey string) *StripeEnricher {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeEnricher{API: api}
}

func (e *StripeEnricher) CustomerEmail(ctx context.Context, customerRef string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	cust, err := e.API.Customers.Get(customerRef, params)
	if err != nil {
		return "", fmt.Errorf("fetching customer %s: %w", customerRef, err)
	}
	if cust.Email == "" {
		return "", fmt.Errorf("customer %s has no email on file", customerRef)
	}
	return cust.Email, nil
}
