// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/b2bmarket/backend/internal/config"
)

// Service wraps the Stripe API for listing payments. When no secret key
// is configured the service stays up but reports itself unconfigured,
// and the handlers answer 503.
type Service struct {
	api        *client.API
	configured bool
}

func NewService(cfg config.StripeConfig) *Service {
	s := &Service{}

	if cfg.SecretKey != "" {
		s.api = &client.API{}
		s.api.Init(cfg.SecretKey, nil)
		s.configured = true
	}

	return s
}

func (s *Service) Configured() bool {
	return s.configured
}

// CreateIntent creates a one-off payment intent for the given dollar
// amount and returns its client secret for the frontend to confirm.
func (s *Service) CreateIntent(ctx context.Context, amountDollars float64) (string, error) {
	cents := int64(math.Round(amountDollars * 100))

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("creating payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// CreateSubscription creates a Stripe customer and an incomplete
// subscription on the given price, returning the subscription id and
// the client secret the frontend needs to collect the first payment.
func (s *Service) CreateSubscription(ctx context.Context, email, name, priceID string) (string, string, error) {
	customer, err := s.api.Customers.New(&stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
		Name:   stripe.String(name),
	})
	if err != nil {
		return "", "", fmt.Errorf("creating customer: %w", err)
	}

	sub, err := s.api.Subscriptions.New(&stripe.SubscriptionParams{
		Params: stripe.Params{
			Context: ctx,
			Expand:  []*string{stripe.String("latest_invoice.confirmation_secret")},
		},
		Customer: stripe.String(customer.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	})
	if err != nil {
		return "", "", fmt.Errorf("creating subscription: %w", err)
	}

	var clientSecret string
	if sub.LatestInvoice != nil && sub.LatestInvoice.ConfirmationSecret != nil {
		clientSecret = sub.LatestInvoice.ConfirmationSecret.ClientSecret
	}

	return sub.ID, clientSecret, nil
}
