package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	stripeapi "github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

var (
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
	ErrMissingReference    = errors.New("payment reference missing")
)

// Confirmer checks that the payment behind reference went through before a
// card is upgraded. The card store itself never talks to a payment provider.
type Confirmer interface {
	Confirm(ctx context.Context, reference string) error
}

// DemoConfirmer accepts every reference, like the simulated checkout screen.
type DemoConfirmer struct{}

func (DemoConfirmer) Confirm(context.Context, string) error { return nil }

type sessionGetter func(id string) (*stripeapi.CheckoutSession, error)

// CheckoutConfirmer treats reference as a Stripe Checkout Session id.
type CheckoutConfirmer struct {
	get sessionGetter
}

func NewCheckoutConfirmer(secretKey string) *CheckoutConfirmer {
	stripeapi.Key = secretKey
	return &CheckoutConfirmer{
		get: func(id string) (*stripeapi.CheckoutSession, error) {
			return checkoutsession.Get(id, nil)
		},
	}
}

func (c *CheckoutConfirmer) Confirm(ctx context.Context, reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrMissingReference
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sess, err := c.get(reference)
	if err != nil {
		return fmt.Errorf("stripe checkout session %s: %w", reference, err)
	}

	status := NormalizeCheckoutStatus(string(sess.Status), string(sess.PaymentStatus))
	if status != CheckoutPaid {
		return fmt.Errorf("%w: checkout %s is %s", ErrPaymentNotConfirmed, reference, status)
	}
	return nil
}

// NewConfirmer picks the Stripe confirmer when a key is configured.
func NewConfirmer(secretKey string) Confirmer {
	if secretKey == "" {
		return DemoConfirmer{}
	}
	return NewCheckoutConfirmer(secretKey)
}
