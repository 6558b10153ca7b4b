package stripe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/rs/zerolog"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

const (
	BreakerKey     = domain.ProviderStripe
	DefaultTimeout = 15 * time.Second
)

// Config for creating a new Stripe client.
type Config struct {
	SecretKey string
	Timeout   time.Duration
	// Backend overrides the API backend; nil uses the default Stripe API.
	Backend stripego.Backend
	Breaker ports.BreakerOptions
}

// Client wraps the PaymentIntents API. Every call runs through the circuit
// breaker keyed "stripe" with its own deadline.
type Client struct {
	intents paymentintent.Client
	breaker ports.CircuitBreaker
	opts    ports.BreakerOptions
	timeout time.Duration
	log     zerolog.Logger
}

// NewClient creates a new Stripe client.
func NewClient(cfg Config, breaker ports.CircuitBreaker, log zerolog.Logger) *Client {
	backend := cfg.Backend
	if backend == nil {
		backend = stripego.GetBackend(stripego.APIBackend)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		intents: paymentintent.Client{B: backend, Key: cfg.SecretKey},
		breaker: breaker,
		opts:    cfg.Breaker,
		timeout: timeout,
		log:     log,
	}
}

func (c *Client) Provider() string { return domain.ProviderStripe }

func (c *Client) call(ctx context.Context, op string, fn func(ctx context.Context) (*stripego.PaymentIntent, error)) (*stripego.PaymentIntent, error) {
	var out *stripego.PaymentIntent
	err := c.breaker.Execute(ctx, BreakerKey, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		pi, err := fn(ctx)
		if err != nil {
			return fmt.Errorf("stripe %s: %w", op, err)
		}
		out = pi
		return nil
	}, c.opts)
	return out, err
}

// CreatePaymentIntent creates a PaymentIntent tagged with the organization.
func (c *Client) CreatePaymentIntent(ctx context.Context, req domain.InitiateRequest) (*stripego.PaymentIntent, error) {
	minor, err := domain.ToMinorUnits(req.Amount, req.Currency)
	if err != nil {
		return nil, apperror.ErrInvalidAmount(err.Error())
	}
	return c.call(ctx, "create payment intent", func(ctx context.Context) (*stripego.PaymentIntent, error) {
		params := &stripego.PaymentIntentParams{
			Amount:   stripego.Int64(minor),
			Currency: stripego.String(strings.ToLower(req.Currency)),
			AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripego.Bool(true),
			},
		}
		params.Context = ctx
		if req.Description != "" {
			params.Description = stripego.String(req.Description)
		}
		params.AddMetadata("organizationId", req.OrganizationID)
		if req.InvoiceID != nil {
			params.AddMetadata("invoiceId", *req.InvoiceID)
		}
		return c.intents.New(params)
	})
}

// RetrievePaymentIntent fetches a PaymentIntent by id.
func (c *Client) RetrievePaymentIntent(ctx context.Context, id string) (*stripego.PaymentIntent, error) {
	return c.call(ctx, "retrieve payment intent", func(ctx context.Context) (*stripego.PaymentIntent, error) {
		params := &stripego.PaymentIntentParams{}
		params.Context = ctx
		return c.intents.Get(id, params)
	})
}

// CancelPaymentIntent cancels a PaymentIntent that has not succeeded.
func (c *Client) CancelPaymentIntent(ctx context.Context, id string) (*stripego.PaymentIntent, error) {
	return c.call(ctx, "cancel payment intent", func(ctx context.Context) (*stripego.PaymentIntent, error) {
		params := &stripego.PaymentIntentCancelParams{}
		params.Context = ctx
		return c.intents.Cancel(id, params)
	})
}

// Initiate implements ports.PaymentProvider.
func (c *Client) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.InitiateResult, error) {
	pi, err := c.CreatePaymentIntent(ctx, req)
	if err != nil {
		return nil, err
	}
	c.log.Info().
		Str("org_id", req.OrganizationID).
		Str("payment_intent", pi.ID).
		Msg("stripe payment intent created")
	return &domain.InitiateResult{
		Provider:     domain.ProviderStripe,
		ProviderRef:  pi.ID,
		Status:       string(pi.Status),
		ClientSecret: pi.ClientSecret,
	}, nil
}
