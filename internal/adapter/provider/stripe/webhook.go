// Package stripe adapts Stripe webhooks and the PaymentIntents API.
package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	SignatureHeader  = "Stripe-Signature"
	DefaultTolerance = 5 * time.Minute
	paymentMethod    = "STRIPE"
)

// WebhookAdapter implements ports.WebhookAdapter for Stripe.
type WebhookAdapter struct {
	secret    string
	tolerance time.Duration
}

// NewWebhookAdapter creates a Stripe webhook adapter. A non-positive
// tolerance falls back to DefaultTolerance.
func NewWebhookAdapter(secret string, tolerance time.Duration) *WebhookAdapter {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &WebhookAdapter{secret: secret, tolerance: tolerance}
}

func (a *WebhookAdapter) Provider() string { return domain.ProviderStripe }

func (a *WebhookAdapter) Tolerance() time.Duration { return a.tolerance }

// Verify checks the Stripe-Signature header (t=...,v1=...) against the raw body.
// The signed t= is the freshness check: Stripe re-signs every retry, so an old
// event redelivered now is accepted.
func (a *WebhookAdapter) Verify(raw []byte, headers http.Header) error {
	header := headers.Get(SignatureHeader)
	if header == "" {
		return ports.ErrSignatureMissing
	}
	_, err := webhook.ConstructEventWithOptions(raw, header, a.secret, webhook.ConstructEventOptions{
		Tolerance:                a.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if errors.Is(err, webhook.ErrNotSigned) {
			return ports.ErrSignatureMissing
		}
		if errors.Is(err, webhook.ErrTooOld) {
			return fmt.Errorf("stripe signature: %w", ports.ErrSignatureExpired)
		}
		return fmt.Errorf("stripe signature: %w", err)
	}
	return nil
}

// Parse normalizes a payment_intent.succeeded event. Other event types return
// ports.ErrEventIgnored. The event's created time is not a freshness signal, so
// Timestamp stays nil.
func (a *WebhookAdapter) Parse(raw []byte) (*domain.NormalizedPayment, error) {
	var event stripego.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("decode stripe event: %w", err)
	}
	if event.Type != stripego.EventTypePaymentIntentSucceeded {
		return nil, fmt.Errorf("%w: stripe %s", ports.ErrEventIgnored, event.Type)
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, errors.New("stripe event has no data object")
	}

	var pi stripego.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}
	if pi.ID == "" {
		return nil, errors.New("payment intent id missing")
	}
	if pi.Amount <= 0 {
		return nil, fmt.Errorf("payment intent %s has non-positive amount %d", pi.ID, pi.Amount)
	}
	if pi.Currency == "" {
		return nil, fmt.Errorf("payment intent %s has no currency", pi.ID)
	}

	org := firstNonEmpty(pi.Metadata, "organizationId", "organization_id")
	if org == "" {
		return nil, fmt.Errorf("payment intent %s has no organization metadata", pi.ID)
	}

	currency := strings.ToUpper(string(pi.Currency))
	p := &domain.NormalizedPayment{
		Provider:       domain.ProviderStripe,
		OrganizationID: org,
		ProviderRef:    pi.ID,
		Amount:         domain.FromMinorUnits(pi.Amount, currency),
		Currency:       currency,
		Method:         paymentMethod,
		Metadata:       pi.Metadata,
	}
	if inv := firstNonEmpty(pi.Metadata, "invoiceId", "invoice_id"); inv != "" {
		p.InvoiceID = &inv
	}
	return p, nil
}

func firstNonEmpty(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(m[k]); v != "" {
			return v
		}
	}
	return ""
}
