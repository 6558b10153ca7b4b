package stripe

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fincore/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func eventBody(t *testing.T, eventType string, created int64, object map[string]any) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        eventType,
		"created":     created,
		"api_version": "2020-01-01",
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return body
}

func succeededIntent(metadata map[string]string) map[string]any {
	return map[string]any{
		"id":       "pi_123",
		"object":   "payment_intent",
		"amount":   5000,
		"currency": "usd",
		"status":   "succeeded",
		"metadata": metadata,
	}
}

func signedHeaders(body []byte, secret string, at time.Time) http.Header {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   body,
		Secret:    secret,
		Timestamp: at,
	})
	h := http.Header{}
	h.Set(SignatureHeader, signed.Header)
	return h
}

func TestWebhookAdapter_Verify(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, 0)
	body := eventBody(t, "payment_intent.succeeded", time.Now().Unix(), succeededIntent(nil))

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, a.Verify(body, signedHeaders(body, testWebhookSecret, time.Now())))
	})

	t.Run("missing header", func(t *testing.T) {
		assert.ErrorIs(t, a.Verify(body, http.Header{}), ports.ErrSignatureMissing)
	})

	t.Run("wrong secret", func(t *testing.T) {
		err := a.Verify(body, signedHeaders(body, "whsec_other", time.Now()))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrSignatureMissing)
	})

	t.Run("tampered body", func(t *testing.T) {
		h := signedHeaders(body, testWebhookSecret, time.Now())
		tampered := append([]byte{}, body...)
		tampered[len(tampered)-2] = ' '
		assert.Error(t, a.Verify(tampered, h))
	})

	t.Run("signed too long ago", func(t *testing.T) {
		err := a.Verify(body, signedHeaders(body, testWebhookSecret, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, ports.ErrSignatureExpired)
	})
}

func TestWebhookAdapter_RetryOfOldEventWithFreshSignature(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, 0)
	created := time.Now().Add(-10 * time.Minute).Unix()
	body := eventBody(t, "payment_intent.succeeded", created, succeededIntent(map[string]string{"organizationId": "org_1"}))

	require.NoError(t, a.Verify(body, signedHeaders(body, testWebhookSecret, time.Now())))

	p, err := a.Parse(body)
	require.NoError(t, err)
	assert.Nil(t, p.Timestamp)
	assert.Equal(t, "pi_123", p.ProviderRef)
}

func TestWebhookAdapter_Parse_IgnoresOtherEventTypes(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, 0)
	withOrg := map[string]string{"organizationId": "org_1"}

	for _, eventType := range []string{"payment_intent.created", "payment_intent.payment_failed", "charge.refunded"} {
		t.Run(eventType, func(t *testing.T) {
			_, err := a.Parse(eventBody(t, eventType, time.Now().Unix(), succeededIntent(withOrg)))
			assert.ErrorIs(t, err, ports.ErrEventIgnored)
		})
	}
}

func TestWebhookAdapter_Parse(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, time.Minute)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p, err := a.Parse(eventBody(t, "payment_intent.succeeded", created.Unix(), succeededIntent(map[string]string{
		"organizationId": "org_1",
		"invoiceId":      "inv_9",
	})))
	require.NoError(t, err)

	assert.Equal(t, "stripe", p.Provider)
	assert.Equal(t, "org_1", p.OrganizationID)
	assert.Equal(t, "pi_123", p.ProviderRef)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("50.00")), p.Amount.String())
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "STRIPE", p.Method)
	require.NotNil(t, p.InvoiceID)
	assert.Equal(t, "inv_9", *p.InvoiceID)
	assert.Nil(t, p.Timestamp)
	assert.Equal(t, time.Minute, a.Tolerance())
}

func TestWebhookAdapter_Parse_SnakeCaseMetadataAndZeroDecimal(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, 0)
	obj := succeededIntent(map[string]string{"organization_id": "org_2"})
	obj["currency"] = "jpy"
	obj["amount"] = 1200

	p, err := a.Parse(eventBody(t, "payment_intent.succeeded", time.Now().Unix(), obj))
	require.NoError(t, err)
	assert.Equal(t, "org_2", p.OrganizationID)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(1200)))
	assert.Nil(t, p.InvoiceID)
}

func TestWebhookAdapter_Parse_Rejects(t *testing.T) {
	a := NewWebhookAdapter(testWebhookSecret, 0)
	now := time.Now().Unix()
	withOrg := map[string]string{"organizationId": "org_1"}

	zeroAmount := succeededIntent(withOrg)
	zeroAmount["amount"] = 0

	tests := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("{")},
		{"no organization", eventBody(t, "payment_intent.succeeded", now, succeededIntent(nil))},
		{"zero amount", eventBody(t, "payment_intent.succeeded", now, zeroAmount)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Parse(tt.body)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ports.ErrEventIgnored)
		})
	}
}
