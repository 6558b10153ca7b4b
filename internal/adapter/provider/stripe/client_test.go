package stripe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/internal/service"
	"fincore/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v82"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ports.BreakerOptions) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		URL:               stripego.String(srv.URL),
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelNull},
	})
	breaker := service.NewCircuitBreakerService(nil, zerolog.Nop())
	return NewClient(Config{
		SecretKey: "sk_test_123",
		Timeout:   5 * time.Second,
		Backend:   backend,
		Breaker:   opts,
	}, breaker, zerolog.Nop())
}

func TestClient_Initiate(t *testing.T) {
	var (
		mu   sync.Mutex
		form url.Values
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		form, _ = url.ParseQuery(string(raw))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"pi_new","object":"payment_intent","amount":2050,"currency":"usd","status":"requires_payment_method","client_secret":"pi_new_secret"}`)
	}, ports.DefaultBreakerOptions())

	invoice := "inv_1"
	res, err := c.Initiate(context.Background(), domain.InitiateRequest{
		OrganizationID: "org_1",
		Amount:         decimal.RequireFromString("20.50"),
		Currency:       "USD",
		InvoiceID:      &invoice,
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_new", res.ProviderRef)
	assert.Equal(t, "requires_payment_method", res.Status)
	assert.Equal(t, "pi_new_secret", res.ClientSecret)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "2050", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "org_1", form.Get("metadata[organizationId]"))
	assert.Equal(t, "inv_1", form.Get("metadata[invoiceId]"))
}

func TestClient_RetrieveAndCancel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/payment_intents/pi_1":
			_, _ = io.WriteString(w, `{"id":"pi_1","object":"payment_intent","status":"processing"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents/pi_1/cancel":
			_, _ = io.WriteString(w, `{"id":"pi_1","object":"payment_intent","status":"canceled"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, ports.DefaultBreakerOptions())

	pi, err := c.RetrievePaymentIntent(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, stripego.PaymentIntentStatusProcessing, pi.Status)

	pi, err = c.CancelPaymentIntent(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, stripego.PaymentIntentStatusCanceled, pi.Status)
}

func TestClient_BreakerOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"boom"}}`)
	}, ports.BreakerOptions{FailureThreshold: 2, ResetAfter: time.Minute})

	for i := 0; i < 2; i++ {
		_, err := c.RetrievePaymentIntent(context.Background(), "pi_1")
		require.Error(t, err)
		assert.False(t, apperror.IsProviderUnavailable(err))
	}

	_, err := c.RetrievePaymentIntent(context.Background(), "pi_1")
	assert.True(t, apperror.IsProviderUnavailable(err))
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_InitiateRejectsNegativeAmount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, ports.DefaultBreakerOptions())

	_, err := c.Initiate(context.Background(), domain.InitiateRequest{
		OrganizationID: "org_1",
		Amount:         decimal.NewFromInt(-1),
		Currency:       "USD",
	})
	assert.True(t, apperror.IsValidation(err))
}
