package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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
)

type darajaStub struct {
	tokenCalls atomic.Int32
	pushCalls  atomic.Int32
	pushStatus int

	mu       sync.Mutex
	lastPush map[string]any
}

func (d *darajaStub) pushed() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastPush
}

func (d *darajaStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/oauth/v1/generate":
			d.tokenCalls.Add(1)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			_, _ = io.WriteString(w, `{"access_token":"tok-1","expires_in":"3599"}`)
		case "/mpesa/stkpush/v1/processrequest":
			d.pushCalls.Add(1)
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			if d.pushStatus != 0 {
				w.WriteHeader(d.pushStatus)
				_, _ = io.WriteString(w, `{"errorMessage":"upstream down"}`)
				return
			}
			body := map[string]any{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			d.mu.Lock()
			d.lastPush = body
			d.mu.Unlock()
			_, _ = io.WriteString(w, `{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0","ResponseDescription":"Success","CustomerMessage":"Success. Request accepted for processing"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestClient(t *testing.T, stub *darajaStub, opts ports.BreakerOptions) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		BaseURL:        srv.URL + "/",
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Passkey:        "pass",
		Shortcode:      "174379",
		CallbackURL:    "https://example.test/webhooks/mpesa",
		Timeout:        5 * time.Second,
		Breaker:        opts,
	}, service.NewCircuitBreakerService(nil, zerolog.Nop()), zerolog.Nop())
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c
}

func TestClient_AccessTokenIsCached(t *testing.T) {
	stub := &darajaStub{}
	c := newTestClient(t, stub, ports.DefaultBreakerOptions())

	for i := 0; i < 3; i++ {
		tok, err := c.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)
	}
	assert.Equal(t, int32(1), stub.tokenCalls.Load())
}

func TestClient_Initiate(t *testing.T) {
	stub := &darajaStub{}
	c := newTestClient(t, stub, ports.DefaultBreakerOptions())

	res, err := c.Initiate(context.Background(), domain.InitiateRequest{
		OrganizationID: "org_1",
		Amount:         decimal.NewFromInt(250),
		Currency:       "KES",
		PhoneNumber:    "254708374149",
	})
	require.NoError(t, err)

	assert.Equal(t, "mpesa", res.Provider)
	assert.Equal(t, "ws_CO_1", res.ProviderRef)
	assert.Equal(t, "PENDING", res.Status)

	push := stub.pushed()
	require.NotNil(t, push)
	assert.Equal(t, float64(250), push["Amount"])
	assert.Equal(t, "org_1", push["AccountReference"])
	assert.Equal(t, "20260102060405", push["Timestamp"])
	wantPassword := base64.StdEncoding.EncodeToString([]byte("174379" + "pass" + "20260102060405"))
	assert.Equal(t, wantPassword, push["Password"])
}

func TestClient_InitiateValidation(t *testing.T) {
	stub := &darajaStub{}
	c := newTestClient(t, stub, ports.DefaultBreakerOptions())

	tests := []struct {
		name string
		req  domain.InitiateRequest
	}{
		{"fractional", domain.InitiateRequest{OrganizationID: "o", Amount: decimal.RequireFromString("10.5"), Currency: "KES", PhoneNumber: "2547"}},
		{"no phone", domain.InitiateRequest{OrganizationID: "o", Amount: decimal.NewFromInt(10), Currency: "KES"}},
		{"wrong currency", domain.InitiateRequest{OrganizationID: "o", Amount: decimal.NewFromInt(10), Currency: "USD", PhoneNumber: "2547"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Initiate(context.Background(), tt.req)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
	assert.Equal(t, int32(0), stub.pushCalls.Load())
}

func TestClient_BreakerOpensOnUpstreamErrors(t *testing.T) {
	stub := &darajaStub{pushStatus: http.StatusServiceUnavailable}
	c := newTestClient(t, stub, ports.BreakerOptions{FailureThreshold: 2, ResetAfter: time.Minute})
	req := STKPushRequest{PhoneNumber: "2547", Amount: decimal.NewFromInt(10), AccountReference: "org_1"}

	for i := 0; i < 2; i++ {
		_, err := c.STKPush(context.Background(), req)
		require.Error(t, err)
		assert.False(t, apperror.IsProviderUnavailable(err))
	}

	_, err := c.STKPush(context.Background(), req)
	assert.True(t, apperror.IsProviderUnavailable(err))
	assert.Equal(t, int32(2), stub.pushCalls.Load())
}
