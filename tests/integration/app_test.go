package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fincore/internal/adapter/eventbus"
	httpHandler "fincore/internal/adapter/http/handler"
	"fincore/internal/adapter/provider/stripe"
	redisStorage "fincore/internal/adapter/storage/redis"
	"fincore/internal/core/ports"
	"fincore/internal/service"
	"fincore/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	jwtSecret           = "integration-jwt-secret"
	jwtIssuer           = "fincore"
	stripeWebhookSecret = "whsec_integration"
)

// testApp wires the real HTTP layer, services, event bus and Redis stores
// (on miniredis) over the in-memory repositories.
type testApp struct {
	server *httptest.Server
	store  *memStore
	bus    *eventbus.Bus
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T, limits httpHandler.RateLimits) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.New("error", false)
	store := newMemStore()

	accountRepo := &memAccountRepo{store: store}
	intentRepo := &memIntentRepo{store: store}

	bus := eventbus.New(256, 2, log)
	breaker := service.NewCircuitBreakerService(nil, log)

	ledgerSvc := service.NewLedgerService(&memLedgerRepo{store: store}, accountRepo, &memTransactor{store: store}, bus, log)
	fraudSvc := service.NewFraudService(&memFraudRepo{store: store}, intentRepo,
		redisStorage.NewFraudCounter(rdb, 0), service.DefaultFraudPolicy(), log)
	auditSvc := service.NewAuditService(&memAuditRepo{store: store}, log)
	fraudSvc.Subscribe(bus)
	auditSvc.Subscribe(bus)
	bus.Start(context.Background())

	orchestrator := service.NewOrchestratorService(service.OrchestratorDeps{
		Adapters:      []ports.WebhookAdapter{stripe.NewWebhookAdapter(stripeWebhookSecret, 0)},
		IntentRepo:    intentRepo,
		Cache:         redisStorage.NewWebhookCache(rdb, 0),
		Payments:      &memPaymentRepo{store: store},
		Accounts:      ledgerSvc,
		Ledger:        ledgerSvc,
		Events:        bus,
		SystemActorID: "system",
	}, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Orchestrator:   orchestrator,
		LedgerSvc:      ledgerSvc,
		FraudSvc:       fraudSvc,
		Breaker:        breaker,
		TokenSvc:       service.NewJWTTokenService(jwtSecret, jwtIssuer),
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		RateLimits:     limits,
		Logger:         log,
	})

	app := &testApp{
		server: httptest.NewServer(router),
		store:  store,
		bus:    bus,
		redis:  mr,
	}
	t.Cleanup(func() {
		app.server.Close()
		bus.Close()
	})
	return app
}

func tokenFor(t *testing.T, org string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"org": org,
		"iss": jwtIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return signed
}

type apiResponse struct {
	Status    int
	Data      json.RawMessage `json:"data"`
	Meta      json.RawMessage `json:"meta"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (a *testApp) send(t *testing.T, req *http.Request) apiResponse {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := apiResponse{Status: resp.StatusCode}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func (a *testApp) api(t *testing.T, method, path, token string, body any) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.send(t, req)
}

func (a *testApp) stripeWebhook(t *testing.T, body []byte, signedAt time.Time) apiResponse {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   body,
		Secret:    stripeWebhookSecret,
		Timestamp: signedAt,
	})
	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/webhooks/stripe", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(stripe.SignatureHeader, signed.Header)
	return a.send(t, req)
}

func stripeSucceededEvent(t *testing.T, org, intentID string, amount int64, created time.Time) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":          "evt_" + intentID,
		"object":      "event",
		"type":        "payment_intent.succeeded",
		"created":     created.Unix(),
		"api_version": "2020-01-01",
		"data": map[string]any{"object": map[string]any{
			"id":       intentID,
			"object":   "payment_intent",
			"amount":   amount,
			"currency": "usd",
			"status":   "succeeded",
			"metadata": map[string]string{"organizationId": org, "invoiceId": "inv_" + intentID},
		}},
	})
	require.NoError(t, err)
	return body
}

func decodeData[T any](t *testing.T, r apiResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Data, &v), string(r.Data))
	return v
}

type accountView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type balanceView struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
}

type hashView struct {
	ChainIndex   int64   `json:"chain_index"`
	PreviousHash *string `json:"previous_hash"`
	CurrentHash  string  `json:"current_hash"`
}

type transactionView struct {
	ID          string    `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Hash        *hashView `json:"hash"`
}

type chainView struct {
	Checked  int    `json:"checked"`
	Valid    bool   `json:"valid"`
	BrokenAt string `json:"broken_at"`
}

type webhookView struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	PaymentID       string  `json:"paymentId"`
	InvoiceID       *string `json:"invoiceId"`
	Idempotent      bool    `json:"idempotent"`
	Ignored         bool    `json:"ignored"`
}

// createAccounts creates one ASSET and one REVENUE account for the caller's organization.
func (a *testApp) createAccounts(t *testing.T, token string) (asset, revenue string) {
	t.Helper()
	r := a.api(t, http.MethodPost, "/api/v1/ledger/accounts", token, map[string]string{
		"name": "Operating", "type": "ASSET", "currency": "USD",
	})
	require.Equal(t, http.StatusCreated, r.Status, r.Message)
	asset = decodeData[accountView](t, r).ID

	r = a.api(t, http.MethodPost, "/api/v1/ledger/accounts", token, map[string]string{
		"name": "Sales", "type": "REVENUE", "currency": "USD",
	})
	require.Equal(t, http.StatusCreated, r.Status, r.Message)
	revenue = decodeData[accountView](t, r).ID
	return asset, revenue
}

func posting(ref, debitAcct, creditAcct string, amount int64) map[string]any {
	return map[string]any{
		"referenceType": "TEST",
		"referenceId":   ref,
		"entries": []map[string]any{
			{"accountId": debitAcct, "direction": "DEBIT", "amount": amount},
			{"accountId": creditAcct, "direction": "CREDIT", "amount": amount},
		},
	}
}

func (a *testApp) balances(t *testing.T, token string) map[string]string {
	t.Helper()
	r := a.api(t, http.MethodGet, "/api/v1/ledger/balances", token, nil)
	require.Equal(t, http.StatusOK, r.Status, r.Message)
	out := make(map[string]string)
	for _, b := range decodeData[[]balanceView](t, r) {
		out[b.AccountID] = b.Balance
	}
	return out
}

// stripeWebhookWithSignatureOf posts body under a valid signature computed
// for a different payload.
func (a *testApp) stripeWebhookWithSignatureOf(t *testing.T, body, signedFor []byte) apiResponse {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   signedFor,
		Secret:    stripeWebhookSecret,
		Timestamp: time.Now(),
	})
	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/webhooks/stripe", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(stripe.SignatureHeader, signed.Header)
	return a.send(t, req)
}
