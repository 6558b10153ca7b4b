package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BreakerOptions configures one circuit.
type BreakerOptions struct {
	FailureThreshold int
	ResetAfter       time.Duration
}

// DefaultBreakerOptions returns a threshold of 5 failures and a 30s reset window.
func DefaultBreakerOptions() BreakerOptions {
	return BreakerOptions{FailureThreshold: 5, ResetAfter: 30 * time.Second}
}

// CircuitBreaker guards outbound provider calls.
type CircuitBreaker interface {
	Execute(ctx context.Context, key string, fn func(ctx context.Context) error, opts BreakerOptions) error
	GetState(key string) domain.BreakerSnapshot
	States() []domain.BreakerSnapshot
}

// BreakerObserver is notified of circuit state changes.
type BreakerObserver interface {
	OnTransition(key string, from, to domain.BreakerState)
}

// EventHandler consumes one domain event payload.
type EventHandler func(ctx context.Context, payload any) error

// EventPublisher publishes domain events. Publish never blocks on consumers.
type EventPublisher interface {
	Publish(event string, payload any)
}

// EventSubscriber registers named consumers for a domain event.
type EventSubscriber interface {
	Subscribe(event, name string, handler EventHandler)
}

// EntryInput is one requested ledger entry.
type EntryInput struct {
	AccountID uuid.UUID
	Direction domain.Direction
	Amount    int64
}

// PostTransactionRequest is a balanced posting for one business reference.
type PostTransactionRequest struct {
	OrganizationID string
	ReferenceType  string
	ReferenceID    string
	Entries        []EntryInput
}

// CreateAccountRequest holds the fields of a new ledger account.
type CreateAccountRequest struct {
	OrganizationID string
	Name           string
	Type           domain.AccountType
	Currency       string
}

// LedgerPoster posts balanced transactions.
type LedgerPoster interface {
	PostTransaction(ctx context.Context, req PostTransactionRequest) (*domain.PostedTransaction, error)
}

// AccountDirectory lists an organization's ledger accounts.
type AccountDirectory interface {
	GetAccounts(ctx context.Context, org string) ([]domain.LedgerAccount, error)
}

// LedgerService is the double-entry ledger.
type LedgerService interface {
	LedgerPoster
	AccountDirectory
	GetBalances(ctx context.Context, org string, accountIDs []uuid.UUID) ([]domain.AccountBalance, error)
	GetTransactions(ctx context.Context, params LedgerListParams) ([]domain.TransactionDetail, int64, error)
	GetTransactionByID(ctx context.Context, org string, id uuid.UUID) (*domain.TransactionDetail, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.LedgerAccount, error)
	BootstrapAccounts(ctx context.Context, org, currency string) ([]domain.LedgerAccount, error)
	VerifyChain(ctx context.Context, org string) (*domain.ChainReport, error)
}

// Sentinels returned by webhook adapters.
var (
	// ErrSignatureMissing: the request carries no signature.
	ErrSignatureMissing = errors.New("signature header missing")
	// ErrSignatureExpired: the signature is valid but was produced outside the tolerance.
	ErrSignatureExpired = errors.New("signature timestamp outside tolerance")
	// ErrEventIgnored: the payload is authentic but is not a payment this service records.
	ErrEventIgnored = errors.New("event type not handled")
)

// WebhookAdapter verifies and normalizes one provider's webhooks.
type WebhookAdapter interface {
	Provider() string
	Verify(rawBody []byte, headers http.Header) error
	Parse(rawBody []byte) (*domain.NormalizedPayment, error)
	// Tolerance bounds the skew of NormalizedPayment.Timestamp; zero disables
	// the check, as does a nil Timestamp.
	Tolerance() time.Duration
}

// PaymentProvider starts collections with one provider.
type PaymentProvider interface {
	Provider() string
	Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.InitiateResult, error)
}

// PaymentOrchestrator turns provider webhooks into payments exactly once.
type PaymentOrchestrator interface {
	HandleWebhook(ctx context.Context, provider string, rawBody []byte, headers http.Header) (*domain.WebhookOutcome, error)
	InitiatePayment(ctx context.Context, provider string, req domain.InitiateRequest) (*domain.InitiateResult, error)
}

// FraudService scores payments and ledger postings.
type FraudService interface {
	ComputePaymentRisk(ctx context.Context, org, paymentID string, amount decimal.Decimal) (*domain.RiskResult, error)
	ComputeLedgerRisk(ctx context.Context, org string, ledgerTxID uuid.UUID) (*domain.RiskResult, error)
	GetRiskScore(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string) (*domain.FraudSignal, error)
	ListFlagged(ctx context.Context, org string, page, pageSize int) ([]domain.FraudSignal, int64, error)
	ShouldBlockPayment(riskScore int) bool
	ShouldBlockOrganization(ctx context.Context, org string) (bool, error)
}

// TokenService validates bearer tokens.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject        string
	OrganizationID string
}
