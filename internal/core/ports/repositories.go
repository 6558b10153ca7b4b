package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBTransactor begins database transactions.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LedgerAccountRepository defines persistence operations for ledger accounts.
type LedgerAccountRepository interface {
	Create(ctx context.Context, account *domain.LedgerAccount) error
	// CreateIfMissing inserts the account unless one with the same
	// (organization, name) exists, and returns the stored row either way.
	CreateIfMissing(ctx context.Context, account *domain.LedgerAccount) (*domain.LedgerAccount, error)
	ListByOrganization(ctx context.Context, org string) ([]domain.LedgerAccount, error)
	// ExistingIDs returns the subset of ids that belong to org.
	ExistingIDs(ctx context.Context, org string, ids []uuid.UUID) ([]uuid.UUID, error)
}

// LedgerRepository defines persistence operations for transactions, entries and the hash chain.
// Methods accepting pgx.Tx run inside the posting unit.
type LedgerRepository interface {
	// LockOrganization serializes postings of one organization until tx ends.
	LockOrganization(ctx context.Context, tx pgx.Tx, org string) error
	ReferenceExists(ctx context.Context, tx pgx.Tx, org, refType, refID string) (bool, error)
	LastHash(ctx context.Context, tx pgx.Tx, org string) (*domain.LedgerHash, error)
	CreateTransaction(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error
	CreateEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
	CreateHash(ctx context.Context, tx pgx.Tx, h *domain.LedgerHash) error

	GetBalances(ctx context.Context, org string, accountIDs []uuid.UUID) ([]domain.AccountBalance, error)
	GetTransaction(ctx context.Context, org string, id uuid.UUID) (*domain.TransactionDetail, error)
	ListTransactions(ctx context.Context, params LedgerListParams) ([]domain.TransactionDetail, int64, error)
	// ListChain returns every transaction of org in chain order.
	ListChain(ctx context.Context, org string) ([]domain.TransactionDetail, error)
}

// LedgerListParams holds filters for transaction listing.
type LedgerListParams struct {
	OrganizationID string
	ReferenceType  string
	Page           int
	PageSize       int
}

// PaymentIntentRepository defines persistence operations for payment intents.
type PaymentIntentRepository interface {
	GetByProviderRef(ctx context.Context, org, provider, providerRef string) (*domain.PaymentIntent, error)
	// CreateIfAbsent inserts intent and reports false when another row
	// already holds the same (organization, provider, provider ref).
	CreateIfAbsent(ctx context.Context, intent *domain.PaymentIntent) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, paymentID string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

// FraudStatsRepository provides the history the risk factors are computed from.
type FraudStatsRepository interface {
	RecentCompletedAmounts(ctx context.Context, org string, since time.Time, limit int, excludePaymentID string) ([]decimal.Decimal, error)
	CountFailedIntents(ctx context.Context, org string, since time.Time) (int64, error)
}

// FraudSignalRepository defines persistence operations for fraud signals.
type FraudSignalRepository interface {
	// Upsert writes the signal, keyed by (organization, entity type, entity id).
	Upsert(ctx context.Context, signal *domain.FraudSignal) error
	Get(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string) (*domain.FraudSignal, error)
	ListFlagged(ctx context.Context, org string, page, pageSize int) ([]domain.FraudSignal, int64, error)
	CountFlaggedSince(ctx context.Context, org string, since time.Time) (int64, error)
}

// AuditRepository defines persistence operations for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// FraudEventCounter counts fraud-detection events per organization in a sliding window.
type FraudEventCounter interface {
	Record(ctx context.Context, org, eventID string, at time.Time) error
	CountSince(ctx context.Context, org string, since time.Time) (int64, error)
}

// WebhookResultCache holds completed webhook outcomes for fast replays.
type WebhookResultCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key string) (*domain.WebhookOutcome, error)
	Set(ctx context.Context, key string, outcome *domain.WebhookOutcome) error
}

// PaymentCreator persists Payment records. It is owned outside the core.
type PaymentCreator interface {
	Create(ctx context.Context, org, actorID string, in domain.PaymentInput) (*domain.Payment, error)
}
