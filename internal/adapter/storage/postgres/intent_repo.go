package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// IntentRepo implements ports.PaymentIntentRepository and
// ports.FraudStatsRepository over the payment_intents table.
type IntentRepo struct {
	pool Pool
}

// NewIntentRepo creates a new IntentRepo.
func NewIntentRepo(pool Pool) *IntentRepo {
	return &IntentRepo{pool: pool}
}

func (r *IntentRepo) GetByProviderRef(ctx context.Context, org, provider, providerRef string) (*domain.PaymentIntent, error) {
	var (
		i      domain.PaymentIntent
		amount string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, organization_id, provider, provider_ref, amount::text, currency, status,
		invoice_id, payment_id, failure_reason, created_at, updated_at
		FROM payment_intents WHERE organization_id = $1 AND provider = $2 AND provider_ref = $3`,
		org, provider, providerRef).
		Scan(&i.ID, &i.OrganizationID, &i.Provider, &i.ProviderRef, &amount, &i.Currency, &i.Status,
			&i.InvoiceID, &i.PaymentID, &i.FailureReason, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment intent: %w", err)
	}
	if i.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse intent amount %q: %w", amount, err)
	}
	return &i, nil
}

// CreateIfAbsent relies on the (organization, provider, provider_ref) unique
// constraint; zero affected rows means another request won the insert.
func (r *IntentRepo) CreateIfAbsent(ctx context.Context, i *domain.PaymentIntent) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO payment_intents (id, organization_id, provider, provider_ref, amount, currency,
		status, invoice_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7, $8, $9, $10)
		ON CONFLICT (organization_id, provider, provider_ref) DO NOTHING`,
		i.ID, i.OrganizationID, i.Provider, i.ProviderRef, i.Amount.String(), i.Currency,
		i.Status, i.InvoiceID, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("insert payment intent: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IntentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, paymentID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payment_intents
		SET status = 'COMPLETED', payment_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`, id, paymentID)
	if err != nil {
		return fmt.Errorf("complete payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment intent %s is not pending", id)
	}
	return nil
}

func (r *IntentRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payment_intents
		SET status = 'FAILED', failure_reason = $2, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`, id, reason)
	if err != nil {
		return fmt.Errorf("fail payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment intent %s is not pending", id)
	}
	return nil
}

// RecentCompletedAmounts returns up to limit completed amounts since the
// cutoff, newest first, skipping excludePaymentID.
func (r *IntentRepo) RecentCompletedAmounts(ctx context.Context, org string, since time.Time, limit int, excludePaymentID string) ([]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx, `SELECT amount::text FROM payment_intents
		WHERE organization_id = $1 AND status = 'COMPLETED' AND updated_at >= $2
		AND ($3 = '' OR payment_id IS DISTINCT FROM $3)
		ORDER BY updated_at DESC LIMIT $4`, org, since, excludePaymentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query completed amounts: %w", err)
	}
	defer rows.Close()

	var amounts []decimal.Decimal
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan amount: %w", err)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", s, err)
		}
		amounts = append(amounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate amounts: %w", err)
	}
	return amounts, nil
}

func (r *IntentRepo) CountFailedIntents(ctx context.Context, org string, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payment_intents
		WHERE organization_id = $1 AND status = 'FAILED' AND updated_at >= $2`, org, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count failed intents: %w", err)
	}
	return n, nil
}
