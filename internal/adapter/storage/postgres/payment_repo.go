package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
)

// PaymentRepo implements ports.PaymentCreator by recording payments in the
// payments table.
type PaymentRepo struct {
	pool Pool
	now  func() time.Time
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

func (r *PaymentRepo) Create(ctx context.Context, org, actorID string, in domain.PaymentInput) (*domain.Payment, error) {
	p := &domain.Payment{
		ID:             uuid.NewString(),
		OrganizationID: org,
		Amount:         in.Amount,
		Currency:       strings.ToUpper(in.Currency),
		Method:         in.Method,
		Status:         in.Status,
		TransactionID:  in.TransactionID,
		InvoiceID:      in.InvoiceID,
		CreatedBy:      actorID,
		CreatedAt:      r.now(),
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO payments (id, organization_id, amount, currency, method, status,
		transaction_id, invoice_id, created_by, created_at)
		VALUES ($1, $2, $3::text::numeric, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.OrganizationID, p.Amount.String(), p.Currency, p.Method, p.Status,
		p.TransactionID, p.InvoiceID, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}
