package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepo(mock)
	fixed := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(pgxmock.AnyArg(), "org1", "50", "USD", "STRIPE", domain.PaymentStatusCompleted,
			"pi_1", strPtr("inv_1"), "system", fixed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	p, err := repo.Create(context.Background(), "org1", "system", domain.PaymentInput{
		Amount:        decimal.RequireFromString("50.00"),
		Currency:      "usd",
		Method:        "STRIPE",
		Status:        domain.PaymentStatusCompleted,
		TransactionID: "pi_1",
		InvoiceID:     strPtr("inv_1"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, fixed, p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Create_Error(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepo(mock)

	mock.ExpectExec("INSERT INTO payments").WillReturnError(errors.New("disk full"))

	_, err := repo.Create(context.Background(), "org1", "system", domain.PaymentInput{Amount: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func TestAuditRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAuditRepo(mock)
	entry := &domain.AuditLog{
		ID:             uuid.New(),
		OrganizationID: "org1",
		Action:         domain.AuditActionPaymentCompleted,
		ResourceType:   "payment",
		ResourceID:     "pay_1",
		Details:        `{"amount":"50"}`,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, "org1", "PAYMENT_COMPLETED", "payment", "pay_1", `{"amount":"50"}`, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_EmptyDetailsIsNull(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAuditRepo(mock)
	entry := &domain.AuditLog{ID: uuid.New(), OrganizationID: "org1", Action: domain.AuditActionLedgerPosted,
		ResourceType: "ledger_transaction", ResourceID: "tx_1"}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, "org1", "LEDGER_TRANSACTION_POSTED", "ledger_transaction", "tx_1", nil, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
