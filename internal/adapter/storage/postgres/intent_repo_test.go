package postgres

import (
	"context"
	"testing"
	"time"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intentCols = []string{"id", "organization_id", "provider", "provider_ref", "amount", "currency", "status",
	"invoice_id", "payment_id", "failure_reason", "created_at", "updated_at"}

func TestIntentRepo_GetByProviderRef(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("FROM payment_intents WHERE organization_id").
		WithArgs("org1", "stripe", "pi_1").
		WillReturnRows(pgxmock.NewRows(intentCols).
			AddRow(id, "org1", "stripe", "pi_1", "50.0000", "USD", domain.IntentStatusCompleted,
				strPtr("inv_1"), strPtr("pay_1"), (*string)(nil), now, now))

	intent, err := repo.GetByProviderRef(context.Background(), "org1", "stripe", "pi_1")
	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, id, intent.ID)
	assert.True(t, intent.Amount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, domain.IntentStatusCompleted, intent.Status)
	assert.Equal(t, "pay_1", *intent.PaymentID)
	assert.Nil(t, intent.FailureReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntentRepo_GetByProviderRef_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)

	mock.ExpectQuery("FROM payment_intents").
		WithArgs("org1", "stripe", "pi_missing").
		WillReturnRows(pgxmock.NewRows(intentCols))

	intent, err := repo.GetByProviderRef(context.Background(), "org1", "stripe", "pi_missing")
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestIntentRepo_CreateIfAbsent(t *testing.T) {
	now := time.Now().UTC()
	intent := &domain.PaymentIntent{
		ID:             uuid.New(),
		OrganizationID: "org1",
		Provider:       "stripe",
		ProviderRef:    "pi_1",
		Amount:         decimal.RequireFromString("50.00"),
		Currency:       "USD",
		Status:         domain.IntentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tests := []struct {
		name     string
		affected int64
		created  bool
	}{
		{"inserted", 1, true},
		{"lost race", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewIntentRepo(mock)

			mock.ExpectExec("INSERT INTO payment_intents").
				WithArgs(intent.ID, "org1", "stripe", "pi_1", "50", "USD",
					domain.IntentStatusPending, (*string)(nil), now, now).
				WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))

			created, err := repo.CreateIfAbsent(context.Background(), intent)
			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIntentRepo_MarkCompleted(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE payment_intents").
		WithArgs(id, "pay_1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkCompleted(context.Background(), id, "pay_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntentRepo_MarkFailed_NotPending(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE payment_intents").
		WithArgs(id, "db down").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkFailed(context.Background(), id, "db down")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not pending")
}

func TestIntentRepo_RecentCompletedAmounts(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)
	since := time.Now().Add(-domain.AmountHistoryWindow)

	mock.ExpectQuery("SELECT amount::text FROM payment_intents").
		WithArgs("org1", since, "pay_current", domain.AmountHistoryLimit).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow("10.5000").AddRow("20"))

	amounts, err := repo.RecentCompletedAmounts(context.Background(), "org1", since, domain.AmountHistoryLimit, "pay_current")
	require.NoError(t, err)
	require.Len(t, amounts, 2)
	assert.True(t, amounts[0].Equal(decimal.RequireFromString("10.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntentRepo_CountFailedIntents(t *testing.T) {
	mock := newMockPool(t)
	repo := NewIntentRepo(mock)
	since := time.Now().Add(-domain.FailedAttemptsWindow)

	mock.ExpectQuery("status = 'FAILED'").
		WithArgs("org1", since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountFailedIntents(context.Background(), "org1", since)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
