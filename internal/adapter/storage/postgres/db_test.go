package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
}

func TestMigrate_AppliesInOrder(t *testing.T) {
	mock := newMockPool(t)
	files := fstest.MapFS{
		"002_fraud.sql": {Data: []byte("CREATE TABLE IF NOT EXISTS fraud_signals (id UUID)")},
		"001_init.sql":  {Data: []byte("CREATE TABLE IF NOT EXISTS ledger_accounts (id UUID)")},
		"README.md":     {Data: []byte("not sql")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ledger_accounts").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS fraud_signals").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock, files, zerolog.Nop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsOnError(t *testing.T) {
	mock := newMockPool(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE broken")},
		"002_next.sql": {Data: []byte("CREATE TABLE never_run")},
	}

	mock.ExpectExec("CREATE TABLE broken").WillReturnError(errors.New("syntax error"))

	err := Migrate(context.Background(), mock, files, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginsReadCommitted(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})

	tx, err := NewTransactor(mock).Begin(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock := newMockPool(t)
	hc := NewHealthCheck(mock)

	mock.ExpectQuery("to_regclass").WillReturnRows(pgxmock.NewRows([]string{"ready"}).AddRow(true))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectQuery("to_regclass").WillReturnRows(pgxmock.NewRows([]string{"ready"}).AddRow(false))
	assert.ErrorIs(t, hc.Ping(context.Background()), errSchemaMissing)

	mock.ExpectQuery("to_regclass").WillReturnError(errors.New("connection refused"))
	assert.Error(t, hc.Ping(context.Background()))

	assert.Equal(t, "postgresql", hc.Name())
}
