package postgres

import (
	"context"
	"errors"
	"fmt"

	"fincore/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.LedgerAccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, organization_id, name, type, currency, created_at`

func (r *AccountRepo) Create(ctx context.Context, a *domain.LedgerAccount) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ledger_accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.OrganizationID, a.Name, a.Type, a.Currency, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert ledger account: %w", domain.ErrDuplicateAccountName)
		}
		return fmt.Errorf("insert ledger account: %w", err)
	}
	return nil
}

// CreateIfMissing inserts a unless (organization, name) is taken and
// returns the stored row.
func (r *AccountRepo) CreateIfMissing(ctx context.Context, a *domain.LedgerAccount) (*domain.LedgerAccount, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO ledger_accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (organization_id, name) DO NOTHING`,
		a.ID, a.OrganizationID, a.Name, a.Type, a.Currency, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert ledger account: %w", err)
	}

	stored := &domain.LedgerAccount{}
	err = r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM ledger_accounts
		WHERE organization_id = $1 AND name = $2`, a.OrganizationID, a.Name).
		Scan(&stored.ID, &stored.OrganizationID, &stored.Name, &stored.Type, &stored.Currency, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger account %q vanished after upsert", a.Name)
		}
		return nil, fmt.Errorf("read ledger account: %w", err)
	}
	return stored, nil
}

// ListByOrganization returns accounts in creation order.
func (r *AccountRepo) ListByOrganization(ctx context.Context, org string) ([]domain.LedgerAccount, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM ledger_accounts
		WHERE organization_id = $1 ORDER BY created_at, id`, org)
	if err != nil {
		return nil, fmt.Errorf("list ledger accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.LedgerAccount
	for rows.Next() {
		var a domain.LedgerAccount
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Type, &a.Currency, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepo) ExistingIDs(ctx context.Context, org string, ids []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM ledger_accounts
		WHERE organization_id = $1 AND id = ANY($2)`, org, ids)
	if err != nil {
		return nil, fmt.Errorf("query account ids: %w", err)
	}
	defer rows.Close()

	found := make([]uuid.UUID, 0, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		found = append(found, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account ids: %w", err)
	}
	return found, nil
}
