package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

var entryColumns = []string{"id", "ledger_transaction_id", "account_id", "direction", "amount", "created_at"}

const transactionSelect = `SELECT t.id, t.organization_id, t.reference_type, t.reference_id, t.created_at,
	h.chain_index, h.previous_hash, h.current_hash, h.created_at
	FROM ledger_transactions t
	LEFT JOIN ledger_hashes h ON h.ledger_transaction_id = t.id`

// LockOrganization takes a transaction-scoped advisory lock on the organization.
func (r *LedgerRepo) LockOrganization(ctx context.Context, tx pgx.Tx, org string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, org); err != nil {
		return fmt.Errorf("lock organization: %w", err)
	}
	return nil
}

func (r *LedgerRepo) ReferenceExists(ctx context.Context, tx pgx.Tx, org, refType, refID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ledger_transactions
		WHERE organization_id = $1 AND reference_type = $2 AND reference_id = $3)`,
		org, refType, refID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check reference: %w", err)
	}
	return exists, nil
}

// LastHash returns the newest chain link of org, or nil for an empty chain.
func (r *LedgerRepo) LastHash(ctx context.Context, tx pgx.Tx, org string) (*domain.LedgerHash, error) {
	h := &domain.LedgerHash{}
	err := tx.QueryRow(ctx, `SELECT ledger_transaction_id, organization_id, chain_index, previous_hash, current_hash, created_at
		FROM ledger_hashes WHERE organization_id = $1 ORDER BY chain_index DESC LIMIT 1`, org).
		Scan(&h.LedgerTransactionID, &h.OrganizationID, &h.ChainIndex, &h.PreviousHash, &h.CurrentHash, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last hash: %w", err)
	}
	return h, nil
}

func (r *LedgerRepo) CreateTransaction(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error {
	_, err := tx.Exec(ctx, `INSERT INTO ledger_transactions (id, organization_id, reference_type, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.OrganizationID, t.ReferenceType, t.ReferenceID, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert ledger transaction: %w", domain.ErrDuplicateReference)
		}
		return fmt.Errorf("insert ledger transaction: %w", err)
	}
	return nil
}

// CreateEntries bulk-loads entries with COPY.
func (r *LedgerRepo) CreateEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"ledger_entries"}, entryColumns,
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			e := entries[i]
			return []any{e.ID, e.LedgerTransactionID, e.AccountID, string(e.Direction), e.Amount, e.CreatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy ledger entries: %w", err)
	}
	if n != int64(len(entries)) {
		return fmt.Errorf("copy ledger entries: wrote %d of %d rows", n, len(entries))
	}
	return nil
}

func (r *LedgerRepo) CreateHash(ctx context.Context, tx pgx.Tx, h *domain.LedgerHash) error {
	_, err := tx.Exec(ctx, `INSERT INTO ledger_hashes (ledger_transaction_id, organization_id, chain_index, previous_hash, current_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.LedgerTransactionID, h.OrganizationID, h.ChainIndex, h.PreviousHash, h.CurrentHash, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ledger hash: %w", err)
	}
	return nil
}

// GetBalances sums debits minus credits in numeric so large ledgers cannot
// overflow. A nil accountIDs selects every account of the organization.
func (r *LedgerRepo) GetBalances(ctx context.Context, org string, accountIDs []uuid.UUID) ([]domain.AccountBalance, error) {
	rows, err := r.pool.Query(ctx, `SELECT a.id, a.name, a.type, a.currency,
		COALESCE(SUM(CASE WHEN e.direction = 'DEBIT' THEN e.amount::numeric ELSE -e.amount::numeric END), 0)::text
		FROM ledger_accounts a
		LEFT JOIN ledger_entries e ON e.account_id = a.id
		WHERE a.organization_id = $1 AND ($2::uuid[] IS NULL OR a.id = ANY($2))
		GROUP BY a.id, a.name, a.type, a.currency, a.created_at
		ORDER BY a.created_at, a.id`, org, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("query balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.Name, &b.Type, &b.Currency, &b.Balance); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance rows: %w", err)
	}
	return balances, nil
}

// GetTransaction returns nil when id does not exist in org.
func (r *LedgerRepo) GetTransaction(ctx context.Context, org string, id uuid.UUID) (*domain.TransactionDetail, error) {
	details, err := r.queryDetails(ctx, transactionSelect+` WHERE t.organization_id = $1 AND t.id = $2`, org, id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// ListTransactions returns a page of transactions, newest first.
func (r *LedgerRepo) ListTransactions(ctx context.Context, params ports.LedgerListParams) ([]domain.TransactionDetail, int64, error) {
	where := ` WHERE t.organization_id = $1 AND ($2 = '' OR t.reference_type = $2)`

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_transactions t`+where,
		params.OrganizationID, params.ReferenceType).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count ledger transactions: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	details, err := r.queryDetails(ctx,
		transactionSelect+where+` ORDER BY t.created_at DESC, t.id DESC LIMIT $3 OFFSET $4`,
		params.OrganizationID, params.ReferenceType, params.PageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// ListChain returns every transaction of org ordered by chain position.
func (r *LedgerRepo) ListChain(ctx context.Context, org string) ([]domain.TransactionDetail, error) {
	return r.queryDetails(ctx,
		transactionSelect+` WHERE t.organization_id = $1 ORDER BY h.chain_index NULLS LAST, t.created_at, t.id`, org)
}

func (r *LedgerRepo) queryDetails(ctx context.Context, sql string, args ...any) ([]domain.TransactionDetail, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger transactions: %w", err)
	}

	var details []domain.TransactionDetail
	for rows.Next() {
		var (
			d        domain.TransactionDetail
			index    *int64
			prev     *string
			current  *string
			hashedAt *time.Time
		)
		err := rows.Scan(&d.ID, &d.OrganizationID, &d.ReferenceType, &d.ReferenceID, &d.CreatedAt,
			&index, &prev, &current, &hashedAt)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ledger transaction: %w", err)
		}
		if index != nil && current != nil {
			d.Hash = &domain.LedgerHash{
				LedgerTransactionID: d.ID,
				OrganizationID:      d.OrganizationID,
				ChainIndex:          *index,
				PreviousHash:        prev,
				CurrentHash:         *current,
			}
			if hashedAt != nil {
				d.Hash.CreatedAt = *hashedAt
			}
		}
		details = append(details, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger transactions: %w", err)
	}
	if len(details) == 0 {
		return details, nil
	}

	ids := make([]uuid.UUID, len(details))
	for i := range details {
		ids[i] = details[i].ID
	}
	entries, err := r.entriesFor(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].Entries = entries[details[i].ID]
	}
	return details, nil
}

func (r *LedgerRepo) entriesFor(ctx context.Context, q querier, txIDs []uuid.UUID) (map[uuid.UUID][]domain.LedgerEntry, error) {
	rows, err := q.Query(ctx, `SELECT id, ledger_transaction_id, account_id, direction, amount, created_at
		FROM ledger_entries WHERE ledger_transaction_id = ANY($1) ORDER BY created_at, id`, txIDs)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.LedgerEntry, len(txIDs))
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.LedgerTransactionID, &e.AccountID, &e.Direction, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out[e.LedgerTransactionID] = append(out[e.LedgerTransactionID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return out, nil
}
