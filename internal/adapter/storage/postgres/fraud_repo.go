package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fincore/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FraudSignalRepo implements ports.FraudSignalRepository.
type FraudSignalRepo struct {
	pool Pool
}

// NewFraudSignalRepo creates a new FraudSignalRepo.
func NewFraudSignalRepo(pool Pool) *FraudSignalRepo {
	return &FraudSignalRepo{pool: pool}
}

const signalColumns = `id, organization_id, entity_type, entity_id, risk_score, factors, is_flagged, created_at, updated_at`

// Upsert keeps the original id and created_at when the entity is rescored.
func (r *FraudSignalRepo) Upsert(ctx context.Context, s *domain.FraudSignal) error {
	factors, err := json.Marshal(s.Factors)
	if err != nil {
		return fmt.Errorf("marshal risk factors: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO fraud_signals (`+signalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (organization_id, entity_type, entity_id) DO UPDATE
		SET risk_score = EXCLUDED.risk_score, factors = EXCLUDED.factors,
			is_flagged = EXCLUDED.is_flagged, updated_at = EXCLUDED.updated_at`,
		s.ID, s.OrganizationID, s.EntityType, s.EntityID, s.RiskScore, factors, s.IsFlagged, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert fraud signal: %w", err)
	}
	return nil
}

// Get returns nil when the entity has not been scored.
func (r *FraudSignalRepo) Get(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string) (*domain.FraudSignal, error) {
	s, err := scanSignal(r.pool.QueryRow(ctx, `SELECT `+signalColumns+` FROM fraud_signals
		WHERE organization_id = $1 AND entity_type = $2 AND entity_id = $3`, org, entityType, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fraud signal: %w", err)
	}
	return s, nil
}

// ListFlagged pages through flagged signals, highest score first.
func (r *FraudSignalRepo) ListFlagged(ctx context.Context, org string, page, pageSize int) ([]domain.FraudSignal, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fraud_signals
		WHERE organization_id = $1 AND is_flagged`, org).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count flagged signals: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+signalColumns+` FROM fraud_signals
		WHERE organization_id = $1 AND is_flagged
		ORDER BY risk_score DESC, updated_at DESC LIMIT $2 OFFSET $3`, org, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list flagged signals: %w", err)
	}
	defer rows.Close()

	var signals []domain.FraudSignal
	for rows.Next() {
		s, err := scanSignal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan fraud signal: %w", err)
		}
		signals = append(signals, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate fraud signals: %w", err)
	}
	return signals, total, nil
}

func (r *FraudSignalRepo) CountFlaggedSince(ctx context.Context, org string, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fraud_signals
		WHERE organization_id = $1 AND is_flagged AND updated_at >= $2`, org, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count flagged since: %w", err)
	}
	return n, nil
}

func scanSignal(row pgx.Row) (*domain.FraudSignal, error) {
	var (
		s       domain.FraudSignal
		factors []byte
	)
	err := row.Scan(&s.ID, &s.OrganizationID, &s.EntityType, &s.EntityID, &s.RiskScore, &factors,
		&s.IsFlagged, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &s.Factors); err != nil {
			return nil, fmt.Errorf("decode risk factors: %w", err)
		}
	}
	return &s, nil
}
