package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errSchemaMissing is reported when the database answers but migrations have not run.
var errSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck implements ports.HealthChecker for PostgreSQL.
// A reachable database without the ledger tables is reported as unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the hash chain table exists.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var ready bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('ledger_hashes') IS NOT NULL`).Scan(&ready); err != nil {
		return fmt.Errorf("querying schema: %w", err)
	}
	if !ready {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
