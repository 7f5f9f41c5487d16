package postgresstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// HealthCheck implements secondary.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool *pgxpool.Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool *pgxpool.Pool) secondary.HealthChecker {
	return &HealthCheck{pool: pool}
}

// Name returns the name of this health check.
func (h *HealthCheck) Name() string {
	return "postgres"
}

// Check pings the pool to verify connectivity.
func (h *HealthCheck) Check(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
