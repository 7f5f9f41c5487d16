package sqlitestore

import (
	"context"
	"database/sql"

	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// HealthCheck implements secondary.HealthChecker for SQLite.
type HealthCheck struct {
	db *sql.DB
}

// NewHealthCheck creates a SQLite health checker.
func NewHealthCheck(db *sql.DB) secondary.HealthChecker {
	return &HealthCheck{db: db}
}

// Name returns the name of this health check.
func (h *HealthCheck) Name() string {
	return "sqlite"
}

// Check pings the database.
func (h *HealthCheck) Check(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
