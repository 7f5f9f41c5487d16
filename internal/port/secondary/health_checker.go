package secondary

import "context"

// HealthChecker reports whether a backing dependency (task database,
// lookup cache) is reachable.
type HealthChecker interface {
	// Name identifies the dependency in health responses.
	Name() string

	// Check returns a non-nil error when the dependency is unhealthy.
	Check(ctx context.Context) error
}
