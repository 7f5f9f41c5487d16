package publisherfanout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/observability"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// Target is a named event destination.
type Target struct {
	Name      string
	Publisher secondary.TaskEventPublisher
}

// Fanout delivers every event to all configured targets.
// With no targets it is a no-op publisher.
type Fanout struct {
	targets []Target
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewFanout creates a publisher that forwards to each target in order.
func NewFanout(
	targets []Target,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Fanout {
	return &Fanout{
		targets: targets,
		metrics: metrics,
		logger:  logger.Named("publisher-fanout"),
	}
}

var _ secondary.TaskEventPublisher = (*Fanout)(nil)

// Publish sends the event to every target. A failing target does not stop
// delivery to the others; all failures are joined into the returned error.
func (f *Fanout) Publish(ctx context.Context, event entity.TaskEvent) error {
	var errs []error

	for _, t := range f.targets {
		err := t.Publisher.Publish(ctx, event)
		f.metrics.ObservePublish(t.Name, err)
		if err != nil {
			f.logger.Debug("target publish failed", zap.String("target", t.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrPublishFailed, errors.Join(errs...))
	}
	return nil
}

// Close closes all underlying publishers.
func (f *Fanout) Close() error {
	var errs []error

	for _, t := range f.targets {
		if err := t.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s publisher: %w", t.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Names lists the configured target names.
func (f *Fanout) Names() []string {
	names := make([]string, 0, len(f.targets))
	for _, t := range f.targets {
		names = append(names, t.Name)
	}
	return names
}
