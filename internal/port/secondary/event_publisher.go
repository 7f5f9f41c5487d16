package secondary

import (
	"context"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// TaskEventPublisher defines the secondary port for delivering task events
// to an external destination (e.g., Kafka, webhook).
type TaskEventPublisher interface {
	// Publish sends the event to the destination.
	Publish(ctx context.Context, event entity.TaskEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
