package secondary

import (
	"context"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// TaskStore defines the secondary port for persisting and querying tasks
// (e.g., PostgreSQL, SQLite, memory).
type TaskStore interface {
	// List returns the user's tasks matching filter, ordered by id.
	List(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error)

	// FindOne returns the task matching both id and user id.
	// A nil task with a nil error means no record matched.
	FindOne(ctx context.Context, query entity.TaskQuery) (*entity.Task, error)

	// Create persists a new OPEN task owned by user and returns it with its id set.
	Create(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error)
}
