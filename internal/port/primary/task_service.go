package primary

import (
	"context"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// TaskService defines the primary port for task operations
// exposed to driving adapters (HTTP handlers, CLI, etc.).
// Every operation is scoped to the calling user.
type TaskService interface {
	// ListTasks returns the caller's tasks narrowed by filter.
	ListTasks(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error)

	// GetTaskByID returns the caller's task with the given id or a
	// *domain.NotFoundError.
	GetTaskByID(ctx context.Context, id int64, user entity.User) (*entity.Task, error)

	// CreateTask stores a new task owned by the caller.
	CreateTask(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error)
}
