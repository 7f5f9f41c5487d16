package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// TaskService scopes every task operation to the calling user and
// delegates persistence to the task store.
type TaskService struct {
	store     secondary.TaskStore
	publisher secondary.TaskEventPublisher
	logger    *zap.Logger
	now       func() time.Time

	publishTimeout time.Duration
}

// NewTaskService creates a TaskService with its dependencies injected.
func NewTaskService(
	store secondary.TaskStore,
	publisher secondary.TaskEventPublisher,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		store:     store,
		publisher: publisher,
		logger:    logger.Named("task-service"),
		now:       time.Now,

		publishTimeout: domain.EventPublishTimeout,
	}
}

// ListTasks returns whatever the store lists for filter and user.
// Store errors are returned as-is.
func (s *TaskService) ListTasks(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	return s.store.List(ctx, filter, user)
}

// GetTaskByID looks the task up by id and owning user. An empty store
// result becomes a *domain.NotFoundError.
func (s *TaskService) GetTaskByID(ctx context.Context, id int64, user entity.User) (*entity.Task, error) {
	task, err := s.store.FindOne(ctx, entity.TaskQuery{
		Where: entity.TaskWhere{ID: id, UserID: user.ID},
	})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &domain.NotFoundError{TaskID: id, UserID: user.ID}
	}
	return task, nil
}

// CreateTask hands input and user to the store and returns exactly what the
// store returned. A task.created event is published after a successful
// create; a publish failure is logged and does not fail the call.
func (s *TaskService) CreateTask(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	task, err := s.store.Create(ctx, input, user)
	if err != nil || task == nil {
		return task, err
	}

	s.logger.Info("task created",
		zap.Int64("task_id", task.ID),
		zap.Int64("user_id", user.ID),
	)

	s.publishCreated(ctx, task)

	return task, nil
}

func (s *TaskService) publishCreated(ctx context.Context, task *entity.Task) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	ev := entity.NewTaskCreatedEvent(task, s.now())
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("failed to publish task event",
			zap.Error(err),
			zap.String("event_type", string(ev.Type)),
			zap.Int64("task_id", task.ID),
		)
	}
}
