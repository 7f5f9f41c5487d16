package memstore

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// Store implements secondary.TaskStore in process memory.
// Tasks are indexed by id and by owning user.
type Store struct {
	mu        sync.RWMutex
	tasksByID map[int64]*entity.Task
	byUser    map[int64][]int64
	counter   int64
	now       func() time.Time
	logger    *zap.Logger
}

// NewStore creates an empty in-memory task store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		tasksByID: make(map[int64]*entity.Task),
		byUser:    make(map[int64][]int64),
		now:       time.Now,
		logger:    logger.Named("memory-store"),
	}
}

var _ secondary.TaskStore = (*Store)(nil)

// List returns copies of the user's tasks matching filter in id order.
func (s *Store) List(_ context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[user.ID]
	out := make([]*entity.Task, 0, len(ids))
	for _, id := range ids {
		t := s.tasksByID[id]
		if filter.Matches(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// FindOne returns a copy of the task matching id and user, or nil.
func (s *Store) FindOne(_ context.Context, query entity.TaskQuery) (*entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasksByID[query.Where.ID]
	if !ok || !t.OwnedBy(entity.User{ID: query.Where.UserID}) {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

// Create stores a new OPEN task for user.
func (s *Store) Create(_ context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	t := &entity.Task{
		ID:          s.counter,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatusOpen,
		UserID:      user.ID,
		CreatedAt:   s.now().UTC(),
	}
	s.tasksByID[t.ID] = t
	s.byUser[user.ID] = append(s.byUser[user.ID], t.ID)

	s.logger.Debug("task stored", zap.Int64("task_id", t.ID), zap.Int64("user_id", user.ID))

	cp := *t
	return &cp, nil
}
