package http

import (
	"context"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// mockTaskService implements primary.TaskService for testing.
type mockTaskService struct {
	listFunc   func(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error)
	getFunc    func(ctx context.Context, id int64, user entity.User) (*entity.Task, error)
	createFunc func(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error)

	listCalls   []entity.TaskFilter
	getCalls    []int64
	createCalls []entity.CreateTaskInput
	lastUser    entity.User
}

var _ primary.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) ListTasks(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	m.listCalls = append(m.listCalls, filter)
	m.lastUser = user
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, user)
	}
	return nil, nil
}

func (m *mockTaskService) GetTaskByID(ctx context.Context, id int64, user entity.User) (*entity.Task, error) {
	m.getCalls = append(m.getCalls, id)
	m.lastUser = user
	if m.getFunc != nil {
		return m.getFunc(ctx, id, user)
	}
	return nil, nil
}

func (m *mockTaskService) CreateTask(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	m.createCalls = append(m.createCalls, input)
	m.lastUser = user
	if m.createFunc != nil {
		return m.createFunc(ctx, input, user)
	}
	return nil, nil
}

// mockHealthCheck is a test double for health checks.
type mockHealthCheck struct {
	name string
	err  error
}

func (m mockHealthCheck) Name() string {
	return m.name
}

func (m mockHealthCheck) Check(_ context.Context) error {
	return m.err
}

// Compile-time interface assertion
var _ secondary.HealthChecker = mockHealthCheck{}

func toHealthCheckers(checks []mockHealthCheck) []secondary.HealthChecker {
	if len(checks) == 0 {
		return nil
	}
	result := make([]secondary.HealthChecker, len(checks))
	for i, c := range checks {
		result[i] = c
	}
	return result
}
