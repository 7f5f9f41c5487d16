package service

import (
	"context"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// mockStore implements secondary.TaskStore for testing.
type mockStore struct {
	listFunc    func(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error)
	findOneFunc func(ctx context.Context, query entity.TaskQuery) (*entity.Task, error)
	createFunc  func(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error)

	listCalls    []listCall
	findOneCalls []entity.TaskQuery
	createCalls  []createCall
}

type listCall struct {
	Filter entity.TaskFilter
	User   entity.User
}

type createCall struct {
	Input entity.CreateTaskInput
	User  entity.User
}

func (m *mockStore) List(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	m.listCalls = append(m.listCalls, listCall{Filter: filter, User: user})
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, user)
	}
	return nil, nil
}

func (m *mockStore) FindOne(ctx context.Context, query entity.TaskQuery) (*entity.Task, error) {
	m.findOneCalls = append(m.findOneCalls, query)
	if m.findOneFunc != nil {
		return m.findOneFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockStore) Create(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	m.createCalls = append(m.createCalls, createCall{Input: input, User: user})
	if m.createFunc != nil {
		return m.createFunc(ctx, input, user)
	}
	return nil, nil
}

// mockPublisher implements secondary.TaskEventPublisher for testing.
type mockPublisher struct {
	publishFunc func(ctx context.Context, event entity.TaskEvent) error

	published []entity.TaskEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event entity.TaskEvent) error {
	m.published = append(m.published, event)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, event)
	}
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

// testUser returns the standard caller fixture.
func testUser() entity.User {
	return entity.User{ID: 12, Username: "Victor"}
}
