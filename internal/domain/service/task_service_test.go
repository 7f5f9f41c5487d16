package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

func TestTaskService_ListTasks(t *testing.T) {
	stored := []*entity.Task{
		{ID: 1, Title: "Test task", Description: "Test desc", Status: entity.TaskStatusInProgress, UserID: 12},
	}

	tests := []struct {
		name    string
		filter  entity.TaskFilter
		listRes []*entity.Task
		listErr error
		wantRes []*entity.Task
		wantErr error
	}{
		{
			name:    "returns store result unchanged",
			filter:  entity.TaskFilter{Status: entity.TaskStatusInProgress, Search: "Some search query"},
			listRes: stored,
			wantRes: stored,
		},
		{
			name:    "empty filter is forwarded",
			filter:  entity.TaskFilter{},
			listRes: []*entity.Task{},
			wantRes: []*entity.Task{},
		},
		{
			name:    "store error propagates unchanged",
			filter:  entity.TaskFilter{Search: "x"},
			listErr: errors.New("connection reset"),
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{
				listFunc: func(_ context.Context, _ entity.TaskFilter, _ entity.User) ([]*entity.Task, error) {
					return tt.listRes, tt.listErr
				},
			}
			svc := NewTaskService(store, &mockPublisher{}, zap.NewNop())

			if len(store.listCalls) != 0 {
				t.Fatal("expected store.List not to be called before ListTasks")
			}

			got, err := svc.ListTasks(context.Background(), tt.filter, testUser())

			if tt.wantErr != nil {
				if err == nil || err.Error() != tt.wantErr.Error() {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.wantRes) {
				t.Fatalf("expected %v, got %v", tt.wantRes, got)
			}

			if len(store.listCalls) != 1 {
				t.Fatalf("expected 1 list call, got %d", len(store.listCalls))
			}
			call := store.listCalls[0]
			if call.Filter != tt.filter {
				t.Fatalf("expected filter %+v, got %+v", tt.filter, call.Filter)
			}
			if call.User != testUser() {
				t.Fatalf("expected user %+v, got %+v", testUser(), call.User)
			}
		})
	}
}

func TestTaskService_ListTasks_returnsSameSlice(t *testing.T) {
	stored := []*entity.Task{{ID: 3}}
	store := &mockStore{
		listFunc: func(_ context.Context, _ entity.TaskFilter, _ entity.User) ([]*entity.Task, error) {
			return stored, nil
		},
	}
	svc := NewTaskService(store, nil, zap.NewNop())

	got, err := svc.ListTasks(context.Background(), entity.TaskFilter{}, testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != stored[0] {
		t.Fatal("expected the store's task pointer to be returned untouched")
	}
}

func TestTaskService_GetTaskByID(t *testing.T) {
	storeErr := errors.New("db unavailable")

	tests := []struct {
		name       string
		id         int64
		found      *entity.Task
		findErr    error
		wantTask   *entity.Task
		wantErr    error
		wantNotFnd bool
	}{
		{
			name:     "found task is returned",
			id:       1,
			found:    &entity.Task{Title: "Test task", Description: "Test desc"},
			wantTask: &entity.Task{Title: "Test task", Description: "Test desc"},
		},
		{
			name:       "empty result is not found",
			id:         1,
			found:      nil,
			wantNotFnd: true,
		},
		{
			name:    "store error propagates unchanged",
			id:      5,
			findErr: storeErr,
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{
				findOneFunc: func(_ context.Context, _ entity.TaskQuery) (*entity.Task, error) {
					return tt.found, tt.findErr
				},
			}
			svc := NewTaskService(store, &mockPublisher{}, zap.NewNop())

			got, err := svc.GetTaskByID(context.Background(), tt.id, testUser())

			switch {
			case tt.wantNotFnd:
				if !errors.Is(err, domain.ErrTaskNotFound) {
					t.Fatalf("expected ErrTaskNotFound, got %v", err)
				}
				var nf *domain.NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected *domain.NotFoundError, got %T", err)
				}
				if nf.TaskID != tt.id || nf.UserID != testUser().ID {
					t.Fatalf("unexpected not found context: %+v", nf)
				}
				if got != nil {
					t.Fatalf("expected nil task, got %+v", got)
				}
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Fatalf("expected error %v unchanged, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(got, tt.wantTask) {
					t.Fatalf("expected %+v, got %+v", tt.wantTask, got)
				}
			}

			want := entity.TaskQuery{Where: entity.TaskWhere{ID: tt.id, UserID: 12}}
			if len(store.findOneCalls) != 1 || store.findOneCalls[0] != want {
				t.Fatalf("expected FindOne(%+v), got %+v", want, store.findOneCalls)
			}
		})
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	input := entity.CreateTaskInput{Title: "Test title", Description: "Test desc"}
	created := &entity.Task{
		ID:          1,
		Title:       "Test task",
		Description: "Test desc",
		Status:      entity.TaskStatusOpen,
		UserID:      12,
	}

	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return created, nil
		},
	}
	pub := &mockPublisher{}
	svc := NewTaskService(store, pub, zap.NewNop())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if len(store.createCalls) != 0 {
		t.Fatal("expected store.Create not to be called before CreateTask")
	}

	got, err := svc.CreateTask(context.Background(), input, testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("expected store result %+v, got %+v", created, got)
	}

	if len(store.createCalls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(store.createCalls))
	}
	if store.createCalls[0].Input != input || store.createCalls[0].User != testUser() {
		t.Fatalf("unexpected create call: %+v", store.createCalls[0])
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.published))
	}
	want := entity.TaskEvent{
		Type:       entity.EventTaskCreated,
		TaskID:     1,
		UserID:     12,
		Title:      "Test task",
		Status:     entity.TaskStatusOpen,
		OccurredAt: fixed,
	}
	if pub.published[0] != want {
		t.Fatalf("expected event %+v, got %+v", want, pub.published[0])
	}
}

func TestTaskService_CreateTask_storeError(t *testing.T) {
	storeErr := errors.New("unique violation")
	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return nil, storeErr
		},
	}
	pub := &mockPublisher{}
	svc := NewTaskService(store, pub, zap.NewNop())

	_, err := svc.CreateTask(context.Background(), entity.CreateTaskInput{Title: "a", Description: "b"}, testUser())
	if err != storeErr {
		t.Fatalf("expected store error unchanged, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no event on failure, got %d", len(pub.published))
	}
}

func TestTaskService_CreateTask_nilResultPassesThrough(t *testing.T) {
	store := &mockStore{}
	pub := &mockPublisher{}
	svc := NewTaskService(store, pub, zap.NewNop())

	input := entity.CreateTaskInput{Title: "Test title", Description: "Test desc"}
	got, err := svc.CreateTask(context.Background(), input, testUser())
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
	}
	if len(store.createCalls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(store.createCalls))
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no event without a created task, got %d", len(pub.published))
	}
}

func TestTaskService_CreateTask_storeErrorWithResultPassesThrough(t *testing.T) {
	partial := &entity.Task{ID: 4}
	storeErr := errors.New("commit failed")
	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return partial, storeErr
		},
	}
	pub := &mockPublisher{}
	svc := NewTaskService(store, pub, zap.NewNop())

	got, err := svc.CreateTask(context.Background(), entity.CreateTaskInput{Title: "a", Description: "b"}, testUser())
	if got != partial || err != storeErr {
		t.Fatalf("expected (%v, %v), got (%v, %v)", partial, storeErr, got, err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no event on failure, got %d", len(pub.published))
	}
}

func TestTaskService_CreateTask_publishIsBounded(t *testing.T) {
	created := &entity.Task{ID: 3, UserID: 12, Status: entity.TaskStatusOpen}
	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return created, nil
		},
	}
	var publishErr error
	pub := &mockPublisher{
		publishFunc: func(ctx context.Context, _ entity.TaskEvent) error {
			<-ctx.Done()
			publishErr = ctx.Err()
			return publishErr
		},
	}
	svc := NewTaskService(store, pub, zap.NewNop())
	if svc.publishTimeout != domain.EventPublishTimeout {
		t.Fatalf("expected default publish timeout %v, got %v", domain.EventPublishTimeout, svc.publishTimeout)
	}
	svc.publishTimeout = 20 * time.Millisecond

	start := time.Now()
	got, err := svc.CreateTask(context.Background(), entity.CreateTaskInput{Title: "a", Description: "b"}, testUser())
	if err != nil || got != created {
		t.Fatalf("expected (%v, nil), got (%v, %v)", created, got, err)
	}
	if !errors.Is(publishErr, context.DeadlineExceeded) {
		t.Fatalf("expected publish context to hit its deadline, got %v", publishErr)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected create to return promptly, took %v", elapsed)
	}
}

func TestTaskService_CreateTask_publishFailureIsIgnored(t *testing.T) {
	created := &entity.Task{ID: 9, UserID: 12, Status: entity.TaskStatusOpen}
	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return created, nil
		},
	}
	pub := &mockPublisher{
		publishFunc: func(_ context.Context, _ entity.TaskEvent) error {
			return errors.New("broker down")
		},
	}
	svc := NewTaskService(store, pub, zap.NewNop())

	got, err := svc.CreateTask(context.Background(), entity.CreateTaskInput{Title: "a", Description: "b"}, testUser())
	if err != nil {
		t.Fatalf("expected publish failure to be swallowed, got %v", err)
	}
	if got != created {
		t.Fatalf("expected store result, got %+v", got)
	}
}

func TestTaskService_CreateTask_nilPublisher(t *testing.T) {
	created := &entity.Task{ID: 2}
	store := &mockStore{
		createFunc: func(_ context.Context, _ entity.CreateTaskInput, _ entity.User) (*entity.Task, error) {
			return created, nil
		},
	}
	svc := NewTaskService(store, nil, zap.NewNop())

	got, err := svc.CreateTask(context.Background(), entity.CreateTaskInput{}, testUser())
	if err != nil || got != created {
		t.Fatalf("expected (%v, nil), got (%v, %v)", created, got, err)
	}
}
