package entity

import (
	"fmt"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts raw into a TaskStatus. Only the exact
// upper-case names are accepted.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown task status %q", raw)
	}
	return s, nil
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	UserID      int64
	CreatedAt   time.Time
}

// OwnedBy reports whether the task belongs to the given user.
func (t *Task) OwnedBy(user User) bool {
	return t.UserID == user.ID
}

// CreateTaskInput is the payload accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// TaskQuery selects a single task by its compound key.
type TaskQuery struct {
	Where TaskWhere
}

// TaskWhere holds the id and owning user a lookup must match.
type TaskWhere struct {
	ID     int64
	UserID int64
}
