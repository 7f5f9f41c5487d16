package entity

import (
	"strconv"
	"time"
)

// EventType names a task lifecycle event.
type EventType string

const (
	EventTaskCreated EventType = "task.created"
)

// TaskEvent is emitted to downstream consumers after a task changes.
type TaskEvent struct {
	Type       EventType  `json:"type"`
	TaskID     int64      `json:"task_id"`
	UserID     int64      `json:"user_id"`
	Title      string     `json:"title"`
	Status     TaskStatus `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewTaskCreatedEvent builds the event for a freshly created task.
func NewTaskCreatedEvent(t *Task, at time.Time) TaskEvent {
	return TaskEvent{
		Type:       EventTaskCreated,
		TaskID:     t.ID,
		UserID:     t.UserID,
		Title:      t.Title,
		Status:     t.Status,
		OccurredAt: at.UTC(),
	}
}

// Key returns the partitioning key for the event.
func (e TaskEvent) Key() string {
	return strconv.FormatInt(e.TaskID, 10)
}
