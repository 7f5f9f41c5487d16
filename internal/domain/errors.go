package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound indicates the requested task does not exist for the caller.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTask indicates the task payload failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrUnauthenticated indicates the request carried no usable caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrPublishFailed indicates a task event could not be delivered.
	ErrPublishFailed = errors.New("failed to publish task event")
)

// NotFoundError reports a single-task lookup that matched no record
// for the given id and owning user.
type NotFoundError struct {
	TaskID int64
	UserID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with id %d not found for user %d", e.TaskID, e.UserID)
}

// Unwrap lets errors.Is(err, ErrTaskNotFound) match.
func (e *NotFoundError) Unwrap() error {
	return ErrTaskNotFound
}
