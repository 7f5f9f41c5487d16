package valueobject

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskID is an immutable value object representing a task identifier.
type TaskID struct {
	value int64
}

// NewTaskID parses and validates a TaskID from its string form.
func NewTaskID(raw string) (TaskID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TaskID{}, fmt.Errorf("task ID must not be empty")
	}
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return TaskID{}, fmt.Errorf("task ID %q is not a number", trimmed)
	}
	if v <= 0 {
		return TaskID{}, fmt.Errorf("task ID must be positive")
	}
	return TaskID{value: v}, nil
}

// Int64 returns the numeric value of the TaskID.
func (t TaskID) Int64() int64 {
	return t.value
}

// String returns the string representation of the TaskID.
func (t TaskID) String() string {
	return strconv.FormatInt(t.value, 10)
}

// Equals checks equality with another TaskID.
func (t TaskID) Equals(other TaskID) bool {
	return t.value == other.value
}
