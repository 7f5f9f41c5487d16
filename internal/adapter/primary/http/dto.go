package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (r *CreateTaskRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateTaskRequest) validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidTask)
	}
	if len(r.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidTask, domain.MaxTitleLength)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidTask)
	}
	return nil
}

// toInput converts the request DTO to the domain payload.
func (r *CreateTaskRequest) toInput() entity.CreateTaskInput {
	return entity.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

func toTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
