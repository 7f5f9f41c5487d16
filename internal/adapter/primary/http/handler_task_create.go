package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
)

// CreateTaskHandler handles POST /tasks requests.
type CreateTaskHandler struct {
	service primary.TaskService
	logger  *zap.Logger
}

// NewCreateTaskHandler creates a handler for task creation.
func NewCreateTaskHandler(service primary.TaskService, logger *zap.Logger) *CreateTaskHandler {
	return &CreateTaskHandler{
		service: service,
		logger:  logger.Named("create-task-handler"),
	}
}

// ServeHTTP processes the create task request.
func (h *CreateTaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHENTICATED", domain.ErrUnauthenticated.Error())
		return
	}

	var req CreateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	req.normalize()
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	task, err := h.service.CreateTask(r.Context(), req.toInput(), user)
	if err != nil {
		h.logger.Error("failed to create task", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toTaskResponse(task))
}
