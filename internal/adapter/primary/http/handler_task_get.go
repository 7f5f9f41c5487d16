package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/valueobject"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
)

// GetTaskHandler handles GET /tasks/{id} requests.
type GetTaskHandler struct {
	service primary.TaskService
	logger  *zap.Logger
}

// NewGetTaskHandler creates a handler for fetching a single task.
func NewGetTaskHandler(service primary.TaskService, logger *zap.Logger) *GetTaskHandler {
	return &GetTaskHandler{
		service: service,
		logger:  logger.Named("get-task-handler"),
	}
}

// ServeHTTP returns the caller's task or 404.
func (h *GetTaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHENTICATED", domain.ErrUnauthenticated.Error())
		return
	}

	id, err := valueobject.NewTaskID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	task, err := h.service.GetTaskByID(r.Context(), id.Int64(), user)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "TASK_NOT_FOUND", err.Error())
			return
		}
		h.logger.Error("failed to get task",
			zap.Error(err),
			zap.Int64("task_id", id.Int64()),
			zap.Int64("user_id", user.ID),
		)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toTaskResponse(task))
}
