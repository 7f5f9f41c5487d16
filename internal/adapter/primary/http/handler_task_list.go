package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
)

// ListTasksHandler handles GET /tasks requests.
type ListTasksHandler struct {
	service primary.TaskService
	logger  *zap.Logger
}

// NewListTasksHandler creates a handler for listing the caller's tasks.
func NewListTasksHandler(service primary.TaskService, logger *zap.Logger) *ListTasksHandler {
	return &ListTasksHandler{
		service: service,
		logger:  logger.Named("list-tasks-handler"),
	}
}

// ServeHTTP parses the status and search query parameters and lists tasks.
func (h *ListTasksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHENTICATED", domain.ErrUnauthenticated.Error())
		return
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), filter, user)
	if err != nil {
		h.logger.Error("failed to list tasks", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toTaskResponses(tasks))
}

func parseTaskFilter(r *http.Request) (entity.TaskFilter, error) {
	q := r.URL.Query()
	var filter entity.TaskFilter

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, err := entity.ParseTaskStatus(strings.ToUpper(raw))
		if err != nil {
			return entity.TaskFilter{}, errors.New("status must be one of OPEN, IN_PROGRESS, DONE")
		}
		filter.Status = status
	}

	if search := strings.TrimSpace(q.Get("search")); search != "" {
		if len(search) > domain.MaxSearchLength {
			return entity.TaskFilter{}, fmt.Errorf("search must be at most %d characters", domain.MaxSearchLength)
		}
		filter.Search = search
	}

	return filter, nil
}
