package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/observability"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// NewRouter creates a chi router with all application routes registered.
func NewRouter(
	taskService primary.TaskService,
	healthChecks []secondary.HealthChecker,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Instrument(metrics, logger))
	r.Use(Recover(logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Method(http.MethodGet, "/health", NewHealthHandler(healthChecks))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", observability.MetricsHandler(gatherer))
	}

	// Task endpoints are always scoped to the calling user.
	r.Route("/tasks", func(r chi.Router) {
		r.Use(RequireCaller)
		r.Method(http.MethodGet, "/", NewListTasksHandler(taskService, logger))
		r.Method(http.MethodPost, "/", NewCreateTaskHandler(taskService, logger))
		r.Method(http.MethodGet, "/{id}", NewGetTaskHandler(taskService, logger))
	})

	return r
}
