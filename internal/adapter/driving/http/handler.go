package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/realmseed/internal/adapter/driven/render"
	"github.com/ericfisherdev/realmseed/internal/application"
	"github.com/ericfisherdev/realmseed/internal/catalog"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// healthPath is probed by cmd/healthcheck.
const healthPath = "/api/v1/health"

// Handler is the HTTP driving adapter that serves the sprint schedule and
// the issue preview API.
type Handler struct {
	report        model.SprintReport
	scheduleLimit int
	logger        *slog.Logger
}

// NewHandler plans the sprints once at the given capacity. The catalog is
// static, so the report never changes for the life of the server.
func NewHandler(planner *application.SprintPlanner, capacity float64, scheduleLimit int, logger *slog.Logger) *Handler {
	sprints := planner.Allocate(capacity)
	return &Handler{
		report:        planner.Report(sprints, capacity),
		scheduleLimit: scheduleLimit,
		logger:        logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", templ.Handler(render.SchedulePage(render.NewScheduleView(h.report, h.scheduleLimit))))
	mux.HandleFunc("GET /api/v1/sprints", h.ListSprints)
	mux.HandleFunc("GET /api/v1/sprints/{number}", h.GetSprint)
	mux.HandleFunc("GET /api/v1/issues/{number}/preview", h.PreviewIssue)
	mux.HandleFunc("GET "+healthPath, h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// ListSprints returns the full allocation report.
func (h *Handler) ListSprints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.report)
}

// GetSprint returns a single sprint by its number.
func (h *Handler) GetSprint(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sprint number")
		return
	}

	for _, s := range h.report.Sprints {
		if s.SprintNumber == number {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeError(w, http.StatusNotFound, "sprint not found")
}

// PreviewIssue renders the body a catalog issue would be created with.
func (h *Handler) PreviewIssue(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid issue number")
		return
	}

	spec, ok := catalog.IssuePreview(number)
	if !ok {
		writeError(w, http.StatusNotFound, "issue not in catalog")
		return
	}

	h.logger.Debug("issue preview", "number", number)
	writeJSON(w, http.StatusOK, toIssuePreviewResponse(spec))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
