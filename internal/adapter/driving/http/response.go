package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/realmseed/internal/adapter/driven/render"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// IssuePreviewResponse is a catalog issue as it would be created, with the
// body rendered to sanitized HTML.
type IssuePreviewResponse struct {
	Number   int      `json:"number"`
	Title    string   `json:"title"`
	Labels   []string `json:"labels"`
	XP       int      `json:"xp"`
	Coins    int      `json:"coins"`
	Body     string   `json:"body"`
	BodyHTML string   `json:"body_html"`
}

// toIssuePreviewResponse converts an IssueSpec to its JSON representation.
// Nil labels become an empty array.
func toIssuePreviewResponse(spec model.IssueSpec) IssuePreviewResponse {
	labels := spec.Labels
	if labels == nil {
		labels = []string{}
	}

	return IssuePreviewResponse{
		Number:   spec.Number,
		Title:    spec.Title,
		Labels:   labels,
		XP:       spec.Reward.XP,
		Coins:    spec.Reward.Coins,
		Body:     spec.Body,
		BodyHTML: render.Markdown(spec.Body),
	}
}
