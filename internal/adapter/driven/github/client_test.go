package github_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghAdapter "github.com/ericfisherdev/realmseed/internal/adapter/driven/github"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) (*ghAdapter.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/", "owner/repo")
	require.NoError(t, err)

	return client, server
}

// issueJSON is a helper struct for building GitHub API issue responses.
type issueJSON struct {
	Number      int            `json:"number"`
	NodeID      string         `json:"node_id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	State       string         `json:"state"`
	HTMLURL     string         `json:"html_url"`
	PullRequest map[string]any `json:"pull_request,omitempty"`
}

func writeStatus(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestNewClient_InvalidRepo(t *testing.T) {
	_, err := ghAdapter.NewClient("token", "no-slash")
	assert.ErrorContains(t, err, `invalid repo name "no-slash"`)
}

func TestCreateIssue(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/owner/repo/issues", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(issueJSON{
			Number:  17,
			NodeID:  "I_kw17",
			Title:   got["title"].(string),
			State:   "open",
			HTMLURL: "https://github.com/owner/repo/issues/17",
		})
	})

	client, _ := newTestClient(t, handler)
	issue, err := client.CreateIssue(context.Background(), model.IssueSpec{
		Number: 5,
		Title:  "[ISSUE-0005] Download Git for Windows/Mac",
		Body:   "body",
		Labels: []string{"issue", "setup"},
	})

	require.NoError(t, err)
	assert.Equal(t, 17, issue.Number)
	assert.Equal(t, "I_kw17", issue.NodeID)
	assert.Equal(t, "https://github.com/owner/repo/issues/17", issue.URL)
	assert.Equal(t, "body", got["body"])
	assert.Equal(t, []any{"issue", "setup"}, got["labels"])
}

func TestCreateIssue_ValidationFailureIsNotDuplicate(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusUnprocessableEntity, `{"message":"Validation Failed"}`)
	})

	client, _ := newTestClient(t, handler)
	_, err := client.CreateIssue(context.Background(), model.IssueSpec{Title: "x"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, driven.ErrAlreadyExists)
}

func TestCreateLabel(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"created", http.StatusCreated, `{"name":"epic","color":"7057ff"}`, nil},
		{"already exists", http.StatusUnprocessableEntity, `{"message":"Validation Failed","errors":[{"resource":"Label","code":"already_exists","field":"name"}]}`, driven.ErrAlreadyExists},
		{"too many requests", http.StatusTooManyRequests, `{"message":"Slow down"}`, driven.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/owner/repo/labels", r.URL.Path)
				json.NewDecoder(r.Body).Decode(&got)
				writeStatus(w, tt.status, tt.body)
			})

			client, _ := newTestClient(t, handler)
			err := client.CreateLabel(context.Background(), model.Label{Name: "epic", Color: "7057ff", Description: "Epic level work"})

			assert.Equal(t, "7057ff", got["color"])
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateLabel_Forbidden(t *testing.T) {
	tests := []struct {
		name        string
		remaining   string
		body        string
		rateLimited bool
	}{
		{"missing permission", "4999", `{"message":"Resource not accessible by personal access token"}`, false},
		{"primary rate limit", "0", `{"message":"API rate limit exceeded for user ID 1."}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Limit", "5000")
				w.Header().Set("X-RateLimit-Remaining", tt.remaining)
				w.Header().Set("X-RateLimit-Reset", fmt.Sprint(time.Now().Add(time.Hour).Unix()))
				writeStatus(w, http.StatusForbidden, tt.body)
			})

			client, _ := newTestClient(t, handler)
			err := client.CreateLabel(context.Background(), model.Label{Name: "epic", Color: "7057ff"})

			require.Error(t, err)
			assert.Equal(t, tt.rateLimited, errors.Is(err, driven.ErrRateLimited))
			assert.NotErrorIs(t, err, driven.ErrAlreadyExists)
		})
	}
}

func TestCreateMilestone(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/milestones", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&got)
		writeStatus(w, http.StatusCreated, `{"number":4,"title":"Sprint 1"}`)
	})

	client, _ := newTestClient(t, handler)
	number, err := client.CreateMilestone(context.Background(), model.Milestone{
		Title:       "Sprint 1",
		Description: "Issues 1-100",
		DueOn:       time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, number)
	assert.Equal(t, "2025-11-09T00:00:00Z", got["due_on"])
	assert.Equal(t, "open", got["state"])
}

func TestCreateMilestone_NoDueDate(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		writeStatus(w, http.StatusCreated, `{"number":1}`)
	})

	client, _ := newTestClient(t, handler)
	_, err := client.CreateMilestone(context.Background(), model.Milestone{Title: "EPIC-001: Core"})

	require.NoError(t, err)
	assert.NotContains(t, got, "due_on")
}

func TestGetIssue_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, `{"message":"Not Found"}`)
	})

	client, _ := newTestClient(t, handler)
	_, err := client.GetIssue(context.Background(), 99)

	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestUpdateIssueBody(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/repos/owner/repo/issues/3", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&got)
		writeStatus(w, http.StatusOK, `{"number":3}`)
	})

	client, _ := newTestClient(t, handler)
	err := client.UpdateIssueBody(context.Background(), 3, "new body")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"body": "new body"}, got)
}

func TestListIssues_PaginatesAndDropsPullRequests(t *testing.T) {
	var pages []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		pages = append(pages, r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")

		if page := r.URL.Query().Get("page"); page == "" || page == "1" {
			w.Header().Set("Link", fmt.Sprintf(`<%s?state=all&page=2>; rel="next"`, "http://"+r.Host+r.URL.Path))
			json.NewEncoder(w).Encode([]issueJSON{
				{Number: 1, Title: "[ISSUE-0001] Download Unity Hub from unity.com", State: "open"},
				{Number: 2, Title: "Bump deps", State: "open", PullRequest: map[string]any{"url": "x"}},
			})
			return
		}
		json.NewEncoder(w).Encode([]issueJSON{
			{Number: 3, Title: "[ISSUE-0002] Install Unity 2024.3 LTS", State: "closed"},
		})
	})

	client, _ := newTestClient(t, handler)
	issues, err := client.ListIssues(context.Background(), "all")

	require.NoError(t, err)
	assert.Equal(t, []string{"", "2"}, pages)
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Number)
	assert.Equal(t, 3, issues[1].Number)
	n, ok := issues[1].CatalogNumber()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestListIssues_Empty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, `[]`)
	})

	client, _ := newTestClient(t, handler)
	issues, err := client.ListIssues(context.Background(), "open")

	require.NoError(t, err)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}
