package driven

import (
	"context"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// IssueTracker defines the driven port for the GitHub REST operations the
// seeder needs. Implementations are bound to a single repository.
type IssueTracker interface {
	// CreateIssue opens a new issue and returns it as GitHub stored it.
	CreateIssue(ctx context.Context, spec model.IssueSpec) (*model.TrackedIssue, error)

	// CreateLabel creates a label. Returns ErrAlreadyExists on 422.
	CreateLabel(ctx context.Context, label model.Label) error

	// CreateMilestone creates a milestone and returns its number.
	// Returns ErrAlreadyExists on 422.
	CreateMilestone(ctx context.Context, milestone model.Milestone) (int, error)

	// GetIssue fetches a single issue by its GitHub number.
	// Returns ErrNotFound when the issue does not exist.
	GetIssue(ctx context.Context, number int) (*model.TrackedIssue, error)

	// UpdateIssueBody replaces the body of an existing issue.
	UpdateIssueBody(ctx context.Context, number int, body string) error

	// ListIssues returns issues in the given state ("open", "closed" or
	// "all"), excluding pull requests, following pagination.
	ListIssues(ctx context.Context, state string) ([]model.TrackedIssue, error)
}
