package driven

import "context"

// Project is a GitHub Projects (v2) board.
type Project struct {
	ID     string
	Number int
	Title  string
	URL    string
}

// ProjectBoard defines the driven port for the GraphQL project operations.
type ProjectBoard interface {
	// RepositoryIDs returns the node IDs of the repository and its owner.
	RepositoryIDs(ctx context.Context) (repoID, ownerID string, err error)

	// CreateProject creates a project owned by ownerID and linked to repoID.
	CreateProject(ctx context.Context, ownerID, repoID, title string) (*Project, error)

	// FindProject returns the first repository project whose title contains
	// substr. Returns ErrNotFound when no project matches.
	FindProject(ctx context.Context, substr string) (*Project, error)

	// AddItem links the issue or pull request with the given node ID to the project.
	AddItem(ctx context.Context, projectID, contentID string) error
}
