package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ProjectBoard = (*ProjectClient)(nil)

// projectSearchWindow is how many repository projects FindProject inspects.
const projectSearchWindow = 10

type projectNode struct {
	ID     githubv4.ID
	Number githubv4.Int
	Title  githubv4.String
	URL    githubv4.String
}

func (n projectNode) toProject() *driven.Project {
	return &driven.Project{
		ID:     fmt.Sprint(n.ID),
		Number: int(n.Number),
		Title:  string(n.Title),
		URL:    string(n.URL),
	}
}

// ProjectClient implements driven.ProjectBoard with the GitHub GraphQL API.
type ProjectClient struct {
	v4    *githubv4.Client
	owner string
	repo  string
}

// NewProjectClient creates a GraphQL client authenticated with token for
// the "owner/repo" repository.
func NewProjectClient(ctx context.Context, token, fullName string) (*ProjectClient, error) {
	owner, repo, err := splitRepo(fullName)
	if err != nil {
		return nil, err
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)
	return &ProjectClient{v4: githubv4.NewClient(httpClient), owner: owner, repo: repo}, nil
}

// NewProjectClientWithHTTPClient creates a ProjectClient that posts to
// graphqlURL. This constructor is intended for testing.
func NewProjectClientWithHTTPClient(httpClient *http.Client, graphqlURL, fullName string) (*ProjectClient, error) {
	owner, repo, err := splitRepo(fullName)
	if err != nil {
		return nil, err
	}
	return &ProjectClient{v4: githubv4.NewEnterpriseClient(graphqlURL, httpClient), owner: owner, repo: repo}, nil
}

func (c *ProjectClient) repoVars() map[string]any {
	return map[string]any{
		"owner": githubv4.String(c.owner),
		"name":  githubv4.String(c.repo),
	}
}

// RepositoryIDs returns the node IDs of the repository and of its owner.
func (c *ProjectClient) RepositoryIDs(ctx context.Context) (string, string, error) {
	var q struct {
		Repository struct {
			ID    githubv4.ID
			Owner struct {
				ID githubv4.ID
			}
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	if err := c.v4.Query(ctx, &q, c.repoVars()); err != nil {
		return "", "", fmt.Errorf("querying repository %s/%s: %w", c.owner, c.repo, err)
	}
	return fmt.Sprint(q.Repository.ID), fmt.Sprint(q.Repository.Owner.ID), nil
}

// CreateProject creates a Projects v2 board owned by ownerID and linked to
// repoID.
func (c *ProjectClient) CreateProject(ctx context.Context, ownerID, repoID, title string) (*driven.Project, error) {
	var m struct {
		CreateProjectV2 struct {
			ProjectV2 projectNode
		} `graphql:"createProjectV2(input: $input)"`
	}
	var repo githubv4.ID = repoID
	input := githubv4.CreateProjectV2Input{
		OwnerID:      githubv4.ID(ownerID),
		Title:        githubv4.String(title),
		RepositoryID: &repo,
	}
	if err := c.v4.Mutate(ctx, &m, input, nil); err != nil {
		return nil, fmt.Errorf("creating project %q: %w", title, err)
	}
	return m.CreateProjectV2.ProjectV2.toProject(), nil
}

// FindProject returns the first of the repository's projects whose title
// contains substr.
func (c *ProjectClient) FindProject(ctx context.Context, substr string) (*driven.Project, error) {
	var q struct {
		Repository struct {
			ProjectsV2 struct {
				Nodes []projectNode
			} `graphql:"projectsV2(first: $first)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := c.repoVars()
	vars["first"] = githubv4.Int(projectSearchWindow)
	if err := c.v4.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("listing projects for %s/%s: %w", c.owner, c.repo, err)
	}
	for _, node := range q.Repository.ProjectsV2.Nodes {
		if strings.Contains(string(node.Title), substr) {
			return node.toProject(), nil
		}
	}
	return nil, fmt.Errorf("project containing %q: %w", substr, driven.ErrNotFound)
}

// AddItem links the issue with node ID contentID to the project.
func (c *ProjectClient) AddItem(ctx context.Context, projectID, contentID string) error {
	var m struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID githubv4.ID
			}
		} `graphql:"addProjectV2ItemById(input: $input)"`
	}
	input := githubv4.AddProjectV2ItemByIdInput{
		ProjectID: githubv4.ID(projectID),
		ContentID: githubv4.ID(contentID),
	}
	if err := c.v4.Mutate(ctx, &m, input, nil); err != nil {
		return fmt.Errorf("adding item %s to project %s: %w", contentID, projectID, err)
	}
	return nil
}
