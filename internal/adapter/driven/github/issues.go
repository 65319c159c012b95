package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// CreateIssue opens a new issue with the given title, body and labels.
func (c *Client) CreateIssue(ctx context.Context, spec model.IssueSpec) (*model.TrackedIssue, error) {
	labels := append([]string(nil), spec.Labels...)
	req := &gh.IssueRequest{
		Title:  gh.Ptr(spec.Title),
		Body:   gh.Ptr(spec.Body),
		Labels: &labels,
	}

	issue, resp, err := c.gh.Issues.Create(ctx, c.owner, c.repo, req)
	if err != nil {
		return nil, fmt.Errorf("creating issue %q in %s: %w", spec.Title, c.FullName(), translateError(err, false))
	}
	logRateLimit(resp, "issues.create", 0, 1)

	tracked := mapIssue(issue)
	return &tracked, nil
}

// CreateLabel creates a repository label. GitHub answers 422 when the name
// is taken, which is returned as driven.ErrAlreadyExists.
func (c *Client) CreateLabel(ctx context.Context, label model.Label) error {
	_, resp, err := c.gh.Issues.CreateLabel(ctx, c.owner, c.repo, &gh.Label{
		Name:        gh.Ptr(label.Name),
		Color:       gh.Ptr(label.Color),
		Description: gh.Ptr(label.Description),
	})
	if err != nil {
		return fmt.Errorf("creating label %q in %s: %w", label.Name, c.FullName(), translateError(err, true))
	}
	logRateLimit(resp, "labels.create", 0, 1)
	return nil
}

// CreateMilestone creates a milestone and returns its number. A duplicate
// title is returned as driven.ErrAlreadyExists.
func (c *Client) CreateMilestone(ctx context.Context, m model.Milestone) (int, error) {
	req := &gh.Milestone{
		Title:       gh.Ptr(m.Title),
		Description: gh.Ptr(m.Description),
		State:       gh.Ptr("open"),
	}
	if !m.DueOn.IsZero() {
		req.DueOn = &gh.Timestamp{Time: m.DueOn}
	}

	milestone, resp, err := c.gh.Issues.CreateMilestone(ctx, c.owner, c.repo, req)
	if err != nil {
		return 0, fmt.Errorf("creating milestone %q in %s: %w", m.Title, c.FullName(), translateError(err, true))
	}
	logRateLimit(resp, "milestones.create", 0, 1)
	return milestone.GetNumber(), nil
}

// GetIssue fetches a single issue by its GitHub number.
func (c *Client) GetIssue(ctx context.Context, number int) (*model.TrackedIssue, error) {
	issue, resp, err := c.gh.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching issue %s#%d: %w", c.FullName(), number, translateError(err, false))
	}
	logRateLimit(resp, "issues.get", 0, 1)

	tracked := mapIssue(issue)
	return &tracked, nil
}

// UpdateIssueBody replaces the body of an existing issue.
func (c *Client) UpdateIssueBody(ctx context.Context, number int, body string) error {
	_, resp, err := c.gh.Issues.Edit(ctx, c.owner, c.repo, number, &gh.IssueRequest{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("updating issue %s#%d: %w", c.FullName(), number, translateError(err, false))
	}
	logRateLimit(resp, "issues.edit", 0, 1)
	return nil
}

// ListIssues returns the repository's issues in the given state, oldest
// first. Pull requests, which the issues endpoint also returns, are dropped.
func (c *Client) ListIssues(ctx context.Context, state string) ([]model.TrackedIssue, error) {
	opts := &gh.IssueListByRepoOptions{
		State:     state,
		Sort:      "created",
		Direction: "asc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var all []model.TrackedIssue

	for {
		issues, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issues for %s (page %d): %w", c.FullName(), opts.ListOptions.Page, translateError(err, false))
		}

		logRateLimit(resp, c.FullName(), opts.ListOptions.Page, len(issues))

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			all = append(all, mapIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	if all == nil {
		all = []model.TrackedIssue{}
	}

	return all, nil
}

func mapIssue(issue *gh.Issue) model.TrackedIssue {
	return model.TrackedIssue{
		Number: issue.GetNumber(),
		NodeID: issue.GetNodeID(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		State:  issue.GetState(),
		URL:    issue.GetHTMLURL(),
	}
}
