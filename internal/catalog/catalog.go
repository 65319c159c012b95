// Package catalog holds the static project tables for Shadowed Realms: the
// epic and user story hierarchy, per-issue effort and rewards, milestones,
// and the generators that expand them into issue specs.
package catalog

const (
	Organization = "michael-placeholder"
	Repository   = "shadowed-realms"
	ProjectName  = "Shadowed Realms RPG Development"

	// FirstIssue and LastIssue bound the numbered sprint backlog.
	FirstIssue = 1
	LastIssue  = 1000

	// TasksPerIssue is the checklist length the dashboard and sprint
	// report assume for every issue.
	TasksPerIssue = 4
)
