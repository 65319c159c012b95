package render

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// DefaultScheduleLimit is how many sprints the schedule page shows.
const DefaultScheduleLimit = 20

// ScheduleView holds presentation-ready data for the sprint schedule page.
type ScheduleView struct {
	Organization string
	Project      string
	Repository   string
	Capacity     string
	TotalSprints int
	TotalWeeks   int
	TotalHours   string
	TotalIssues  int
	TotalTasks   int
	Sprints      []SprintCardView
}

// SprintCardView holds presentation-ready data for one sprint card.
type SprintCardView struct {
	Number     int
	Week       int
	IssueRange string
	TasksRange string
	Hours      string
	IssueCount int
	Velocity   string
	Progress   string
	EpicTags   []string
}

// NewScheduleView converts a report into the schedule view, keeping the
// first limit sprints. A non-positive limit keeps them all.
func NewScheduleView(report model.SprintReport, limit int) ScheduleView {
	sprints := report.Sprints
	if limit > 0 && len(sprints) > limit {
		sprints = sprints[:limit]
	}

	v := ScheduleView{
		Organization: report.Organization,
		Project:      report.Project,
		Repository:   report.Repository,
		Capacity:     capacityLabel(report.SprintDuration),
		TotalSprints: report.TotalSprints,
		TotalWeeks:   report.TotalWeeks,
		TotalHours:   fmt.Sprintf("%.0f", report.TotalHours),
		TotalIssues:  report.TotalIssues,
		TotalTasks:   report.TotalTasks,
		Sprints:      make([]SprintCardView, 0, len(sprints)),
	}

	for _, s := range sprints {
		tags := make([]string, 0, len(s.Epics))
		for _, epic := range s.Epics {
			id, _, _ := strings.Cut(epic, ":")
			tags = append(tags, id)
		}
		v.Sprints = append(v.Sprints, SprintCardView{
			Number:     s.SprintNumber,
			Week:       s.Week,
			IssueRange: s.IssueRange,
			TasksRange: s.TasksRange,
			Hours:      fmt.Sprintf("%.1f", s.Hours),
			IssueCount: s.IssueCount,
			Velocity:   fmt.Sprintf("%.1f", s.Velocity),
			Progress:   fmt.Sprintf("%.1f", s.CompletionPercentage),
			EpicTags:   tags,
		})
	}
	return v
}

// capacityLabel turns "1 week (20 hours)" into "20 Hours".
func capacityLabel(duration string) string {
	_, rest, ok := strings.Cut(duration, "(")
	if !ok {
		return duration
	}
	hours := strings.TrimSuffix(strings.TrimSpace(rest), ")")
	return strings.Replace(hours, "hours", "Hours", 1)
}
