package application

import (
	"fmt"
	"math"
	"sort"

	"github.com/ericfisherdev/realmseed/internal/catalog"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// DefaultSprintCap is the weekly capacity in hours.
const DefaultSprintCap = 20.0

// SprintPlanner packs catalog issues into weekly sprints by estimated effort.
type SprintPlanner struct {
	first, last int
	effort      func(int) float64
	classify    func(int) (epic, story string)
}

// NewSprintPlanner creates a planner over the full catalog using the
// catalog's effort estimates.
func NewSprintPlanner() *SprintPlanner {
	return &SprintPlanner{
		first:    catalog.FirstIssue,
		last:     catalog.LastIssue,
		effort:   catalog.Effort,
		classify: catalog.Classify,
	}
}

// Allocate walks the issues in order and closes a sprint whenever the next
// issue would push it past capacity. A single issue larger than capacity
// gets a sprint to itself.
func (p *SprintPlanner) Allocate(capacity float64) []model.Sprint {
	var sprints []model.Sprint
	current := model.Sprint{Number: 1, Week: 1}

	for n := p.first; n <= p.last; n++ {
		effort := p.effort(n)
		if len(current.Issues) > 0 && current.Hours+effort > capacity {
			sprints = append(sprints, current)
			next := len(sprints) + 1
			current = model.Sprint{Number: next, Week: next}
		}
		current.Issues = append(current.Issues, n)
		current.Hours += effort
	}
	if len(current.Issues) > 0 {
		sprints = append(sprints, current)
	}
	return sprints
}

// Report builds the allocation report for the given sprints.
func (p *SprintPlanner) Report(sprints []model.Sprint, capacity float64) model.SprintReport {
	report := model.SprintReport{
		Organization:   catalog.Organization,
		Project:        catalog.ProjectName,
		Repository:     catalog.Repository,
		Methodology:    "Agile Scrum",
		SprintDuration: fmt.Sprintf("1 week (%s hours)", formatHours(capacity)),
		TotalSprints:   len(sprints),
		TotalWeeks:     len(sprints),
		Sprints:        make([]model.SprintSummary, 0, len(sprints)),
	}

	for _, s := range sprints {
		report.TotalHours += s.Hours
		report.TotalIssues += len(s.Issues)
		report.Sprints = append(report.Sprints, p.summarize(s))
	}
	report.TotalHours = round1(report.TotalHours)
	report.TotalTasks = report.TotalIssues * catalog.TasksPerIssue
	return report
}

func (p *SprintPlanner) summarize(s model.Sprint) model.SprintSummary {
	epics := map[string]bool{}
	stories := map[string]bool{}
	for _, n := range s.Issues {
		epic, story := p.classify(n)
		epics[epic] = true
		stories[story] = true
	}

	first, last := s.First(), s.Last()
	return model.SprintSummary{
		SprintNumber:         s.Number,
		Week:                 s.Week,
		Hours:                round1(s.Hours),
		IssueCount:           len(s.Issues),
		IssueRange:           fmt.Sprintf("%d-%d", first, last),
		TasksRange:           fmt.Sprintf("%d-%d", (first-1)*catalog.TasksPerIssue+1, last*catalog.TasksPerIssue),
		Epics:                sortedKeys(epics),
		UserStories:          sortedKeys(stories),
		Velocity:             float64(len(s.Issues)) / 5,
		CompletionPercentage: round1(float64(last) / float64(p.last) * 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatHours(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
