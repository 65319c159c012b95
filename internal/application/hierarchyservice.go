package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericfisherdev/realmseed/internal/catalog"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// DefaultAnnotateLimit caps how many issues a hierarchy run annotates.
const DefaultAnnotateLimit = 10

// EpicSummary totals one epic of the hierarchy.
type EpicSummary struct {
	ID     string
	Title  string
	Issues int
	Tasks  int
	Points int
}

// HierarchySummary totals the whole hierarchy. Every issue unlocks one
// memory fragment, so Fragments equals Issues.
type HierarchySummary struct {
	Epics       []EpicSummary
	UserStories int
	Issues      int
	Tasks       int
	Points      int
	Fragments   int
	RealStories int
}

// SummarizeHierarchy computes per-epic and overall totals.
func SummarizeHierarchy(epics []model.Epic, realStories []model.RealStory) HierarchySummary {
	var sum HierarchySummary
	for _, e := range epics {
		es := EpicSummary{
			ID:     e.ID,
			Title:  e.Title,
			Issues: e.IssueCount(),
			Tasks:  e.TaskCount(),
			Points: e.StoryPoints(),
		}
		sum.Epics = append(sum.Epics, es)
		sum.UserStories += len(e.Stories)
		sum.Issues += es.Issues
		sum.Tasks += es.Tasks
		sum.Points += es.Points
	}
	sum.Fragments = sum.Issues
	sum.RealStories = len(realStories)
	return sum
}

// HierarchyOptions controls a hierarchy run.
type HierarchyOptions struct {
	AnnotateLimit int
	DryRun        bool
	Pacer         *Pacer
	// AnnotatePacer spaces out issue updates. Defaults to one second between
	// updates.
	AnnotatePacer *Pacer
	Progress      func(ItemResult)
}

// HierarchyResult is the outcome of a hierarchy run.
type HierarchyResult struct {
	Labels     Summary
	Milestones Summary
	Annotated  Summary
	Totals     HierarchySummary
}

// HierarchyService sets up the epic / user story / real story structure:
// labels, milestones, and a hierarchy section on existing issues.
type HierarchyService struct {
	seeder  *SeedService
	tracker driven.IssueTracker
}

// NewHierarchyService creates a new HierarchyService.
func NewHierarchyService(seeder *SeedService, tracker driven.IssueTracker) *HierarchyService {
	return &HierarchyService{seeder: seeder, tracker: tracker}
}

// Run creates the hierarchy labels and milestones, then annotates up to
// AnnotateLimit issues.
func (s *HierarchyService) Run(ctx context.Context, opts HierarchyOptions) (*HierarchyResult, error) {
	seedOpts := SeedOptions{DryRun: opts.DryRun, Pacer: opts.Pacer, Progress: opts.Progress}

	labels, err := s.seeder.SeedLabels(ctx, catalog.HierarchyLabels(), seedOpts)
	if err != nil {
		return nil, fmt.Errorf("seed hierarchy labels: %w", err)
	}
	milestones, err := s.seeder.SeedMilestones(ctx, catalog.HierarchyMilestones(), seedOpts)
	if err != nil {
		return nil, fmt.Errorf("seed hierarchy milestones: %w", err)
	}

	result := &HierarchyResult{
		Labels:     labels,
		Milestones: milestones,
		Totals:     SummarizeHierarchy(catalog.Hierarchy(), catalog.RealStories()),
	}
	if opts.DryRun {
		return result, nil
	}

	annotated, err := s.Annotate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Annotated = annotated
	return result, nil
}

// Annotate prepends the hierarchy section to existing issues in hierarchy
// order, stopping after AnnotateLimit updates. Issues that already carry the
// section are skipped without counting toward the limit. Every fetch is
// paced, including skips and failures.
func (s *HierarchyService) Annotate(ctx context.Context, opts HierarchyOptions) (Summary, error) {
	var summary Summary
	limit := opts.AnnotateLimit
	if limit <= 0 {
		limit = DefaultAnnotateLimit
	}
	pacer := opts.AnnotatePacer
	if pacer == nil {
		pacer = NewPacer(1, time.Second)
	}

	issues, err := s.tracker.ListIssues(ctx, "all")
	if err != nil {
		return summary, fmt.Errorf("list issues: %w", err)
	}
	byCatalog := make(map[int]model.TrackedIssue, len(issues))
	for _, issue := range issues {
		if n, ok := issue.CatalogNumber(); ok {
			byCatalog[n] = issue
		}
	}

	report := func(r ItemResult) {
		summary.add(r)
		if opts.Progress != nil {
			opts.Progress(r)
		}
	}

	for _, n := range hierarchyOrder() {
		if summary.Created >= limit {
			break
		}
		tracked, ok := byCatalog[n]
		if !ok {
			continue
		}
		result := ItemResult{Kind: model.ItemKindIssue, Key: fmt.Sprint(n), Title: tracked.Title, RemoteID: tracked.Number}

		s.annotateOne(ctx, n, tracked, &result)
		if result.Outcome != "" {
			report(result)
		}

		if err := pacer.Done(ctx); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// annotateOne fetches one issue and prepends the hierarchy section unless it
// is already there. It leaves result.Outcome empty when the issue has gone.
func (s *HierarchyService) annotateOne(ctx context.Context, n int, tracked model.TrackedIssue, result *ItemResult) {
	issue, err := s.tracker.GetIssue(ctx, tracked.Number)
	switch {
	case errors.Is(err, driven.ErrNotFound):
		return
	case err != nil:
		result.Outcome, result.Err = OutcomeFailed, err
		return
	case strings.Contains(issue.Body, catalog.HierarchyMarker):
		result.Outcome, result.Reason = OutcomeSkipped, "already annotated"
		return
	}

	body, _ := catalog.Annotate(n, issue.Body)
	if err := s.tracker.UpdateIssueBody(ctx, tracked.Number, body); err != nil {
		result.Outcome, result.Err = OutcomeFailed, err
		slog.Error("annotate issue failed", "issue", tracked.Number, "error", err)
		return
	}
	result.Outcome = OutcomeCreated
}

// hierarchyOrder lists catalog numbers epic by epic, story by story.
func hierarchyOrder() []int {
	var order []int
	for _, e := range catalog.Hierarchy() {
		for _, us := range e.Stories {
			for _, r := range us.Ranges {
				for n := r.Start; n <= r.End; n++ {
					order = append(order, n)
				}
			}
		}
	}
	return order
}
