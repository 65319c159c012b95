// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// Outcome is what happened to a single seeded item.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
	OutcomePlanned Outcome = "planned"
)

// ItemResult reports the outcome for one label, milestone or issue.
type ItemResult struct {
	Kind     model.ItemKind
	Key      string
	Title    string
	Outcome  Outcome
	RemoteID int
	Reason   string
	Err      error
}

// Summary totals a seed run. Failures do not stop a run.
type Summary struct {
	Created int
	Skipped int
	Failed  int
	Planned int
	Results []ItemResult
}

func (s *Summary) add(r ItemResult) {
	switch r.Outcome {
	case OutcomeCreated:
		s.Created++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	case OutcomePlanned:
		s.Planned++
	}
	s.Results = append(s.Results, r)
}

// Merge folds another summary into s.
func (s *Summary) Merge(other Summary) {
	for _, r := range other.Results {
		s.add(r)
	}
}

// SeedOptions controls a seed run.
type SeedOptions struct {
	// DryRun reports the plan without making any GitHub request.
	DryRun bool
	// RemoteScan lists the repository's issues first and skips catalog
	// numbers already present. Only applies to issues.
	RemoteScan bool
	Pacer      *Pacer
	// Progress, when set, is called once per item as it completes.
	Progress func(ItemResult)
}

func (o SeedOptions) pacer() *Pacer {
	if o.Pacer == nil {
		return NewPacer(0, 0)
	}
	return o.Pacer
}

// SeedService creates labels, milestones and issues on GitHub, recording
// each created item in the local ledger so reruns skip it.
type SeedService struct {
	tracker driven.IssueTracker
	ledger  driven.SeedLedger
	now     func() time.Time
}

// NewSeedService creates a new SeedService with the required dependencies.
func NewSeedService(tracker driven.IssueTracker, ledger driven.SeedLedger) *SeedService {
	return &SeedService{
		tracker: tracker,
		ledger:  ledger,
		now:     time.Now,
	}
}

// SeedLabels creates the given labels. A label GitHub already has is skipped.
func (s *SeedService) SeedLabels(ctx context.Context, labels []model.Label, opts SeedOptions) (Summary, error) {
	items := make([]seedItem, 0, len(labels))
	for _, l := range labels {
		items = append(items, seedItem{
			kind:  model.ItemKindLabel,
			key:   l.Name,
			title: l.Name,
			create: func(ctx context.Context) (int, error) {
				return 0, s.tracker.CreateLabel(ctx, l)
			},
		})
	}
	return s.run(ctx, items, opts)
}

// SeedMilestones creates the given milestones. A milestone GitHub already
// has is skipped.
func (s *SeedService) SeedMilestones(ctx context.Context, milestones []model.Milestone, opts SeedOptions) (Summary, error) {
	items := make([]seedItem, 0, len(milestones))
	for _, m := range milestones {
		items = append(items, seedItem{
			kind:  model.ItemKindMilestone,
			key:   m.Title,
			title: m.Title,
			create: func(ctx context.Context) (int, error) {
				return s.tracker.CreateMilestone(ctx, m)
			},
		})
	}
	return s.run(ctx, items, opts)
}

// SeedIssues creates the given issues in order, skipping catalog numbers
// found in the ledger or, with RemoteScan, already on GitHub.
func (s *SeedService) SeedIssues(ctx context.Context, specs []model.IssueSpec, opts SeedOptions) (Summary, error) {
	var existing map[int]bool
	if opts.RemoteScan && !opts.DryRun {
		var err error
		existing, err = s.ExistingNumbers(ctx)
		if err != nil {
			return Summary{}, err
		}
		slog.Info("scanned repository", "existing_issues", len(existing))
	}

	items := make([]seedItem, 0, len(specs))
	for _, spec := range specs {
		items = append(items, seedItem{
			kind:   model.ItemKindIssue,
			key:    strconv.Itoa(spec.Number),
			title:  spec.Title,
			remote: existing[spec.Number],
			create: func(ctx context.Context) (int, error) {
				issue, err := s.tracker.CreateIssue(ctx, spec)
				if err != nil {
					return 0, err
				}
				return issue.Number, nil
			},
		})
	}
	return s.run(ctx, items, opts)
}

// ExistingNumbers returns the catalog numbers of every issue in the
// repository, open or closed.
func (s *SeedService) ExistingNumbers(ctx context.Context) (map[int]bool, error) {
	issues, err := s.tracker.ListIssues(ctx, "all")
	if err != nil {
		return nil, fmt.Errorf("scan existing issues: %w", err)
	}
	existing := make(map[int]bool, len(issues))
	for _, issue := range issues {
		if n, ok := issue.CatalogNumber(); ok {
			existing[n] = true
		}
	}
	return existing, nil
}

type seedItem struct {
	kind   model.ItemKind
	key    string
	title  string
	remote bool
	create func(ctx context.Context) (int, error)
}

func (s *SeedService) run(ctx context.Context, items []seedItem, opts SeedOptions) (Summary, error) {
	var summary Summary
	pacer := opts.pacer()

	report := func(r ItemResult) {
		summary.add(r)
		if opts.Progress != nil {
			opts.Progress(r)
		}
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := ItemResult{Kind: item.kind, Key: item.key, Title: item.title}

		recorded, err := s.ledger.Has(ctx, item.kind, item.key)
		if err != nil {
			return summary, fmt.Errorf("check ledger for %s %s: %w", item.kind, item.key, err)
		}
		switch {
		case recorded:
			result.Outcome, result.Reason = OutcomeSkipped, "in ledger"
			report(result)
			continue
		case item.remote:
			result.Outcome, result.Reason = OutcomeSkipped, "already on GitHub"
			report(result)
			continue
		case opts.DryRun:
			result.Outcome = OutcomePlanned
			report(result)
			continue
		}

		remoteID, err := item.create(ctx)
		switch {
		case err == nil:
			result.Outcome, result.RemoteID = OutcomeCreated, remoteID
			if err := s.record(ctx, item, remoteID); err != nil {
				return summary, err
			}
		case errors.Is(err, driven.ErrAlreadyExists):
			result.Outcome, result.Reason = OutcomeSkipped, "already exists"
			if err := s.record(ctx, item, 0); err != nil {
				return summary, err
			}
		default:
			result.Outcome, result.Err = OutcomeFailed, err
			slog.Error("create failed", "kind", item.kind, "key", item.key, "error", err)
		}
		report(result)

		if errors.Is(err, driven.ErrRateLimited) {
			if err := pacer.Throttled(ctx); err != nil {
				return summary, err
			}
			continue
		}
		if err := pacer.Done(ctx); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (s *SeedService) record(ctx context.Context, item seedItem, remoteID int) error {
	err := s.ledger.Record(ctx, model.LedgerEntry{
		Kind:      item.kind,
		Key:       item.key,
		RemoteID:  remoteID,
		Title:     item.title,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record %s %s: %w", item.kind, item.key, err)
	}
	return nil
}
