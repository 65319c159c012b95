package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// Board defaults.
const (
	DefaultBoardTitle = "Shadowed Realms Sprint Board"
	DefaultLinkLimit  = 10
	boardFallbackName = "Sprint Board"
)

// BoardOptions controls a board setup run.
type BoardOptions struct {
	Title     string
	LinkLimit int
	// Pacer spaces out item links. Defaults to half a second between links.
	Pacer    *Pacer
	Progress func(ItemResult)
}

// BoardResult is the outcome of a board setup run.
type BoardResult struct {
	Project *driven.Project
	// Reused is true when creation failed and an existing board was found.
	Reused bool
	Links  Summary
}

// BoardService creates the Projects v2 sprint board and links issues to it.
type BoardService struct {
	board   driven.ProjectBoard
	tracker driven.IssueTracker
}

// NewBoardService creates a new BoardService.
func NewBoardService(board driven.ProjectBoard, tracker driven.IssueTracker) *BoardService {
	return &BoardService{board: board, tracker: tracker}
}

// Setup creates the board, falling back to an existing "Sprint Board"
// project when creation fails, and links the first LinkLimit open issues.
func (s *BoardService) Setup(ctx context.Context, opts BoardOptions) (*BoardResult, error) {
	title := opts.Title
	if title == "" {
		title = DefaultBoardTitle
	}
	limit := opts.LinkLimit
	if limit <= 0 {
		limit = DefaultLinkLimit
	}
	pacer := opts.Pacer
	if pacer == nil {
		pacer = NewPacer(1, 500*time.Millisecond)
	}

	repoID, ownerID, err := s.board.RepositoryIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up repository: %w", err)
	}

	result := &BoardResult{}
	project, err := s.board.CreateProject(ctx, ownerID, repoID, title)
	if err != nil {
		slog.Warn("create project failed, looking for an existing board", "error", err)
		project, err = s.board.FindProject(ctx, boardFallbackName)
		if err != nil {
			return nil, fmt.Errorf("find existing project: %w", err)
		}
		result.Reused = true
	}
	result.Project = project

	issues, err := s.tracker.ListIssues(ctx, "open")
	if err != nil {
		return nil, fmt.Errorf("list open issues: %w", err)
	}
	if len(issues) > limit {
		issues = issues[:limit]
	}

	for _, issue := range issues {
		r := ItemResult{Kind: model.ItemKindIssue, Key: fmt.Sprint(issue.Number), Title: issue.Title, RemoteID: issue.Number}
		if err := s.board.AddItem(ctx, project.ID, issue.NodeID); err != nil {
			r.Outcome, r.Err = OutcomeFailed, err
			slog.Error("link issue failed", "issue", issue.Number, "error", err)
		} else {
			r.Outcome = OutcomeCreated
		}
		result.Links.add(r)
		if opts.Progress != nil {
			opts.Progress(r)
		}
		if err := pacer.Done(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}
