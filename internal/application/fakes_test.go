package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// testTracker implements driven.IssueTracker in memory.
type testTracker struct {
	mu         sync.Mutex
	issues     []model.TrackedIssue
	labels     map[string]bool
	milestones map[string]int
	// failFor maps an issue, label or milestone title to the error its
	// create returns.
	failFor  map[string]error
	creates  int
	updates  map[int]string
	listErr  error
	getErr   map[int]error
	getCalls int
}

var _ driven.IssueTracker = (*testTracker)(nil)

func newTestTracker() *testTracker {
	return &testTracker{
		labels:     map[string]bool{},
		milestones: map[string]int{},
		failFor:    map[string]error{},
		updates:    map[int]string{},
	}
}

func (t *testTracker) CreateIssue(_ context.Context, spec model.IssueSpec) (*model.TrackedIssue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.creates++
	if err := t.failFor[spec.Title]; err != nil {
		return nil, err
	}
	issue := model.TrackedIssue{
		Number: len(t.issues) + 1,
		NodeID: fmt.Sprintf("I_%d", len(t.issues)+1),
		Title:  spec.Title,
		Body:   spec.Body,
		State:  "open",
	}
	t.issues = append(t.issues, issue)
	return &issue, nil
}

func (t *testTracker) CreateLabel(_ context.Context, label model.Label) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.creates++
	if err := t.failFor[label.Name]; err != nil {
		return err
	}
	if t.labels[label.Name] {
		return driven.ErrAlreadyExists
	}
	t.labels[label.Name] = true
	return nil
}

func (t *testTracker) CreateMilestone(_ context.Context, m model.Milestone) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.creates++
	if err := t.failFor[m.Title]; err != nil {
		return 0, err
	}
	if _, ok := t.milestones[m.Title]; ok {
		return 0, driven.ErrAlreadyExists
	}
	number := len(t.milestones) + 1
	t.milestones[m.Title] = number
	return number, nil
}

func (t *testTracker) GetIssue(_ context.Context, number int) (*model.TrackedIssue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.getCalls++
	if err := t.getErr[number]; err != nil {
		return nil, err
	}
	for _, issue := range t.issues {
		if issue.Number == number {
			if body, ok := t.updates[number]; ok {
				issue.Body = body
			}
			return &issue, nil
		}
	}
	return nil, driven.ErrNotFound
}

func (t *testTracker) UpdateIssueBody(_ context.Context, number int, body string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updates[number] = body
	return nil
}

func (t *testTracker) ListIssues(_ context.Context, state string) ([]model.TrackedIssue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listErr != nil {
		return nil, t.listErr
	}
	var out []model.TrackedIssue
	for _, issue := range t.issues {
		if state == "all" || issue.State == state {
			out = append(out, issue)
		}
	}
	return out, nil
}

// seedIssue adds an existing issue with the given catalog number.
func (t *testTracker) seedIssue(catalogNumber int, body string) model.TrackedIssue {
	issue := model.TrackedIssue{
		Number: len(t.issues) + 1,
		NodeID: fmt.Sprintf("I_%d", len(t.issues)+1),
		Title:  model.IssueTitle(catalogNumber, "existing"),
		Body:   body,
		State:  "open",
	}
	t.issues = append(t.issues, issue)
	return issue
}

// testLedger implements driven.SeedLedger in memory.
type testLedger struct {
	entries map[string]model.LedgerEntry
	order   []string
}

var _ driven.SeedLedger = (*testLedger)(nil)

func newTestLedger() *testLedger {
	return &testLedger{entries: map[string]model.LedgerEntry{}}
}

func ledgerKey(kind model.ItemKind, key string) string { return string(kind) + "/" + key }

func (l *testLedger) Record(_ context.Context, e model.LedgerEntry) error {
	k := ledgerKey(e.Kind, e.Key)
	if _, ok := l.entries[k]; ok {
		return nil
	}
	l.entries[k] = e
	l.order = append(l.order, k)
	return nil
}

func (l *testLedger) Has(_ context.Context, kind model.ItemKind, key string) (bool, error) {
	_, ok := l.entries[ledgerKey(kind, key)]
	return ok, nil
}

func (l *testLedger) List(_ context.Context, kind model.ItemKind) ([]model.LedgerEntry, error) {
	var out []model.LedgerEntry
	for _, k := range l.order {
		if e, ok := l.entries[k]; ok && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *testLedger) Forget(_ context.Context, kind model.ItemKind, key string) error {
	delete(l.entries, ledgerKey(kind, key))
	return nil
}

// testBoard implements driven.ProjectBoard in memory.
type testBoard struct {
	createErr error
	findErr   error
	existing  *driven.Project
	created   []string
	linked    []string
	ownerID   string
}

var _ driven.ProjectBoard = (*testBoard)(nil)

func (b *testBoard) RepositoryIDs(context.Context) (string, string, error) {
	return "R_repo", "U_owner", nil
}

func (b *testBoard) CreateProject(_ context.Context, ownerID, _, title string) (*driven.Project, error) {
	b.ownerID = ownerID
	if b.createErr != nil {
		return nil, b.createErr
	}
	b.created = append(b.created, title)
	return &driven.Project{ID: "PVT_new", Number: 1, Title: title}, nil
}

func (b *testBoard) FindProject(context.Context, string) (*driven.Project, error) {
	if b.findErr != nil {
		return nil, b.findErr
	}
	if b.existing == nil {
		return nil, driven.ErrNotFound
	}
	return b.existing, nil
}

func (b *testBoard) AddItem(_ context.Context, projectID, contentID string) error {
	b.linked = append(b.linked, projectID+":"+contentID)
	return nil
}
