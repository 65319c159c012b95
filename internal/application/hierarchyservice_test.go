package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/realmseed/internal/catalog"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

func TestSummarizeHierarchy(t *testing.T) {
	sum := SummarizeHierarchy(catalog.Hierarchy(), catalog.RealStories())

	require.Len(t, sum.Epics, 8)
	assert.Equal(t, EpicSummary{ID: "EPIC-001", Title: "Pre-Sprint 1: Ideation & Documentation", Issues: 100, Tasks: 300, Points: 300}, sum.Epics[0])
	assert.Equal(t, 16, sum.UserStories)
	assert.Equal(t, 1000, sum.Issues)
	assert.Equal(t, 1000, sum.Fragments)
	assert.Equal(t, 6, sum.RealStories)
}

func TestHierarchyService_Run(t *testing.T) {
	tracker := newTestTracker()
	for n := 1; n <= 15; n++ {
		tracker.seedIssue(n, "original body")
	}
	svc := NewHierarchyService(NewSeedService(tracker, newTestLedger()), tracker)
	pacer, slept := recordingPacer(1, 0)

	result, err := svc.Run(context.Background(), HierarchyOptions{AnnotateLimit: 10, AnnotatePacer: pacer})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Labels.Created)
	assert.Equal(t, 30, result.Milestones.Created)
	assert.Equal(t, 10, result.Annotated.Created)
	assert.Len(t, tracker.updates, 10)
	assert.Empty(t, *slept, "zero delay never sleeps")

	body := tracker.updates[1]
	assert.True(t, strings.HasPrefix(body, "\n"+catalog.HierarchyMarker))
	assert.Contains(t, body, "Ancient Texts Fragment #1")
	assert.True(t, strings.HasSuffix(body, "original body"))
}

func TestHierarchyService_AnnotateSkipsAnnotated(t *testing.T) {
	tracker := newTestTracker()
	tracker.seedIssue(1, catalog.HierarchyMarker+"\nalready here")
	tracker.seedIssue(2, "plain")
	tracker.seedIssue(-5, "ideation issues sit outside the hierarchy")
	svc := NewHierarchyService(NewSeedService(tracker, newTestLedger()), tracker)
	pacer, _ := recordingPacer(1, 0)

	summary, err := svc.Annotate(context.Background(), HierarchyOptions{AnnotatePacer: pacer})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, tracker.updates, 2)
	assert.NotContains(t, tracker.updates, 1)
}

func TestHierarchyService_AnnotatePacesRerun(t *testing.T) {
	tracker := newTestTracker()
	for n := 1; n <= 25; n++ {
		tracker.seedIssue(n, catalog.HierarchyMarker+"\nalready here")
	}
	svc := NewHierarchyService(NewSeedService(tracker, newTestLedger()), tracker)
	pacer, slept := recordingPacer(1, time.Second)

	summary, err := svc.Annotate(context.Background(), HierarchyOptions{AnnotateLimit: 10, AnnotatePacer: pacer})

	require.NoError(t, err)
	assert.Zero(t, summary.Created)
	assert.Equal(t, 25, summary.Skipped)
	assert.Equal(t, 25, tracker.getCalls)
	assert.Len(t, *slept, 25, "every fetch is followed by a pause")
	assert.Empty(t, tracker.updates)
}

func TestHierarchyService_AnnotatePacesFailures(t *testing.T) {
	tracker := newTestTracker()
	tracker.seedIssue(1, "plain")
	gone := tracker.seedIssue(2, "plain")
	broken := tracker.seedIssue(3, "plain")
	tracker.getErr = map[int]error{
		gone.Number:   driven.ErrNotFound,
		broken.Number: errors.New("bad gateway"),
	}
	svc := NewHierarchyService(NewSeedService(tracker, newTestLedger()), tracker)
	pacer, slept := recordingPacer(1, time.Second)

	summary, err := svc.Annotate(context.Background(), HierarchyOptions{AnnotatePacer: pacer})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Results, 2, "a missing issue is not reported")
	assert.Len(t, *slept, 3)
}

func TestHierarchyService_DryRun(t *testing.T) {
	tracker := newTestTracker()
	tracker.seedIssue(1, "body")
	svc := NewHierarchyService(NewSeedService(tracker, newTestLedger()), tracker)

	result, err := svc.Run(context.Background(), HierarchyOptions{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Labels.Planned)
	assert.Equal(t, 30, result.Milestones.Planned)
	assert.Zero(t, tracker.creates)
	assert.Empty(t, tracker.updates)
	assert.Equal(t, 1000, result.Totals.Issues)
}
