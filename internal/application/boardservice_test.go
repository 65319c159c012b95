package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

func TestBoardService_Setup(t *testing.T) {
	tracker := newTestTracker()
	for n := 1; n <= 12; n++ {
		tracker.seedIssue(n, "")
	}
	board := &testBoard{}
	pacer, _ := recordingPacer(1, 0)
	svc := NewBoardService(board, tracker)

	result, err := svc.Setup(context.Background(), BoardOptions{Pacer: pacer})

	require.NoError(t, err)
	assert.False(t, result.Reused)
	assert.Equal(t, "PVT_new", result.Project.ID)
	assert.Equal(t, []string{DefaultBoardTitle}, board.created)
	assert.Equal(t, "U_owner", board.ownerID)
	assert.Equal(t, DefaultLinkLimit, result.Links.Created)
	assert.Equal(t, "PVT_new:I_1", board.linked[0])
}

func TestBoardService_FallsBackToExisting(t *testing.T) {
	tracker := newTestTracker()
	tracker.seedIssue(1, "")
	board := &testBoard{
		createErr: errors.New("forbidden"),
		existing:  &driven.Project{ID: "PVT_old", Title: "Shadowed Realms Sprint Board"},
	}
	pacer, _ := recordingPacer(1, 0)
	svc := NewBoardService(board, tracker)

	result, err := svc.Setup(context.Background(), BoardOptions{LinkLimit: 5, Pacer: pacer})

	require.NoError(t, err)
	assert.True(t, result.Reused)
	assert.Equal(t, "PVT_old", result.Project.ID)
	assert.Equal(t, []string{"PVT_old:I_1"}, board.linked)
}

func TestBoardService_NoBoardAvailable(t *testing.T) {
	board := &testBoard{createErr: errors.New("forbidden")}
	svc := NewBoardService(board, newTestTracker())

	_, err := svc.Setup(context.Background(), BoardOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrNotFound)
}
