package render

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

func sampleReport(sprints int) model.SprintReport {
	r := model.SprintReport{
		Organization:   "Shadowed Realms Studio",
		Project:        "Shadowed Realms",
		Repository:     "owner/repo",
		Methodology:    "Agile Scrum",
		SprintDuration: "1 week (20 hours)",
		TotalSprints:   sprints,
		TotalWeeks:     sprints,
		TotalHours:     1965,
		TotalIssues:    1000,
		TotalTasks:     4000,
	}
	for i := 1; i <= sprints; i++ {
		r.Sprints = append(r.Sprints, model.SprintSummary{
			SprintNumber:         i,
			Week:                 i,
			Hours:                20,
			IssueCount:           40,
			IssueRange:           "1-40",
			TasksRange:           "1-160",
			Epics:                []string{"EPIC-001: Ideation & Documentation", "EPIC-002: Core Systems"},
			UserStories:          []string{"US-001: Documentation"},
			Velocity:             8,
			CompletionPercentage: 4,
		})
	}
	return r
}

func TestNewScheduleView(t *testing.T) {
	v := NewScheduleView(sampleReport(25), DefaultScheduleLimit)

	assert.Len(t, v.Sprints, 20)
	assert.Equal(t, 25, v.TotalSprints)
	assert.Equal(t, "1965", v.TotalHours)
	assert.Equal(t, "20 Hours", v.Capacity)

	card := v.Sprints[0]
	assert.Equal(t, "20.0", card.Hours)
	assert.Equal(t, "8.0", card.Velocity)
	assert.Equal(t, "4.0", card.Progress)
	assert.Equal(t, []string{"EPIC-001", "EPIC-002"}, card.EpicTags)
}

func TestNewScheduleView_NoLimit(t *testing.T) {
	v := NewScheduleView(sampleReport(25), 0)
	assert.Len(t, v.Sprints, 25)
}

func TestCapacityLabel(t *testing.T) {
	assert.Equal(t, "20 Hours", capacityLabel("1 week (20 hours)"))
	assert.Equal(t, "12.5 Hours", capacityLabel("1 week (12.5 hours)"))
	assert.Equal(t, "fortnight", capacityLabel("fortnight"))
}

func TestSchedulePage(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport(2)
	report.Repository = "owner/<repo>"

	require.NoError(t, SchedulePage(NewScheduleView(report, DefaultScheduleLimit)).Render(context.Background(), &buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Shadowed Realms - Time-Based Sprint System</title>")
	assert.Contains(t, html, ".sprint-card")
	assert.Contains(t, html, "owner/&lt;repo&gt;")
	assert.Contains(t, html, `<div class="sprint-number">Sprint 2</div>`)
	assert.Contains(t, html, `<span class="epic-tag">EPIC-002</span>`)
	assert.Contains(t, html, `<progress class="progress-bar" max="100" value="4.0"></progress>`)
	assert.Contains(t, html, `<div class="stat-value">4000</div><div class="stat-label">Total Tasks</div>`)
	assert.Equal(t, 2, strings.Count(html, `<div class="sprint-card">`))
	assert.True(t, strings.HasSuffix(html, "</body></html>"))
}

func TestSchedulePage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := SchedulePage(NewScheduleView(sampleReport(1), 0)).Render(ctx, &buf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sprint_allocation.json")

	require.NoError(t, WriteReport(path, sampleReport(1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"organization\": \"Shadowed Realms Studio\",")

	var got model.SprintReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got.TotalSprints)
	assert.Equal(t, "1-40", got.Sprints[0].IssueRange)
}

func TestWriteSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "sprint_schedule.html")

	require.NoError(t, WriteSchedule(context.Background(), path, sampleReport(3), 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `<div class="sprint-card">`))
}

func TestMarkdown(t *testing.T) {
	assert.Equal(t, "", Markdown(""))
	assert.Contains(t, Markdown("**bold**"), "<strong>bold</strong>")
	assert.Contains(t, Markdown("## 🏛️ Agile Hierarchy"), "<h2")
	assert.Contains(t, Markdown("- [x] done\n- [ ] todo"), "todo")
	assert.Contains(t, Markdown("| a | b |\n|---|---|\n| 1 | 2 |"), "<table>")
	assert.NotContains(t, Markdown(`<script>alert("xss")</script>`), "<script>")
}

func TestWriteReport_KeepsAmpersand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(path, sampleReport(1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ideation & Documentation")
}
