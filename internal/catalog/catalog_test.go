package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

func TestEffort(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 0.5},
		{50, 0.5},
		{51, 1.0},
		{341, 3.5},
		{640, 1.5},
		{700, 1.0},
		{800, 2.0},
		{1000, 0.5},
		{0, DefaultEffort},
		{1001, DefaultEffort},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Effort(tt.n), 1e-9, "issue %d", tt.n)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		n     int
		epic  string
		story string
	}{
		{1, "EPIC-001: Ideation & Documentation", "US-001: Documentation"},
		{51, "EPIC-001: Ideation & Documentation", "US-002: Project Structure"},
		{340, "EPIC-003: Combat Framework", "US-005: Melee Combat"},
		{600, "EPIC-005: Character System", "US-009: Customization"},
		{650, "EPIC-006: UI/UX Framework", "US-011: UI Design"},
		{740, "EPIC-006: UI/UX Framework", "US-012: HUD"},
		{800, "EPIC-005: Character System", "US-010: Progression"},
		{890, "EPIC-007: Save System", "US-014: Cloud Saves"},
		{1000, "EPIC-008: Audio & Polish", "US-016: Polish"},
	}
	for _, tt := range tests {
		epic, story := Classify(tt.n)
		assert.Equal(t, tt.epic, epic, "issue %d", tt.n)
		assert.Equal(t, tt.story, story, "issue %d", tt.n)
	}
}

func TestXPCoins(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		taskType string
		want     model.Reward
	}{
		{"first tier low", 80, "setup", model.Reward{XP: 25, Coins: 10}},
		{"first tier high", 81, "setup", model.Reward{XP: 50, Coins: 20}},
		{"model work pays half again", 161, "3d-modeling", model.Reward{XP: 100, Coins: 60}},
		{"combat tier", 301, "combat-programming", model.Reward{XP: 200, Coins: 80}},
		{"environment tier", 481, "terrain", model.Reward{XP: 150, Coins: 60}},
		{"ui tier high", 721, "ui-programming", model.Reward{XP: 150, Coins: 75}},
		{"system work pays 30 percent more", 850, "save-system", model.Reward{XP: 200, Coins: 130}},
		{"fallback tier", 950, "audio", model.Reward{XP: 150, Coins: 75}},
		{"asset truncates", 1, "Asset", model.Reward{XP: 25, Coins: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, XPCoins(tt.n, tt.taskType))
		})
	}
}

func TestXPCoins_TierBoundaries(t *testing.T) {
	for _, tier := range rewardTiers {
		assert.Equal(t, tier.Low, XPCoins(tier.Split, "plain"), "split %d", tier.Split)
		if tier.Split < tier.Ceiling {
			assert.Equal(t, tier.High, XPCoins(tier.Split+1, "plain"), "after split %d", tier.Split)
		}
	}
	assert.Equal(t, fallbackReward, XPCoins(901, "plain"))
}

func TestCheckRanges(t *testing.T) {
	findings := CheckRanges()

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarn, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "EPIC-005")
	assert.Contains(t, findings[0].Message, "581-640 then 761-820")
}

func TestCoverage(t *testing.T) {
	claims := []model.IssueRange{{Start: 1, End: 500}, {Start: 490, End: 900}}

	findings := coverage("test", claims)

	require.Len(t, findings, 2)
	assert.Equal(t, "overlap at 490-500 (2 claims)", findings[0].Message)
	assert.Equal(t, "gap at 901-1000", findings[1].Message)
}

func TestCheck(t *testing.T) {
	findings, err := Check()
	require.NoError(t, err)

	var messages []string
	for _, f := range findings {
		messages = append(messages, f.String())
	}
	joined := strings.Join(messages, "\n")

	assert.Contains(t, joined, "EPIC-005 is not contiguous")
	assert.Contains(t, joined, `"Sprint 2: Core Systems (Week 11-20)" is due 2025-01-18`)
	assert.Contains(t, joined, "complete and missing title 30 issues differently")
	assert.Contains(t, joined, "complete and remaining title 400 issues differently")
	assert.Contains(t, joined, "complete and safe title 60 issues differently")
	assert.NotContains(t, joined, "effort")
	assert.Len(t, findings, 5)
}

func TestCompleteSprint1(t *testing.T) {
	specs := CompleteSprint1()

	require.Len(t, specs, 1000)
	first := specs[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "[ISSUE-0001] Download Unity Hub from unity.com", first.Title)
	assert.Equal(t, []string{"issue", "micro-task", "xp-25", "coins-10", "sprint-1", "easy", "setup"}, first.Labels)
	assert.Contains(t, first.Body, "**Financial Impact**: $100 toward project value")
	assert.Contains(t, first.Body, "**Memory Fragment**: Unlocks progress toward Fragments 1-7")
	assert.Contains(t, first.Body, "This task contributes to: setup mastery path")

	assert.Equal(t, "[ISSUE-0011] Git repository task 11", specs[10].Title)
	assert.Equal(t, "[ISSUE-1000] Audio system task 1000", specs[999].Title)
	for i, s := range specs {
		assert.Equal(t, i+1, s.Number)
	}
}

func TestRemainingSprint1(t *testing.T) {
	specs := RemainingSprint1()

	require.Len(t, specs, 400)
	assert.Equal(t, 601, specs[0].Number)
	assert.Equal(t, "[ISSUE-0601] Create weather system component 1", specs[0].Title)
	assert.Equal(t, 1000, specs[399].Number)
	assert.Equal(t, "[ISSUE-1000] Final polish task 10", specs[399].Title)

	s620 := specs[19]
	require.Equal(t, 620, s620.Number)
	assert.Contains(t, s620.Body, "- lighting_setup_10.unity scene with configured lights")
	assert.Contains(t, s620.Body, "Similar assets sell for $250 to $500")
	assert.Contains(t, s620.Body, "Task difficulty: Advanced")
	assert.Contains(t, s620.Body, "Time Estimate: 90 minutes")
	assert.Contains(t, s620.Body, "Sprint Progress: 5.0% of remaining Sprint 1")
	assert.Contains(t, s620.Body, "Overall Progress: 62.0% of Sprint 1 complete")
	assert.Contains(t, s620.Body, "Requires: Issues 610 to 619 completed")
	assert.Equal(t, []string{"issue", "sprint-1", "xp-250", "coins-125", "lighting", "deliverable-required"}, s620.Labels)

	ui := specs[44]
	require.Equal(t, 645, ui.Number)
	assert.Contains(t, ui.Body, "element 5 contributes")
	assert.Contains(t, ui.Body, "**Epic**: EPIC-008: UI/UX Framework")
}

func TestMissingIssues(t *testing.T) {
	specs := MissingIssues()

	require.Len(t, specs, 30)
	s := specs[4]
	assert.Equal(t, 575, s.Number)
	assert.Equal(t, "[ISSUE-0575] Create atmospheric effect 5", s.Title)
	assert.Contains(t, s.Body, "Sprint Progress: 16.7% of atmospheric effects")
	assert.Contains(t, s.Body, "Direct Revenue Impact: $850")
	assert.Contains(t, s.Labels, "environment-system")
}

func TestSafeSprint1(t *testing.T) {
	specs, err := SafeSprint1()
	require.NoError(t, err)

	require.Len(t, specs, 70)
	readme := specs[16]
	assert.Equal(t, "[ISSUE-0017] Create README.md", readme.Title)
	assert.Equal(t, model.Reward{XP: 100, Coins: 40}, readme.Reward)
	assert.Equal(t, []string{"issue", "micro-task", "xp-100", "coins-40", "sprint-1", "documentation", "medium"}, readme.Labels)
	assert.NotContains(t, readme.Body, "Financial Impact")
	assert.Contains(t, readme.Body, "*Part of the Shadowed Realms RPG development journey*")
	assert.Equal(t, 170, specs[69].Number)
}

func TestIdeation(t *testing.T) {
	specs, err := Ideation()
	require.NoError(t, err)

	require.Len(t, specs, 100)
	assert.Equal(t, -100, specs[0].Number)
	assert.Equal(t, "[ISSUE--100] Brainstorm game concept and core pillars", specs[0].Title)
	assert.Contains(t, specs[0].Body, "## 🎯 Phase 0: Project Ideation")
	assert.Contains(t, specs[0].Body, "Foundation for 0 subsequent tasks")
	assert.Contains(t, specs[0].Body, "Reduces project risk by 10%")

	last := specs[99]
	assert.Equal(t, -1, last.Number)
	assert.Contains(t, last.Body, "Phase 0.9: Business & Legal")
	assert.Contains(t, last.Body, "Foundation for 99 subsequent tasks")
	assert.Contains(t, last.Body, "Reduces project risk by 11%")

	totals := RewardTotals(specs)
	assert.Equal(t, 22275, totals.XP)
	assert.Equal(t, 11125, totals.Coins)
}

func TestAnnotate(t *testing.T) {
	body, ok := Annotate(1, "original body")
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(body, "\n"+HierarchyMarker))
	assert.Contains(t, body, "- **Epic**: EPIC-001")
	assert.Contains(t, body, "- **User Story**: US-001")
	assert.Contains(t, body, "- **Memory Fragment**: Ancient Texts Fragment #1")
	assert.Contains(t, body, "unlocks **Memory Fragment #1**")
	assert.True(t, strings.HasSuffix(body, "\n\n---\n\noriginal body"))

	_, ok = Annotate(-5, "x")
	assert.False(t, ok)
}

func TestHierarchyMilestones(t *testing.T) {
	milestones := HierarchyMilestones()

	require.Len(t, milestones, 30)
	assert.Equal(t, "EPIC-001: Pre-Sprint 1: Ideation & Documentation", milestones[0].Title)
	assert.Equal(t, "US-001: As a developer, I need comprehensive documentation...", milestones[8].Title)
	assert.Equal(t, "User story in EPIC-001. Unlocks STORY-001. Theme: Ancient Texts", milestones[8].Description)
	assert.Equal(t, "STORY-001: The Fall of the Golden City", milestones[24].Title)
}

func TestSprintMilestones(t *testing.T) {
	milestones := SprintMilestones()

	require.Len(t, milestones, 10)
	assert.Equal(t, "2025-11-09", milestones[0].DueOn.Format("2006-01-02"))
	assert.Equal(t, "Sprint 10: Polish & Launch (Week 91-103)", milestones[9].Title)
}

func TestLookupSet(t *testing.T) {
	set, err := LookupSet("remaining")
	require.NoError(t, err)
	assert.Equal(t, 3, set.PaceEvery)
	assert.True(t, set.RemoteScan)

	_, err = LookupSet("bogus")
	assert.ErrorContains(t, err, `unknown issue set "bogus"`)
}

func TestIssuePreview(t *testing.T) {
	spec, ok := IssuePreview(575)
	require.True(t, ok)
	assert.Equal(t, "[ISSUE-0575] Create atmospheric effect 5", spec.Title)

	spec, ok = IssuePreview(5)
	require.True(t, ok)
	assert.Equal(t, "[ISSUE-0005] Download Git for Windows/Mac", spec.Title)

	_, ok = IssuePreview(5000)
	assert.False(t, ok)
}
