package catalog

import "github.com/ericfisherdev/realmseed/internal/domain/model"

func r(start, end int) model.IssueRange { return model.IssueRange{Start: start, End: end} }

var realStories = []model.RealStory{
	{ID: "STORY-001", Title: "The Fall of the Golden City", Description: "How the once-great capital fell to shadow corruption", UnlockedBy: "Completing all Core Systems user stories"},
	{ID: "STORY-002", Title: "The Last Guardian's Sacrifice", Description: "The tale of the guardian who sealed the ancient evil", UnlockedBy: "Completing all Combat Framework user stories"},
	{ID: "STORY-003", Title: "The Merchant's Dark Bargain", Description: "How greed opened the first portal to the shadow realm", UnlockedBy: "Completing all Environment System user stories"},
	{ID: "STORY-004", Title: "The Scholar's Forbidden Knowledge", Description: "Discovery of the ritual that could save or doom the realm", UnlockedBy: "Completing all UI/UX Framework user stories"},
	{ID: "STORY-005", Title: "The Knight's Redemption", Description: "A fallen knight's journey from darkness to light", UnlockedBy: "Completing all Character System user stories"},
	{ID: "STORY-006", Title: "The Shadow King's Origin", Description: "The truth about the realm's greatest threat", UnlockedBy: "Completing all Polish & Launch user stories"},
}

var hierarchy = []model.Epic{
	{ID: "EPIC-001", Title: "Pre-Sprint 1: Ideation & Documentation", Stories: []model.UserStory{
		{ID: "US-001", Title: "As a developer, I need comprehensive documentation", Ranges: []model.IssueRange{r(1, 50)}, TasksPerIssue: 3, StoryPoints: 150, UnlocksStory: "STORY-001", MemoryTheme: "Ancient Texts"},
		{ID: "US-002", Title: "As a team lead, I need project structure defined", Ranges: []model.IssueRange{r(51, 100)}, TasksPerIssue: 3, StoryPoints: 150, UnlocksStory: "STORY-001", MemoryTheme: "Architectural Plans"},
	}},
	{ID: "EPIC-002", Title: "Core Systems Implementation", Stories: []model.UserStory{
		{ID: "US-003", Title: "As a player, I need basic movement and controls", Ranges: []model.IssueRange{r(101, 180)}, TasksPerIssue: 4, StoryPoints: 320, UnlocksStory: "STORY-001", MemoryTheme: "Movement Rituals"},
		{ID: "US-004", Title: "As a player, I need inventory management", Ranges: []model.IssueRange{r(181, 260)}, TasksPerIssue: 4, StoryPoints: 320, UnlocksStory: "STORY-001", MemoryTheme: "Inventory Scrolls"},
	}},
	{ID: "EPIC-003", Title: "Combat Framework", Stories: []model.UserStory{
		{ID: "US-005", Title: "As a player, I need melee combat system", Ranges: []model.IssueRange{r(261, 340)}, TasksPerIssue: 5, StoryPoints: 400, UnlocksStory: "STORY-002", MemoryTheme: "Combat Techniques"},
		{ID: "US-006", Title: "As a player, I need magic and abilities", Ranges: []model.IssueRange{r(341, 420)}, TasksPerIssue: 5, StoryPoints: 400, UnlocksStory: "STORY-002", MemoryTheme: "Arcane Knowledge"},
	}},
	{ID: "EPIC-004", Title: "Environment System", Stories: []model.UserStory{
		{ID: "US-007", Title: "As a player, I need immersive environments", Ranges: []model.IssueRange{r(421, 500)}, TasksPerIssue: 4, StoryPoints: 320, UnlocksStory: "STORY-003", MemoryTheme: "World Maps"},
		{ID: "US-008", Title: "As a player, I need weather and atmosphere", Ranges: []model.IssueRange{r(501, 580)}, TasksPerIssue: 4, StoryPoints: 320, UnlocksStory: "STORY-003", MemoryTheme: "Weather Patterns"},
	}},
	{ID: "EPIC-005", Title: "Character System", Stories: []model.UserStory{
		{ID: "US-009", Title: "As a player, I need character customization", Ranges: []model.IssueRange{r(581, 640)}, TasksPerIssue: 3, StoryPoints: 180, UnlocksStory: "STORY-005", MemoryTheme: "Character Designs"},
		{ID: "US-010", Title: "As a player, I need progression system", Ranges: []model.IssueRange{r(761, 820)}, TasksPerIssue: 3, StoryPoints: 180, UnlocksStory: "STORY-005", MemoryTheme: "Skill Trees"},
	}},
	{ID: "EPIC-006", Title: "UI/UX Framework", Stories: []model.UserStory{
		{ID: "US-011", Title: "As a player, I need intuitive UI", Ranges: []model.IssueRange{r(641, 720)}, TasksPerIssue: 3, StoryPoints: 240, UnlocksStory: "STORY-004", MemoryTheme: "Interface Designs"},
		{ID: "US-012", Title: "As a player, I need HUD and feedback", Ranges: []model.IssueRange{r(721, 760)}, TasksPerIssue: 3, StoryPoints: 120, UnlocksStory: "STORY-004", MemoryTheme: "HUD Layouts"},
	}},
	{ID: "EPIC-007", Title: "Save System & Persistence", Stories: []model.UserStory{
		{ID: "US-013", Title: "As a player, I need save/load functionality", Ranges: []model.IssueRange{r(821, 880)}, TasksPerIssue: 4, StoryPoints: 240, UnlocksStory: "STORY-006", MemoryTheme: "Save Crystals"},
		{ID: "US-014", Title: "As a player, I need cloud saves", Ranges: []model.IssueRange{r(881, 900)}, TasksPerIssue: 4, StoryPoints: 80, UnlocksStory: "STORY-006", MemoryTheme: "Cloud Sync"},
	}},
	{ID: "EPIC-008", Title: "Audio & Polish", Stories: []model.UserStory{
		{ID: "US-015", Title: "As a player, I need immersive audio", Ranges: []model.IssueRange{r(901, 960)}, TasksPerIssue: 3, StoryPoints: 180, UnlocksStory: "STORY-006", MemoryTheme: "Sound Design"},
		{ID: "US-016", Title: "As a player, I need polished experience", Ranges: []model.IssueRange{r(961, 1000)}, TasksPerIssue: 3, StoryPoints: 120, UnlocksStory: "STORY-006", MemoryTheme: "Final Polish"},
	}},
}

var hierarchyLabels = []model.Label{
	{Name: "epic", Color: "7057ff", Description: "Epic level work"},
	{Name: "user-story", Color: "0e8a16", Description: "User story"},
	{Name: "task", Color: "d4c5f9", Description: "Individual task"},
	{Name: "memory-fragment", Color: "ffd700", Description: "Unlocks memory fragment"},
	{Name: "real-story", Color: "ff0000", Description: "Unlocks real story"},
}

// Hierarchy returns the epics in order. The returned slice is a copy and
// may be modified by the caller.
func Hierarchy() []model.Epic {
	out := make([]model.Epic, len(hierarchy))
	for i, e := range hierarchy {
		e.Stories = append([]model.UserStory(nil), e.Stories...)
		out[i] = e
	}
	return out
}

// RealStories returns the six lore stories in order.
func RealStories() []model.RealStory {
	return append([]model.RealStory(nil), realStories...)
}

// HierarchyLabels returns the labels used to tag hierarchy levels.
func HierarchyLabels() []model.Label {
	return append([]model.Label(nil), hierarchyLabels...)
}

// StoryFor returns the epic and user story that own catalog issue n.
func StoryFor(n int) (model.Epic, model.UserStory, bool) {
	for _, e := range hierarchy {
		for _, us := range e.Stories {
			if us.Contains(n) {
				return e, us, true
			}
		}
	}
	return model.Epic{}, model.UserStory{}, false
}
