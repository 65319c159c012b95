package catalog

import (
	"time"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

func due(date string) time.Time {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

var sprintMilestones = []model.Milestone{
	{Title: "Sprint 1: Foundation (Week 1-10)", Description: "Issues 1-100: Documentation, project setup, initial planning", DueOn: due("2025-11-09")},
	{Title: "Sprint 2: Core Systems (Week 11-20)", Description: "Issues 101-260: Movement, inventory, basic mechanics", DueOn: due("2025-01-18")},
	{Title: "Sprint 3: Combat Framework (Week 21-30)", Description: "Issues 261-420: Melee combat, magic system, abilities", DueOn: due("2025-03-29")},
	{Title: "Sprint 4: Environment (Week 31-40)", Description: "Issues 421-580: World building, weather, atmosphere", DueOn: due("2025-06-07")},
	{Title: "Sprint 5: Characters (Week 41-50)", Description: "Issues 581-640: Character customization, models", DueOn: due("2025-08-16")},
	{Title: "Sprint 6: UI/UX (Week 51-60)", Description: "Issues 641-760: Interface design, HUD, menus", DueOn: due("2025-10-25")},
	{Title: "Sprint 7: Progression (Week 61-70)", Description: "Issues 761-820: Character progression, skill trees", DueOn: due("2026-01-03")},
	{Title: "Sprint 8: Save System (Week 71-80)", Description: "Issues 821-900: Save/load, cloud saves, persistence", DueOn: due("2026-03-14")},
	{Title: "Sprint 9: Audio (Week 81-90)", Description: "Issues 901-960: Sound effects, music, audio mixing", DueOn: due("2026-05-23")},
	{Title: "Sprint 10: Polish & Launch (Week 91-103)", Description: "Issues 961-1000: Final polish, optimization, launch prep", DueOn: due("2026-08-29")},
}

// SprintMilestones returns the ten phase milestones in sprint order.
func SprintMilestones() []model.Milestone {
	return append([]model.Milestone(nil), sprintMilestones...)
}

// HierarchyMilestones returns a milestone per epic, then per user story, then
// per real story.
func HierarchyMilestones() []model.Milestone {
	var out []model.Milestone
	for _, epic := range hierarchy {
		out = append(out, model.Milestone{
			Title:       epic.MilestoneTitle(),
			Description: "Epic milestone containing user stories and issues",
		})
	}
	for _, epic := range hierarchy {
		for _, us := range epic.Stories {
			out = append(out, model.Milestone{
				Title:       us.MilestoneTitle(),
				Description: "User story in " + epic.ID + ". Unlocks " + us.UnlocksStory + ". Theme: " + us.MemoryTheme,
			})
		}
	}
	for _, rs := range realStories {
		out = append(out, model.Milestone{
			Title:       rs.MilestoneTitle(),
			Description: rs.Description + ". " + rs.UnlockedBy,
		})
	}
	return out
}
