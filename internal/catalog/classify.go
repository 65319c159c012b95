package catalog

// reportBand maps a slice of the backlog to the epic and user story labels
// shown in the sprint report. The bands are checked in order.
type reportBand struct {
	match func(n int) bool
	epic  string
	// split is the last issue of the first story; later issues belong to the second.
	split   int
	stories [2]string
}

var reportBands = []reportBand{
	{func(n int) bool { return n <= 100 }, "EPIC-001: Ideation & Documentation", 50, [2]string{"US-001: Documentation", "US-002: Project Structure"}},
	{func(n int) bool { return n <= 260 }, "EPIC-002: Core Systems", 180, [2]string{"US-003: Movement", "US-004: Inventory"}},
	{func(n int) bool { return n <= 420 }, "EPIC-003: Combat Framework", 340, [2]string{"US-005: Melee Combat", "US-006: Magic System"}},
	{func(n int) bool { return n <= 580 }, "EPIC-004: Environment System", 500, [2]string{"US-007: Environments", "US-008: Weather"}},
	{func(n int) bool { return n <= 640 || (n >= 761 && n <= 820) }, "EPIC-005: Character System", 640, [2]string{"US-009: Customization", "US-010: Progression"}},
	{func(n int) bool { return n <= 760 }, "EPIC-006: UI/UX Framework", 720, [2]string{"US-011: UI Design", "US-012: HUD"}},
	{func(n int) bool { return n <= 900 }, "EPIC-007: Save System", 880, [2]string{"US-013: Save/Load", "US-014: Cloud Saves"}},
	{func(int) bool { return true }, "EPIC-008: Audio & Polish", 960, [2]string{"US-015: Audio", "US-016: Polish"}},
}

// Classify returns the epic and user story labels the sprint report uses
// for catalog issue n.
func Classify(n int) (epic, story string) {
	for _, b := range reportBands {
		if !b.match(n) {
			continue
		}
		if n <= b.split {
			return b.epic, b.stories[0]
		}
		return b.epic, b.stories[1]
	}
	return "", ""
}
