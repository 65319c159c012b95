package model

import "fmt"

// IssueRange is an inclusive range of catalog issue numbers.
type IssueRange struct {
	Start int
	End   int
}

// Contains reports whether n falls inside the range.
func (r IssueRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Len returns the number of issues in the range.
func (r IssueRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r IssueRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Epic groups user stories under a single milestone.
type Epic struct {
	ID      string
	Title   string
	Stories []UserStory
}

// Ranges returns every issue range claimed by the epic's stories, in story order.
func (e Epic) Ranges() []IssueRange {
	var out []IssueRange
	for _, us := range e.Stories {
		out = append(out, us.Ranges...)
	}
	return out
}

// IssueCount sums the issues of every story in the epic.
func (e Epic) IssueCount() int {
	total := 0
	for _, us := range e.Stories {
		total += us.IssueCount()
	}
	return total
}

// TaskCount sums the tasks of every story in the epic.
func (e Epic) TaskCount() int {
	total := 0
	for _, us := range e.Stories {
		total += us.TaskCount()
	}
	return total
}

// StoryPoints sums the story points of every story in the epic.
func (e Epic) StoryPoints() int {
	total := 0
	for _, us := range e.Stories {
		total += us.StoryPoints
	}
	return total
}

// MilestoneTitle is the title used for the epic's milestone.
func (e Epic) MilestoneTitle() string {
	return e.ID + ": " + e.Title
}

// UserStory is a slice of an epic. Completing every issue in it unlocks part
// of a real story.
type UserStory struct {
	ID            string
	Title         string
	Ranges        []IssueRange
	TasksPerIssue int
	StoryPoints   int
	UnlocksStory  string
	MemoryTheme   string
}

// Contains reports whether catalog issue n belongs to the story.
func (us UserStory) Contains(n int) bool {
	for _, r := range us.Ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// IssueCount returns the number of issues across all of the story's ranges.
func (us UserStory) IssueCount() int {
	total := 0
	for _, r := range us.Ranges {
		total += r.Len()
	}
	return total
}

// TaskCount returns IssueCount multiplied by TasksPerIssue.
func (us UserStory) TaskCount() int {
	return us.IssueCount() * us.TasksPerIssue
}

// MemoryFragment names the fragment unlocked by completing catalog issue n.
func (us UserStory) MemoryFragment(n int) string {
	return fmt.Sprintf("%s Fragment #%d", us.MemoryTheme, n)
}

// MilestoneTitle is the title used for the story's milestone. The story
// title is cut at 50 characters and always followed by an ellipsis.
func (us UserStory) MilestoneTitle() string {
	title := us.Title
	if len(title) > 50 {
		title = title[:50]
	}
	return us.ID + ": " + title + "..."
}

// RealStory is a piece of lore unlocked by completing a group of user stories.
type RealStory struct {
	ID          string
	Title       string
	Description string
	UnlockedBy  string
}

// MilestoneTitle is the title used for the real story's milestone.
func (rs RealStory) MilestoneTitle() string {
	return rs.ID + ": " + rs.Title
}
