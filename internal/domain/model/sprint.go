package model

// Sprint is one week of packed work.
type Sprint struct {
	Number int
	Week   int
	Issues []int
	Hours  float64
}

// First returns the lowest catalog number in the sprint.
func (s Sprint) First() int {
	if len(s.Issues) == 0 {
		return 0
	}
	return s.Issues[0]
}

// Last returns the highest catalog number in the sprint.
func (s Sprint) Last() int {
	if len(s.Issues) == 0 {
		return 0
	}
	return s.Issues[len(s.Issues)-1]
}

// SprintReport is the allocation report written to sprint_allocation.json.
type SprintReport struct {
	Organization   string          `json:"organization"`
	Project        string          `json:"project"`
	Repository     string          `json:"repository"`
	Methodology    string          `json:"methodology"`
	SprintDuration string          `json:"sprint_duration"`
	TotalSprints   int             `json:"total_sprints"`
	TotalWeeks     int             `json:"total_weeks"`
	TotalHours     float64         `json:"total_hours"`
	TotalIssues    int             `json:"total_issues"`
	TotalTasks     int             `json:"total_tasks"`
	Sprints        []SprintSummary `json:"sprints"`
}

// SprintSummary describes a single sprint in the report.
type SprintSummary struct {
	SprintNumber         int      `json:"sprint_number"`
	Week                 int      `json:"week"`
	Hours                float64  `json:"hours"`
	IssueCount           int      `json:"issue_count"`
	IssueRange           string   `json:"issue_range"`
	TasksRange           string   `json:"tasks_range"`
	Epics                []string `json:"epics"`
	UserStories          []string `json:"user_stories"`
	Velocity             float64  `json:"velocity"`
	CompletionPercentage float64  `json:"completion_percentage"`
}
