package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// catalogNumberPattern matches the "[ISSUE-0042]" prefix carried by every
// generated issue title. Pre-production issues use negative numbers.
var catalogNumberPattern = regexp.MustCompile(`\[ISSUE-(-?\d+)\]`)

// IssueSpec is an issue the seeder intends to create. Number is the catalog
// number embedded in the title, not the number GitHub assigns.
type IssueSpec struct {
	Number int
	Title  string
	Body   string
	Labels []string
	Reward Reward
}

// TrackedIssue is an issue as it exists on GitHub.
type TrackedIssue struct {
	Number int // GitHub issue number.
	NodeID string
	Title  string
	Body   string
	State  string
	URL    string
}

// CatalogNumber returns the catalog number parsed from the issue title.
func (t TrackedIssue) CatalogNumber() (int, bool) {
	return ParseCatalogNumber(t.Title)
}

// Label is a repository label.
type Label struct {
	Name        string
	Color       string // Six hex digits without the leading '#'.
	Description string
}

// Milestone is a repository milestone. A zero DueOn means no due date.
type Milestone struct {
	Title       string
	Description string
	DueOn       time.Time
}

// IssueTitle formats a catalog title, zero-padding the number to four digits.
func IssueTitle(number int, title string) string {
	return fmt.Sprintf("[ISSUE-%04d] %s", number, title)
}

// ParseCatalogNumber extracts the catalog number from a title produced by
// IssueTitle. It reports false when the title carries no catalog prefix.
func ParseCatalogNumber(title string) (int, bool) {
	m := catalogNumberPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
