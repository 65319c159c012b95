package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// IssueSet is a named generator of issues along with the pacing the seeder
// applies while creating them.
type IssueSet struct {
	Name        string
	Description string
	PaceEvery   int
	PaceDelay   time.Duration
	// RemoteScan enables skipping issues already present on GitHub.
	RemoteScan bool
	Generate   func() ([]model.IssueSpec, error)
}

func static(gen func() []model.IssueSpec) func() ([]model.IssueSpec, error) {
	return func() ([]model.IssueSpec, error) { return gen(), nil }
}

var issueSets = map[string]IssueSet{
	"complete": {
		Name:        "complete",
		Description: "Sprint 1 micro tasks, issues 1-1000",
		PaceEvery:   5,
		PaceDelay:   3 * time.Second,
		RemoteScan:  true,
		Generate:    static(CompleteSprint1),
	},
	"remaining": {
		Name:        "remaining",
		Description: "Deliverable-backed issues 601-1000",
		PaceEvery:   3,
		PaceDelay:   2 * time.Second,
		RemoteScan:  true,
		Generate:    static(RemainingSprint1),
	},
	"missing": {
		Name:        "missing",
		Description: "Atmospheric effects, issues 571-600",
		PaceEvery:   3,
		PaceDelay:   2 * time.Second,
		Generate:    static(MissingIssues),
	},
	"safe": {
		Name:        "safe",
		Description: "Hand-listed Sprint 1 setup tasks",
		PaceEvery:   10,
		PaceDelay:   2 * time.Second,
		Generate:    SafeSprint1,
	},
	"ideation": {
		Name:        "ideation",
		Description: "Pre-production ideation and documentation, issues -100 to -1",
		PaceEvery:   3,
		PaceDelay:   2 * time.Second,
		Generate:    Ideation,
	},
}

// LookupSet returns the issue set registered under name.
func LookupSet(name string) (IssueSet, error) {
	set, ok := issueSets[name]
	if !ok {
		return IssueSet{}, fmt.Errorf("unknown issue set %q (want one of %v)", name, SetNames())
	}
	return set, nil
}

// SetNames returns the registered issue set names, sorted.
func SetNames() []string {
	names := make([]string, 0, len(issueSets))
	for name := range issueSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IssuePreview generates the body catalog issue n would be created with,
// preferring the deliverable-backed sets over the generic micro tasks.
func IssuePreview(n int) (model.IssueSpec, bool) {
	for _, name := range []string{"ideation", "missing", "remaining", "complete"} {
		specs, err := issueSets[name].Generate()
		if err != nil {
			continue
		}
		for _, s := range specs {
			if s.Number == n {
				return s, true
			}
		}
	}
	return model.IssueSpec{}, false
}
