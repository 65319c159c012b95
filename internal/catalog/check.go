package catalog

import (
	"fmt"
	"sort"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// Severity grades a consistency finding.
type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Finding is a single inconsistency in the static tables.
type Finding struct {
	Check    string
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Check, f.Message)
}

// Check runs every table consistency check and returns the findings in a
// stable order.
func Check() ([]Finding, error) {
	var findings []Finding
	findings = append(findings, CheckRanges()...)
	findings = append(findings, checkEffort()...)
	findings = append(findings, checkMilestoneOrder(sprintMilestones)...)
	overlaps, err := checkGeneratorOverlaps()
	if err != nil {
		return nil, err
	}
	return append(findings, overlaps...), nil
}

// CheckRanges reports gaps and overlaps in the hierarchy over the catalog
// span, and epics whose issue ranges are not contiguous.
func CheckRanges() []Finding {
	var claims []model.IssueRange
	for _, epic := range hierarchy {
		claims = append(claims, epic.Ranges()...)
	}
	findings := coverage("hierarchy", claims)

	for _, epic := range hierarchy {
		ranges := epic.Ranges()
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
		for i := 1; i < len(ranges); i++ {
			if ranges[i].Start != ranges[i-1].End+1 {
				findings = append(findings, Finding{
					Check:    "hierarchy",
					Severity: SeverityWarn,
					Message: fmt.Sprintf("%s is not contiguous: %s then %s",
						epic.ID, ranges[i-1], ranges[i]),
				})
			}
		}
	}
	return findings
}

func checkEffort() []Finding {
	return coverage("effort", EffortRanges())
}

// coverage reports the runs of catalog numbers claimed by no range, and the
// runs claimed by more than one.
func coverage(check string, claims []model.IssueRange) []Finding {
	counts := make([]int, LastIssue+1)
	for _, r := range claims {
		for n := max(r.Start, FirstIssue); n <= min(r.End, LastIssue); n++ {
			counts[n]++
		}
	}

	var findings []Finding
	emit := func(start, end, count int) {
		rng := model.IssueRange{Start: start, End: end}
		switch {
		case count == 0:
			findings = append(findings, Finding{Check: check, Severity: SeverityError, Message: "gap at " + rng.String()})
		case count > 1:
			findings = append(findings, Finding{Check: check, Severity: SeverityError, Message: fmt.Sprintf("overlap at %s (%d claims)", rng, count)})
		}
	}

	start := FirstIssue
	for n := FirstIssue + 1; n <= LastIssue; n++ {
		if counts[n] != counts[start] {
			emit(start, n-1, counts[start])
			start = n
		}
	}
	emit(start, LastIssue, counts[start])
	return findings
}

func checkMilestoneOrder(milestones []model.Milestone) []Finding {
	var findings []Finding
	for i := 1; i < len(milestones); i++ {
		prev, cur := milestones[i-1], milestones[i]
		if !cur.DueOn.After(prev.DueOn) {
			findings = append(findings, Finding{
				Check:    "milestones",
				Severity: SeverityWarn,
				Message: fmt.Sprintf("%q is due %s, not after %q (%s)",
					cur.Title, cur.DueOn.Format("2006-01-02"), prev.Title, prev.DueOn.Format("2006-01-02")),
			})
		}
	}
	return findings
}

// checkGeneratorOverlaps reports, per pair of issue sets, the catalog
// numbers both generate under different titles.
func checkGeneratorOverlaps() ([]Finding, error) {
	names := SetNames()
	titles := make(map[string]map[int]string, len(names))
	for _, name := range names {
		specs, err := issueSets[name].Generate()
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", name, err)
		}
		byNumber := make(map[int]string, len(specs))
		for _, s := range specs {
			byNumber[s.Number] = s.Title
		}
		titles[name] = byNumber
	}

	var findings []Finding
	for i, a := range names {
		for _, b := range names[i+1:] {
			var conflicts []int
			for n, title := range titles[a] {
				if other, ok := titles[b][n]; ok && other != title {
					conflicts = append(conflicts, n)
				}
			}
			if len(conflicts) == 0 {
				continue
			}
			sort.Ints(conflicts)
			first := conflicts[0]
			findings = append(findings, Finding{
				Check:    "generators",
				Severity: SeverityWarn,
				Message: fmt.Sprintf("%s and %s title %d issues differently, first #%d: %q vs %q",
					a, b, len(conflicts), first, titles[a][first], titles[b][first]),
			})
		}
	}
	return findings, nil
}
