package catalog

import "github.com/ericfisherdev/realmseed/internal/domain/model"

// DefaultEffort is the estimate in hours for an issue missing from the table.
const DefaultEffort = 1.0

type effortBand struct {
	model.IssueRange
	Hours float64
}

var effortTable = []effortBand{
	{r(1, 50), 0.5},
	{r(51, 100), 1.0},
	{r(101, 180), 2.0},
	{r(181, 260), 2.5},
	{r(261, 340), 3.0},
	{r(341, 420), 3.5},
	{r(421, 500), 2.5},
	{r(501, 580), 2.0},
	{r(581, 640), 1.5},
	{r(761, 820), 2.0},
	{r(641, 720), 1.0},
	{r(721, 760), 1.5},
	{r(821, 880), 3.0},
	{r(881, 900), 2.0},
	{r(901, 960), 1.0},
	{r(961, 1000), 0.5},
}

// Effort returns the estimated hours for catalog issue n.
func Effort(n int) float64 {
	for _, b := range effortTable {
		if b.Contains(n) {
			return b.Hours
		}
	}
	return DefaultEffort
}

// EffortRanges returns the ranges the effort table covers, in table order.
func EffortRanges() []model.IssueRange {
	out := make([]model.IssueRange, len(effortTable))
	for i, b := range effortTable {
		out[i] = b.IssueRange
	}
	return out
}
