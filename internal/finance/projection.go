package finance

// ProjectionPoint is one month of the cumulative revenue projection.
type ProjectionPoint struct {
	Month          int
	AssetsCreated  int
	PortfolioValue int
}

// Scenario returns pct percent of the portfolio value, rounded half up.
func (p ProjectionPoint) Scenario(pct int) int {
	return (p.PortfolioValue*pct + 50) / 100
}

var projection = []ProjectionPoint{
	{1, 15, 245},
	{2, 25, 710},
	{3, 30, 1200},
	{4, 20, 1545},
	{5, 25, 1945},
	{6, 35, 2680},
}

// Projection returns the six-month revenue projection.
func Projection() []ProjectionPoint {
	return append([]ProjectionPoint(nil), projection...)
}

// categoryLabels gives some categories a longer chart label.
var categoryLabels = map[string]string{
	"UI": "UI Systems",
	"AI": "AI Systems",
}

// CategoryLabel returns the display label of a category.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}
