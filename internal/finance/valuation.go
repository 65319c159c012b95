// Package finance holds the asset and script revenue models and the tables
// they export. Money is kept in whole dollars or cents so that every figure
// and file is reproducible byte for byte.
package finance

// MonthPlan is one month of the asset creation schedule.
type MonthPlan struct {
	Month  int
	Focus  string
	Assets int
	High   int
	Medium int
	Low    int
}

// PricingRow is the expected price of an asset category per marketplace.
type PricingRow struct {
	Category       string
	UnityPrice     int
	UnrealPrice    int
	GameDevMarket  int
	MonthlySales   int
	MonthlyRevenue int
}

// Asset is a sellable asset from the production schedule.
type Asset struct {
	Name         string
	Month        int
	Type         string
	Price        int
	Platform     string
	MonthlySales int
}

// Investment is an up-front cost line.
type Investment struct {
	Category    string
	Cost        int
	Description string
}

// Scenario scales the estimated monthly revenue by Percent.
type Scenario struct {
	Name    string
	Percent int
	Monthly int
}

var monthPlans = []MonthPlan{
	{1, "Foundation & Setup", 15, 2, 8, 5},
	{2, "Characters & Animation", 25, 4, 12, 9},
	{3, "Environments & Rendering", 30, 5, 15, 10},
	{4, "Web & Community", 20, 3, 10, 7},
	{5, "Polish & Integration", 25, 4, 12, 9},
	{6, "Launch & Marketing", 35, 6, 18, 11},
}

var pricing = []PricingRow{
	{"Character Models (rigged)", 45, 50, 40, 3, 135},
	{"Animation Packs", 35, 40, 30, 5, 175},
	{"Environment Packs", 55, 60, 50, 4, 220},
	{"Shader/Material Packs", 25, 30, 20, 8, 200},
	{"Tool Scripts/Extensions", 40, 45, 35, 6, 240},
	{"UI/Interface Packs", 30, 35, 25, 4, 120},
	{"Audio/Music Packs", 20, 25, 15, 10, 200},
	{"Complete Game Kits", 150, 175, 125, 1, 150},
	{"Tutorial/Educational", 75, 85, 65, 2, 150},
	{"VFX/Particle Systems", 35, 40, 30, 3, 105},
}

var assets = []Asset{
	{"Maya-Unity Pipeline Tools", 1, "Tool", 25, "Unity", 2},
	{"Character Rig Templates", 1, "Template", 15, "Unity", 1},
	{"Basic Anime Shaders", 1, "Shader", 20, "Multiple", 3},
	{"Project Setup Scripts", 1, "Script", 15, "Unity", 2},
	{"Git Workflow Templates", 1, "Template", 10, "GitHub", 1},

	{"Anime Character Pack (5 models)", 2, "Character", 120, "Multiple", 3},
	{"Facial Animation System", 2, "Animation", 65, "Unity", 2},
	{"Hair Dynamics Kit", 2, "VFX", 45, "Multiple", 2},
	{"Combat Animation Set", 2, "Animation", 85, "Unity", 2},
	{"Dialogue Gesture Pack", 2, "Animation", 55, "Unity", 2},
	{"Expression Library", 2, "Animation", 35, "Unity", 1},

	{"Modular Village Kit", 3, "Environment", 95, "Multiple", 2},
	{"Japanese Architecture Pack", 3, "Environment", 85, "Multiple", 2},
	{"Fantasy Forest Bundle", 3, "Environment", 75, "Multiple", 2},
	{"Lighting Preset Collection", 3, "Lighting", 40, "Unity", 3},
	{"Atmospheric Effects", 3, "VFX", 50, "Multiple", 2},
	{"Procedural Terrain Tools", 3, "Tool", 35, "Unity", 2},

	{"Game Website Template", 4, "Web", 45, "Web", 1},
	{"Community Dashboard", 4, "Web", 55, "Gumroad", 1},
	{"Analytics Integration", 4, "Script", 30, "Unity", 2},
	{"Social Media Automation", 4, "Script", 25, "Unity", 2},
	{"Tutorial Template Pack", 4, "Educational", 65, "Gumroad", 1},

	{"Advanced Shader Library", 5, "Shader", 75, "Multiple", 2},
	{"Performance Optimization Tools", 5, "Tool", 45, "Unity", 2},
	{"Quality Assurance Suite", 5, "Tool", 35, "Unity", 2},
	{"Cross-Platform Porting Kit", 5, "Tool", 40, "Unity", 2},
	{"Advanced Animation Controllers", 5, "Animation", 55, "Unity", 2},

	{"Complete RPG Game Template", 6, "Game Kit", 250, "Steam", 1},
	{"Marketing Asset Pack", 6, "Marketing", 95, "Multiple", 1},
	{"Steam Integration Kit", 6, "Tool", 65, "Unity", 2},
	{"Community Management Tools", 6, "Tool", 45, "Unity", 2},
	{"Educational Course Bundle", 6, "Educational", 150, "Gumroad", 1},
}

var investments = []Investment{
	{"Software Licenses (6 months)", 3900, "Unity Pro, Maya, Substance, etc."},
	{"Hardware Upgrades", 2000, "High-end GPU, RAM upgrades"},
	{"Marketing/Advertising", 1500, "Asset store promotion, ads"},
	{"Educational Resources", 500, "Tutorials, courses, books"},
	{"Hosting/Server Costs", 300, "Website, analytics, storage"},
	{"Legal/Business Setup", 800, "Business registration, contracts"},
}

// Valuation scenario percentages.
const (
	ValuationConservative = 30
	ValuationRealistic    = 60
	ValuationOptimistic   = 100
)

// ValuationReport is the result of the asset valuation model.
type ValuationReport struct {
	Months      []MonthPlan
	Pricing     []PricingRow
	Assets      []Asset
	Investments []Investment

	CategoryRevenue int // Sum of the pricing table's monthly revenue.
	TotalValue      int // Sum of individual asset prices.
	MonthlyRevenue  int // Sum of price × monthly sales over all assets.
	AnnualRevenue   int
	Scenarios       []Scenario

	TotalInvestment int
	// RealisticAnnual is the realistic scenario over twelve months, kept
	// unrounded in cents.
	RealisticAnnualCents int
	ROI                  float64
}

// AnalyzeValuation runs the asset valuation model.
func AnalyzeValuation() ValuationReport {
	r := ValuationReport{
		Months:      monthPlans,
		Pricing:     pricing,
		Assets:      assets,
		Investments: investments,
	}

	for _, p := range pricing {
		r.CategoryRevenue += p.MonthlyRevenue
	}
	for _, a := range assets {
		r.TotalValue += a.Price
		r.MonthlyRevenue += a.Price * a.MonthlySales
	}
	r.AnnualRevenue = r.MonthlyRevenue * 12

	r.Scenarios = []Scenario{
		{"Conservative", ValuationConservative, percentOf(r.MonthlyRevenue, ValuationConservative)},
		{"Realistic", ValuationRealistic, percentOf(r.MonthlyRevenue, ValuationRealistic)},
		{"Optimistic", ValuationOptimistic, percentOf(r.MonthlyRevenue, ValuationOptimistic)},
	}

	for _, inv := range investments {
		r.TotalInvestment += inv.Cost
	}
	r.RealisticAnnualCents = r.MonthlyRevenue * ValuationRealistic * 12
	if r.TotalInvestment > 0 {
		r.ROI = float64(r.RealisticAnnualCents) / 100 / float64(r.TotalInvestment)
	}
	return r
}

// percentOf returns pct percent of v, truncated toward zero.
func percentOf(v, pct int) int {
	return v * pct / 100
}
