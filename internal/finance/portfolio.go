package finance

import "sort"

// Script is a sellable script or tool from the portfolio.
type Script struct {
	Name         string
	Category     string
	Complexity   string
	DevHours     int
	UnityPrice   int
	UnrealPrice  int
	DirectPrice  int
	MonthlySales int
}

// Store cuts the seller keeps, in percent.
const (
	UnityShare  = 70
	UnrealShare = 95
	DirectShare = 95
)

// Portfolio scenario percentages and the professional hourly rate used to
// price development time.
const (
	PortfolioConservative = 25
	PortfolioRealistic    = 45
	PortfolioOptimistic   = 75
	HourlyRate            = 50
	HighValueThreshold    = 100
)

var scripts = []Script{
	{"Complete RPG Framework", "Core Framework", "High", 120, 200, 225, 175, 3},
	{"Anime Character Controller", "Character", "High", 80, 75, 85, 65, 5},
	{"Combat System with Combos", "Combat", "High", 100, 125, 140, 115, 4},
	{"Dialogue & Quest System", "Narrative", "High", 90, 95, 105, 85, 3},
	{"Inventory & Equipment Manager", "Inventory", "Medium", 60, 45, 50, 40, 8},
	{"Skill Tree & Progression System", "Progression", "High", 100, 150, 170, 135, 2},
	{"Save/Load Game Manager", "Data", "Medium", 40, 35, 40, 30, 6},
	{"Audio Manager with Dynamic Music", "Audio", "Medium", 50, 40, 45, 35, 5},
	{"Scene Transition Manager", "Scene", "Low", 20, 25, 30, 20, 4},
	{"Settings & Options Menu System", "UI", "Medium", 40, 35, 40, 30, 6},

	{"Maya-Unity Batch Importer", "Pipeline", "High", 60, 85, 95, 75, 2},
	{"Animation Controller Generator", "Animation", "High", 70, 95, 105, 85, 3},
	{"Automated Rigging Tools", "Rigging", "High", 80, 120, 135, 110, 2},
	{"Texture Optimization Scripts", "Textures", "Medium", 30, 30, 35, 25, 4},
	{"LOD Generator & Manager", "Optimization", "High", 90, 110, 125, 100, 2},
	{"Asset Bundle Manager", "Deployment", "Medium", 40, 45, 50, 40, 3},
	{"Performance Profiler Tools", "Performance", "High", 80, 95, 105, 85, 2},
	{"Automated Build Pipeline", "Build", "High", 70, 85, 95, 75, 2},
	{"Version Control Integration", "VCS", "Medium", 30, 35, 40, 30, 3},
	{"Database Schema Generator", "Database", "High", 90, 125, 140, 115, 1},

	{"Anime-Style Toon Shader Pack", "Shaders", "Medium", 40, 50, 55, 45, 6},
	{"Particle Effect Library", "VFX", "Medium", 50, 40, 45, 35, 5},
	{"Weather System Controller", "Environment", "High", 80, 95, 105, 85, 3},
	{"Day/Night Cycle Manager", "Environment", "High", 70, 85, 95, 75, 3},
	{"Lighting Presets System", "Lighting", "Medium", 30, 35, 40, 30, 5},
	{"Post-Processing Stack Setup", "Rendering", "Low", 20, 25, 30, 20, 8},
	{"UI Animation System", "UI", "Medium", 40, 45, 50, 40, 4},
	{"Screen Space Effects Pack", "VFX", "Medium", 30, 35, 40, 30, 6},
	{"Procedural Sky System", "Environment", "High", 60, 75, 85, 65, 2},
	{"Water Shader & Physics", "Physics", "High", 70, 85, 95, 75, 3},

	{"NPC Behavior Tree System", "AI", "High", 100, 125, 140, 115, 2},
	{"Enemy AI Controller", "AI", "High", 80, 95, 105, 85, 3},
	{"Crowd Simulation Manager", "AI", "High", 90, 110, 125, 100, 2},
	{"Pathfinding Optimization", "AI", "High", 70, 85, 95, 75, 3},
	{"State Machine Framework", "Programming", "Medium", 50, 55, 60, 45, 4},
	{"Event System Manager", "Programming", "Medium", 30, 35, 40, 30, 5},
	{"Random Dungeon Generator", "Procedural", "High", 100, 150, 170, 135, 1},
	{"Loot Table System", "Gameplay", "Medium", 40, 45, 50, 40, 4},
	{"Achievement System", "Gameplay", "Low", 20, 25, 30, 20, 8},
	{"Analytics Integration Tools", "Analytics", "Medium", 40, 50, 55, 45, 3},

	{"Responsive UI Framework", "UI", "Medium", 50, 55, 60, 45, 4},
	{"Mobile Input Handler", "Input", "Medium", 40, 45, 50, 40, 5},
	{"Accessibility Tools", "Accessibility", "Medium", 30, 35, 40, 30, 6},
	{"Localization Manager", "Localization", "High", 60, 75, 85, 65, 2},
	{"UI Theme System", "UI", "Low", 20, 25, 30, 20, 8},
	{"Menu Navigation Controller", "UI", "Low", 20, 25, 30, 20, 6},
	{"Tooltip System", "UI", "Low", 15, 20, 25, 15, 10},
	{"Health Bar & UI Effects", "UI", "Low", 15, 20, 25, 15, 12},
	{"Mini-Map System", "UI", "Medium", 40, 45, 50, 40, 3},
	{"Chat/Communication System", "Social", "Medium", 30, 35, 40, 30, 4},
}

// CategoryStat aggregates the scripts of one category at Unity prices.
type CategoryStat struct {
	Category     string
	Count        int
	TotalValue   int
	MonthlySales int
	DevHours     int
}

// AvgPrice is the mean Unity price in the category.
func (c CategoryStat) AvgPrice() float64 {
	return float64(c.TotalValue) / float64(c.Count)
}

// MonthlyRevenue is the category's expected gross per month: its total
// value times its monthly sales, spread over its scripts.
func (c CategoryStat) MonthlyRevenue() float64 {
	return float64(c.TotalValue) * float64(c.MonthlySales) / float64(c.Count)
}

// PortfolioReport is the result of the script portfolio model.
type PortfolioReport struct {
	Scripts    []Script
	Categories []CategoryStat // Sorted by category name.

	TotalDevHours int
	UnityTotal    int
	UnrealTotal   int
	DirectTotal   int

	// Gross monthly revenue per store before cuts.
	UnityMonthly  int
	UnrealMonthly int
	DirectMonthly int
	// NetMonthlyCents is the combined monthly revenue after store cuts.
	NetMonthlyCents int

	Scenarios []Scenario

	DevCost         int
	RealisticAnnual int
	ROI             float64
	PaybackMonths   float64

	HighValue        []Script // Unity price at or above HighValueThreshold.
	HighValueMonthly int      // Gross Unity revenue of HighValue per month.
}

// AnnualRevenue is the combined net revenue over twelve months, in whole
// dollars.
func (r PortfolioReport) AnnualRevenue() int {
	return r.NetMonthlyCents * 12 / 100
}

// AnalyzePortfolio runs the script portfolio model.
func AnalyzePortfolio() PortfolioReport {
	r := PortfolioReport{Scripts: scripts}

	byCategory := map[string]*CategoryStat{}
	for _, s := range scripts {
		r.TotalDevHours += s.DevHours
		r.UnityTotal += s.UnityPrice
		r.UnrealTotal += s.UnrealPrice
		r.DirectTotal += s.DirectPrice
		r.UnityMonthly += s.UnityPrice * s.MonthlySales
		r.UnrealMonthly += s.UnrealPrice * s.MonthlySales
		r.DirectMonthly += s.DirectPrice * s.MonthlySales

		c, ok := byCategory[s.Category]
		if !ok {
			c = &CategoryStat{Category: s.Category}
			byCategory[s.Category] = c
		}
		c.Count++
		c.TotalValue += s.UnityPrice
		c.MonthlySales += s.MonthlySales
		c.DevHours += s.DevHours

		if s.UnityPrice >= HighValueThreshold {
			r.HighValue = append(r.HighValue, s)
			r.HighValueMonthly += s.UnityPrice * s.MonthlySales
		}
	}

	for _, c := range byCategory {
		r.Categories = append(r.Categories, *c)
	}
	sort.Slice(r.Categories, func(i, j int) bool {
		return r.Categories[i].Category < r.Categories[j].Category
	})

	r.NetMonthlyCents = r.UnityMonthly*UnityShare + r.UnrealMonthly*UnrealShare + r.DirectMonthly*DirectShare

	r.Scenarios = []Scenario{
		{"Conservative", PortfolioConservative, r.NetMonthlyCents * PortfolioConservative / 10000},
		{"Realistic", PortfolioRealistic, r.NetMonthlyCents * PortfolioRealistic / 10000},
		{"Optimistic", PortfolioOptimistic, r.NetMonthlyCents * PortfolioOptimistic / 10000},
	}

	r.DevCost = r.TotalDevHours * HourlyRate
	realisticMonthly := r.Scenarios[1].Monthly
	r.RealisticAnnual = realisticMonthly * 12
	if r.DevCost > 0 {
		r.ROI = float64(r.RealisticAnnual) / float64(r.DevCost)
	}
	if realisticMonthly > 0 {
		r.PaybackMonths = float64(r.DevCost) / float64(realisticMonthly)
	}
	return r
}

// TopScripts returns the n scripts with the highest Unity price. Ties keep
// catalog order.
func (r PortfolioReport) TopScripts(n int) []Script {
	top := append([]Script(nil), r.Scripts...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].UnityPrice > top[j].UnityPrice
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}

// TopCategories returns the n categories with the highest monthly revenue.
// Ties are broken by category name.
func (r PortfolioReport) TopCategories(n int) []CategoryStat {
	top := append([]CategoryStat(nil), r.Categories...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].MonthlyRevenue() > top[j].MonthlyRevenue()
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}
