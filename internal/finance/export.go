package finance

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output file names.
const (
	AssetBreakdownFile    = "shadowed_realms_asset_breakdown.csv"
	PricingStrategyFile   = "realistic_asset_pricing_strategy.csv"
	InvestmentFile        = "project_investment_requirements.csv"
	ScriptsDetailedFile   = "shadowed_realms_scripts_detailed.csv"
	CategoryAnalysisFile  = "scripts_category_analysis.csv"
	RevenueProjectionFile = "shadowed_realms_revenue_projection.png"
	CategoryRevenueFile   = "shadowed_realms_revenue.png"
)

// Table is a header plus rows of already formatted cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// AssetTable lists every asset in the production schedule.
func (r ValuationReport) AssetTable() Table {
	t := Table{Header: []string{"Asset Name", "Month Created", "Asset Type", "Realistic Price", "Platform Strategy", "Monthly Sales Est"}}
	for _, a := range r.Assets {
		t.Rows = append(t.Rows, []string{a.Name, itoa(a.Month), a.Type, itoa(a.Price), a.Platform, itoa(a.MonthlySales)})
	}
	return t
}

// PricingTable lists the per-category marketplace prices.
func (r ValuationReport) PricingTable() Table {
	t := Table{Header: []string{"Asset Category", "Unity Store Price", "Unreal Price", "GameDev Market", "Monthly Sales Est", "Revenue Per Month"}}
	for _, p := range r.Pricing {
		t.Rows = append(t.Rows, []string{p.Category, itoa(p.UnityPrice), itoa(p.UnrealPrice), itoa(p.GameDevMarket), itoa(p.MonthlySales), itoa(p.MonthlyRevenue)})
	}
	return t
}

// InvestmentTable lists the up-front costs.
func (r ValuationReport) InvestmentTable() Table {
	t := Table{Header: []string{"Investment Category", "Cost", "Description"}}
	for _, inv := range r.Investments {
		t.Rows = append(t.Rows, []string{inv.Category, itoa(inv.Cost), inv.Description})
	}
	return t
}

// MonthTable lists the monthly creation breakdown.
func (r ValuationReport) MonthTable() Table {
	t := Table{Header: []string{"Month", "Month Focus", "Assets Created", "High-Value Items", "Medium-Value Items", "Low-Value Items"}}
	for _, m := range r.Months {
		t.Rows = append(t.Rows, []string{itoa(m.Month), m.Focus, itoa(m.Assets), itoa(m.High), itoa(m.Medium), itoa(m.Low)})
	}
	return t
}

// ScriptTable lists every script with its prices.
func (r PortfolioReport) ScriptTable() Table {
	t := Table{Header: []string{"Asset/Script Name", "Category", "Complexity Level", "Development Hours", "Unity Store Price", "Unreal Marketplace", "Direct Sales (Gumroad)", "Monthly Sales Est"}}
	for _, s := range r.Scripts {
		t.Rows = append(t.Rows, []string{s.Name, s.Category, s.Complexity, itoa(s.DevHours), itoa(s.UnityPrice), itoa(s.UnrealPrice), itoa(s.DirectPrice), itoa(s.MonthlySales)})
	}
	return t
}

// CategoryTable lists the per-category aggregates in category order.
func (r PortfolioReport) CategoryTable() Table {
	t := Table{Header: []string{"Category", "Count", "Total_Value", "Avg_Price", "Monthly_Sales", "Dev_Hours", "Monthly_Revenue"}}
	for _, c := range r.Categories {
		avg := math.Round(c.AvgPrice()*100) / 100
		t.Rows = append(t.Rows, []string{
			c.Category, itoa(c.Count), itoa(c.TotalValue), formatFloat(avg),
			itoa(c.MonthlySales), itoa(c.DevHours), formatFloat(c.MonthlyRevenue()),
		})
	}
	return t
}

// WriteValuationCSVs writes the three valuation tables into dir and returns
// the paths written.
func WriteValuationCSVs(dir string, r ValuationReport) ([]string, error) {
	return writeTables(dir, map[string]Table{
		AssetBreakdownFile:  r.AssetTable(),
		PricingStrategyFile: r.PricingTable(),
		InvestmentFile:      r.InvestmentTable(),
	}, AssetBreakdownFile, PricingStrategyFile, InvestmentFile)
}

// WritePortfolioCSVs writes the script and category tables into dir and
// returns the paths written.
func WritePortfolioCSVs(dir string, r PortfolioReport) ([]string, error) {
	return writeTables(dir, map[string]Table{
		ScriptsDetailedFile:  r.ScriptTable(),
		CategoryAnalysisFile: r.CategoryTable(),
	}, ScriptsDetailedFile, CategoryAnalysisFile)
}

func writeTables(dir string, tables map[string]Table, order ...string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(order))
	for _, name := range order {
		path := filepath.Join(dir, name)
		if err := writeCSV(path, tables[name]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, t Table) error {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// formatFloat prints the shortest exact form and always keeps a decimal
// point, so 200 prints as "200.0" and 33.75 as "33.75".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
