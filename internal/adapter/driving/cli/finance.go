package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/adapter/driven/chart"
	"github.com/ericfisherdev/realmseed/internal/finance"
)

// chartCategories is how many categories the revenue bar chart shows.
const chartCategories = 10

func newFinanceCommand(d *Deps) *cobra.Command {
	var dir string

	outDir := func() string {
		if dir != "" {
			return dir
		}
		return d.Config.OutputDir
	}

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Revenue models, CSV exports and charts",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "Output directory (default $REALMSEED_OUTPUT_DIR)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "valuation",
			Short: "Run the asset valuation model and write its CSVs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				r := finance.AnalyzeValuation()
				paths, err := finance.WriteValuationCSVs(outDir(), r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printValuation(out, r)
				printPaths(out, paths)
				return nil
			},
		},
		&cobra.Command{
			Use:   "portfolio",
			Short: "Run the script portfolio model and write its CSVs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				r := finance.AnalyzePortfolio()
				paths, err := finance.WritePortfolioCSVs(outDir(), r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printPortfolio(out, r)
				printPaths(out, paths)
				return nil
			},
		},
		&cobra.Command{
			Use:   "charts",
			Short: "Render the revenue projection and category charts as PNG",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				paths, err := writeCharts(outDir())
				if err != nil {
					return err
				}
				printPaths(cmd.OutOrStdout(), paths)
				return nil
			},
		},
	)
	return cmd
}

// projectionChart plots the portfolio value and its three scenarios.
func projectionChart() chart.LineChart {
	points := finance.Projection()
	series := []chart.Series{
		{Name: "Portfolio Val"},
		{Name: "Conservative"},
		{Name: "Realistic"},
		{Name: "Optimistic"},
	}
	pcts := []int{0, finance.ValuationConservative, finance.ValuationRealistic, finance.ValuationOptimistic}
	for _, p := range points {
		for i := range series {
			y := p.PortfolioValue
			if pcts[i] > 0 {
				y = p.Scenario(pcts[i])
			}
			series[i].X = append(series[i].X, float64(p.Month))
			series[i].Y = append(series[i].Y, float64(y))
		}
	}
	return chart.LineChart{
		Title:  "Shadowed Realms Revenue Projection",
		XLabel: "Month",
		YLabel: "Revenue ($)",
		Series: series,
	}
}

// categoryChart plots the top categories by monthly revenue.
func categoryChart(r finance.PortfolioReport) chart.BarChart {
	top := r.TopCategories(chartCategories)
	bars := make([]chart.Bar, 0, len(top))
	for _, c := range top {
		bars = append(bars, chart.Bar{Label: finance.CategoryLabel(c.Category), Value: c.MonthlyRevenue()})
	}
	return chart.BarChart{
		Title:  "Shadowed Realms Revenue by Category",
		YLabel: "Monthly Rev ($)",
		Bars:   bars,
	}
}

func writeCharts(dir string) ([]string, error) {
	line := projectionChart()
	bars := categoryChart(finance.AnalyzePortfolio())

	linePath := filepath.Join(dir, finance.RevenueProjectionFile)
	if err := chart.WriteFile(linePath, func(w io.Writer) error { return chart.RenderLine(w, line) }); err != nil {
		return nil, err
	}
	barPath := filepath.Join(dir, finance.CategoryRevenueFile)
	if err := chart.WriteFile(barPath, func(w io.Writer) error { return chart.RenderBars(w, bars) }); err != nil {
		return []string{linePath}, err
	}
	return []string{linePath, barPath}, nil
}

func printValuation(w io.Writer, r finance.ValuationReport) {
	heading(w, "Asset valuation")
	renderTable(w, []string{"Metric", "Value"}, [][]string{
		{"Category revenue / month", dollarsOf(r.CategoryRevenue)},
		{"Portfolio value", dollarsOf(r.TotalValue)},
		{"Revenue / month", dollarsOf(r.MonthlyRevenue)},
		{"Revenue / year", dollarsOf(r.AnnualRevenue)},
		{"Investment", dollarsOf(r.TotalInvestment)},
		{"Realistic ROI", fmt.Sprintf("%.2fx", r.ROI)},
	})
	printScenarios(w, r.Scenarios)
}

func printPortfolio(w io.Writer, r finance.PortfolioReport) {
	heading(w, fmt.Sprintf("Script portfolio: %d scripts in %d categories", len(r.Scripts), len(r.Categories)))
	renderTable(w, []string{"Metric", "Value"}, [][]string{
		{"Development hours", strconv.Itoa(r.TotalDevHours)},
		{"Development cost", dollarsOf(r.DevCost)},
		{"Net revenue / month", fmt.Sprintf("$%.2f", float64(r.NetMonthlyCents)/100)},
		{"Net revenue / year", dollarsOf(r.AnnualRevenue())},
		{"Realistic annual", dollarsOf(r.RealisticAnnual)},
		{"Realistic ROI", fmt.Sprintf("%.2fx", r.ROI)},
		{"Payback", fmt.Sprintf("%.1f months", r.PaybackMonths)},
		{"High-value scripts", fmt.Sprintf("%d (%s / month)", len(r.HighValue), dollarsOf(r.HighValueMonthly))},
	})
	printScenarios(w, r.Scenarios)

	top := r.TopCategories(5)
	rows := make([][]string, 0, len(top))
	for _, c := range top {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count), fmt.Sprintf("$%.2f", c.MonthlyRevenue())})
	}
	renderTable(w, []string{"Top category", "Scripts", "Revenue / month"}, rows)
}

func printScenarios(w io.Writer, scenarios []finance.Scenario) {
	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Percent) + "%", dollarsOf(s.Monthly), dollarsOf(s.Monthly * 12)})
	}
	renderTable(w, []string{"Scenario", "Share", "Monthly", "Annual"}, rows)
}

func printPaths(w io.Writer, paths []string) {
	for _, p := range paths {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("wrote "+p))
	}
}

// dollarsOf formats whole dollars with thousands separators.
func dollarsOf(v int) string {
	return "$" + humanize.Comma(int64(v))
}
