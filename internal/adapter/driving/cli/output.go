package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/ericfisherdev/realmseed/internal/application"
)

// Colors is the palette for headings and tables.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"),
	Muted:   lipgloss.Color("#636E72"),
	Success: lipgloss.Color("#00B894"),
	Warning: lipgloss.Color("#FDCB6E"),
	Error:   lipgloss.Color("#D63031"),
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary)
	mutedStyle   = lipgloss.NewStyle().Foreground(Colors.Muted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func heading(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, headingStyle.Render(text))
}

// renderTable lays out rows under headers with a rounded border.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(w, t.Render())
}

// progressPrinter prints one line per seeded item as it completes.
func progressPrinter(w io.Writer) func(application.ItemResult) {
	created := color.New(color.FgGreen).SprintFunc()
	skipped := color.New(color.FgYellow).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()
	planned := color.New(color.FgCyan).SprintFunc()

	return func(r application.ItemResult) {
		switch r.Outcome {
		case application.OutcomeCreated:
			suffix := ""
			if r.RemoteID > 0 {
				suffix = " (#" + strconv.Itoa(r.RemoteID) + ")"
			}
			_, _ = fmt.Fprintf(w, "%s %s%s\n", created("created"), r.Title, suffix)
		case application.OutcomeSkipped:
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", skipped("skipped"), r.Title, r.Reason)
		case application.OutcomeFailed:
			_, _ = fmt.Fprintf(w, "%s %s: %v\n", failed("failed "), r.Title, r.Err)
		case application.OutcomePlanned:
			_, _ = fmt.Fprintf(w, "%s %s\n", planned("would create"), r.Title)
		}
	}
}

// printSummary prints the totals of a seed run.
func printSummary(w io.Writer, what string, s application.Summary) {
	line := fmt.Sprintf("%s: %d created, %d skipped, %d failed", what, s.Created, s.Skipped, s.Failed)
	if s.Planned > 0 {
		line += fmt.Sprintf(", %d planned", s.Planned)
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(Colors.Success)
	if s.Failed > 0 {
		style = style.Foreground(Colors.Error)
	}
	_, _ = fmt.Fprintln(w, style.Render(line))
}

func printHierarchy(w io.Writer, totals application.HierarchySummary) {
	heading(w, "Agile hierarchy")

	rows := make([][]string, 0, len(totals.Epics)+1)
	for _, e := range totals.Epics {
		rows = append(rows, []string{
			e.ID, e.Title, strconv.Itoa(e.Issues), strconv.Itoa(e.Tasks), strconv.Itoa(e.Points),
		})
	}
	rows = append(rows, []string{
		"", "Total", strconv.Itoa(totals.Issues), strconv.Itoa(totals.Tasks), strconv.Itoa(totals.Points),
	})
	renderTable(w, []string{"Epic", "Title", "Issues", "Tasks", "Points"}, rows)

	_, _ = fmt.Fprintf(w, "%d user stories, %d memory fragments, %d real stories\n",
		totals.UserStories, totals.Fragments, totals.RealStories)
}
