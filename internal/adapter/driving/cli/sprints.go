package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/adapter/driven/render"
	"github.com/ericfisherdev/realmseed/internal/application"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// Default sprint output paths, relative to the output directory.
const (
	defaultReportFile   = "sprint_allocation.json"
	defaultScheduleFile = "docs/sprint_schedule.html"
)

func newSprintsCommand(d *Deps) *cobra.Command {
	var (
		capacity     float64
		jsonPath     string
		htmlPath     string
		show         int
		scheduleSize int
	)

	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "Pack the backlog into weekly sprints and write the report and schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if capacity <= 0 {
				return fmt.Errorf("--cap must be positive, got %g", capacity)
			}
			if jsonPath == "" {
				jsonPath = filepath.Join(d.Config.OutputDir, defaultReportFile)
			}
			if htmlPath == "" {
				htmlPath = filepath.Join(d.Config.OutputDir, defaultScheduleFile)
			}

			planner := application.NewSprintPlanner()
			report := planner.Report(planner.Allocate(capacity), capacity)

			if err := render.WriteReport(jsonPath, report); err != nil {
				return err
			}
			if err := render.WriteSchedule(cmd.Context(), htmlPath, report, scheduleSize); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSprints(out, report, show)
			_, _ = fmt.Fprintf(out, "wrote %s\nwrote %s\n", jsonPath, htmlPath)
			return nil
		},
	}
	cmd.Flags().Float64Var(&capacity, "cap", application.DefaultSprintCap, "Sprint capacity in hours")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Report path (default <output dir>/"+defaultReportFile+")")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Schedule path (default <output dir>/"+defaultScheduleFile+")")
	cmd.Flags().IntVar(&show, "show", 10, "Number of sprints to list")
	cmd.Flags().IntVar(&scheduleSize, "schedule-size", render.DefaultScheduleLimit, "Number of sprints on the HTML schedule")
	return cmd
}

func printSprints(w io.Writer, report model.SprintReport, show int) {
	heading(w, fmt.Sprintf("%d sprints, %d issues, %.0f hours (%s)",
		report.TotalSprints, report.TotalIssues, report.TotalHours, report.SprintDuration))

	sprints := report.Sprints
	if show >= 0 && show < len(sprints) {
		sprints = sprints[:show]
	}
	rows := make([][]string, 0, len(sprints))
	for _, s := range sprints {
		rows = append(rows, []string{
			strconv.Itoa(s.SprintNumber),
			s.IssueRange,
			strconv.Itoa(s.IssueCount),
			strconv.FormatFloat(s.Hours, 'f', 1, 64),
			strconv.FormatFloat(s.CompletionPercentage, 'f', 1, 64) + "%",
		})
	}
	renderTable(w, []string{"Sprint", "Issues", "Count", "Hours", "Done"}, rows)
}
