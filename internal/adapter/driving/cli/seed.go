package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/application"
	"github.com/ericfisherdev/realmseed/internal/catalog"
	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

func newLabelsCommand(d *Deps) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Create the hierarchy labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, closeLedger, err := d.seeder(dryRun)
			if err != nil {
				return err
			}
			defer closeQuietly(closeLedger)

			out := cmd.OutOrStdout()
			summary, err := svc.SeedLabels(cmd.Context(), catalog.HierarchyLabels(), application.SeedOptions{
				DryRun:   dryRun,
				Pacer:    d.pacer(0, 0),
				Progress: progressPrinter(out),
			})
			printSummary(out, "labels", summary)
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without calling GitHub")
	return cmd
}

func newMilestonesCommand(d *Deps) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Create the ten sprint phase milestones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, closeLedger, err := d.seeder(dryRun)
			if err != nil {
				return err
			}
			defer closeQuietly(closeLedger)

			out := cmd.OutOrStdout()
			summary, err := svc.SeedMilestones(cmd.Context(), catalog.SprintMilestones(), application.SeedOptions{
				DryRun:   dryRun,
				Pacer:    d.pacer(0, 0),
				Progress: progressPrinter(out),
			})
			printSummary(out, "milestones", summary)
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without calling GitHub")
	return cmd
}

func newIssuesCommand(d *Deps) *cobra.Command {
	var (
		dryRun       bool
		noRemoteScan bool
		backoff      bool
		from, to     int
	)

	cmd := &cobra.Command{
		Use:       "issues <" + strings.Join(catalog.SetNames(), "|") + ">",
		Short:     "Create the issues of a catalog set",
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.SetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := catalog.LookupSet(args[0])
			if err != nil {
				return err
			}
			specs, err := set.Generate()
			if err != nil {
				return fmt.Errorf("generate %s issues: %w", set.Name, err)
			}
			specs = filterRange(specs, from, to)

			svc, _, closeLedger, err := d.seeder(dryRun)
			if err != nil {
				return err
			}
			defer closeQuietly(closeLedger)

			pacer := d.pacer(set.PaceEvery, set.PaceDelay)
			if backoff {
				pacer.WithBackoff()
			}

			out := cmd.OutOrStdout()
			heading(out, fmt.Sprintf("%s: %d issues", set.Description, len(specs)))
			summary, err := svc.SeedIssues(cmd.Context(), specs, application.SeedOptions{
				DryRun:     dryRun,
				RemoteScan: set.RemoteScan && !noRemoteScan,
				Pacer:      pacer,
				Progress:   progressPrinter(out),
			})
			printSummary(out, "issues", summary)
			if err != nil {
				return err
			}

			reward := catalog.RewardTotals(specs)
			_, _ = fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf(
				"set rewards: %d XP, %d coins ($%d project value)", reward.XP, reward.Coins, reward.Value())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without calling GitHub")
	cmd.Flags().BoolVar(&noRemoteScan, "no-remote-scan", false, "Do not skip issues already present on GitHub")
	cmd.Flags().BoolVar(&backoff, "backoff", false, "Back off exponentially when GitHub reports a rate limit")
	cmd.Flags().IntVar(&from, "from", 0, "Only issues numbered at or above this (0 for no bound)")
	cmd.Flags().IntVar(&to, "to", 0, "Only issues numbered at or below this (0 for no bound)")
	return cmd
}

// filterRange keeps specs numbered within [from, to]. A zero bound is open.
func filterRange(specs []model.IssueSpec, from, to int) []model.IssueSpec {
	if from == 0 && to == 0 {
		return specs
	}
	out := make([]model.IssueSpec, 0, len(specs))
	for _, s := range specs {
		if from != 0 && s.Number < from {
			continue
		}
		if to != 0 && s.Number > to {
			continue
		}
		out = append(out, s)
	}
	return out
}

func newHierarchyCommand(d *Deps) *cobra.Command {
	var (
		dryRun        bool
		annotateLimit int
	)

	cmd := &cobra.Command{
		Use:   "hierarchy",
		Short: "Create the epic and story structure and annotate existing issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, tracker, closeLedger, err := d.seeder(dryRun)
			if err != nil {
				return err
			}
			defer closeQuietly(closeLedger)

			out := cmd.OutOrStdout()
			result, err := application.NewHierarchyService(svc, tracker).Run(cmd.Context(), application.HierarchyOptions{
				AnnotateLimit: annotateLimit,
				DryRun:        dryRun,
				Pacer:         d.pacer(0, 0),
				Progress:      progressPrinter(out),
			})
			if err != nil {
				return err
			}

			printSummary(out, "labels", result.Labels)
			printSummary(out, "milestones", result.Milestones)
			if !dryRun {
				printSummary(out, "annotated issues", result.Annotated)
			}
			printHierarchy(out, result.Totals)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without calling GitHub")
	cmd.Flags().IntVar(&annotateLimit, "annotate-limit", application.DefaultAnnotateLimit, "Maximum number of issues to annotate")
	return cmd
}
