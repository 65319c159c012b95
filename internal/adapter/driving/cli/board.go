package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/application"
)

func newBoardCommand(d *Deps) *cobra.Command {
	var (
		title     string
		linkLimit int
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Create the Projects board and link open issues to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, err := d.NewTracker(d.Config)
			if err != nil {
				return err
			}
			board, err := d.NewBoard(ctx, d.Config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := application.NewBoardService(board, tracker).Setup(ctx, application.BoardOptions{
				Title:     title,
				LinkLimit: linkLimit,
				Pacer:     d.NewPacer(1, 500*time.Millisecond),
				Progress:  progressPrinter(out),
			})
			if result != nil && result.Project != nil {
				verb := "created"
				if result.Reused {
					verb = "reusing"
				}
				heading(out, fmt.Sprintf("%s project %q", verb, result.Project.Title))
				if result.Project.URL != "" {
					_, _ = fmt.Fprintln(out, result.Project.URL)
				}
				printSummary(out, "linked issues", result.Links)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", application.DefaultBoardTitle, "Project title")
	cmd.Flags().IntVar(&linkLimit, "link-limit", application.DefaultLinkLimit, "Number of open issues to link")
	return cmd
}
