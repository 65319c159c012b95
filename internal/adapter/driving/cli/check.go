package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/catalog"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the catalog tables for gaps, overlaps and conflicts",
		Long: `Check reports issue numbers claimed by no hierarchy or effort range,
numbers claimed more than once, epics whose ranges are not contiguous,
milestones due out of order, and issue sets that give the same number
different titles. Warnings are informational; any error fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			findings, err := catalog.Check()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errCount := 0
			for _, f := range findings {
				mark := color.YellowString("warn ")
				if f.Severity == catalog.SeverityError {
					mark = color.RedString("error")
					errCount++
				}
				_, _ = fmt.Fprintf(out, "%s %s: %s\n", mark, f.Check, f.Message)
			}
			_, _ = fmt.Fprintf(out, "%d findings, %d errors\n", len(findings), errCount)
			if errCount > 0 {
				return fmt.Errorf("catalog check found %d errors", errCount)
			}
			return nil
		},
	}
}
