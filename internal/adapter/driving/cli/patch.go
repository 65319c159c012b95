package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/htmlpatch"
)

const diffContext = 3

func newPatchCommand(d *Deps) *cobra.Command {
	var (
		file   string
		dryRun bool
		strict bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "patch <ruleset|file.yaml>...",
		Short: "Apply find-and-replace rule sets to the progress dashboard",
		Long: `Patch applies each rule set in order to the dashboard HTML. Built-in
rule sets are ` + strings.Join(htmlpatch.BuiltinNames(), ", ") + `.
A path ending in .yaml is loaded as a custom rule set.

Every rule reports how many replacements it made. With --strict a rule
that matched nothing fails the command and the file is left untouched.
The file is only rewritten when its content changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range htmlpatch.BuiltinNames() {
					rs, err := htmlpatch.Builtin(name)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "%-20s %s (%d rules)\n", rs.Name, rs.Description, len(rs.Rules))
				}
				return nil
			}
			if len(args) == 0 {
				return errors.New("at least one rule set is required")
			}
			if file == "" {
				file = d.Config.DashboardPath
			}

			sets := make([]*htmlpatch.RuleSet, 0, len(args))
			for _, arg := range args {
				rs, err := htmlpatch.Resolve(arg)
				if err != nil {
					return err
				}
				sets = append(sets, rs)
			}

			info, err := os.Stat(file)
			if err != nil {
				return fmt.Errorf("stat dashboard: %w", err)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read dashboard: %w", err)
			}
			original := string(data)

			content := original
			var strictErrs []error
			for _, rs := range sets {
				res, err := rs.ApplyStrict(content)
				printRuleResults(out, res)
				if err != nil && strict {
					strictErrs = append(strictErrs, err)
				}
				content = res.Content
			}
			if len(strictErrs) > 0 {
				return fmt.Errorf("%s not written: %w", file, errors.Join(strictErrs...))
			}

			if content == original {
				_, _ = fmt.Fprintf(out, "%s unchanged\n", file)
				return nil
			}
			if dryRun {
				printDiff(out, htmlpatch.Diff(original, content, diffContext))
				_, _ = fmt.Fprintf(out, "dry run: %s not written\n", file)
				return nil
			}
			if err := os.WriteFile(file, []byte(content), info.Mode().Perm()); err != nil {
				return fmt.Errorf("write dashboard: %w", err)
			}
			_, _ = fmt.Fprintf(out, "patched %s\n", file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Dashboard HTML file (default $REALMSEED_DASHBOARD_PATH)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print a diff instead of writing the file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail without writing when any rule matches nothing")
	cmd.Flags().BoolVar(&list, "list", false, "List the built-in rule sets")
	return cmd
}

func printRuleResults(w io.Writer, res htmlpatch.Result) {
	heading(w, fmt.Sprintf("%s: %d replacements", res.Set, res.Replacements()))
	for _, r := range res.Rules {
		switch {
		case !r.Applied():
			_, _ = fmt.Fprintf(w, "  %s %s matched nothing\n", color.RedString("x"), r.Rule)
		case r.Fallback != "":
			_, _ = fmt.Fprintf(w, "  %s %s via %s (%d)\n", color.YellowString("~"), r.Rule, r.Fallback, r.Matches)
		default:
			_, _ = fmt.Fprintf(w, "  %s %s (%d)\n", color.GreenString("+"), r.Rule, r.Matches)
		}
	}
}

func printDiff(w io.Writer, lines []htmlpatch.DiffLine) {
	for _, l := range lines {
		switch l.Op {
		case htmlpatch.OpInsert:
			_, _ = fmt.Fprintln(w, color.GreenString("+%s", l.Text))
		case htmlpatch.OpDelete:
			_, _ = fmt.Fprintln(w, color.RedString("-%s", l.Text))
		case htmlpatch.OpSkip:
			_, _ = fmt.Fprintln(w, color.CyanString("@@"))
		default:
			_, _ = fmt.Fprintln(w, " "+l.Text)
		}
	}
}
