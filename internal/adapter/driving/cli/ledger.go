package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

var ledgerKinds = []string{string(model.ItemKindIssue), string(model.ItemKindLabel), string(model.ItemKindMilestone)}

func parseKind(s string) (model.ItemKind, error) {
	for _, k := range ledgerKinds {
		if s == k {
			return model.ItemKind(s), nil
		}
	}
	return "", fmt.Errorf("unknown kind %q (want one of %v)", s, ledgerKinds)
}

func newLedgerCommand(d *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect or edit the local record of created items",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "list <issue|label|milestone>",
			Short:     "List recorded items in creation order",
			Args:      cobra.ExactArgs(1),
			ValidArgs: ledgerKinds,
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				ledger, closeLedger, err := d.OpenLedger(d.Config)
				if err != nil {
					return err
				}
				defer closeQuietly(closeLedger)

				entries, err := ledger.List(cmd.Context(), kind)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					remote := ""
					if e.RemoteID > 0 {
						remote = "#" + strconv.Itoa(e.RemoteID)
					}
					rows = append(rows, []string{e.Key, remote, e.Title, e.CreatedAt.Local().Format(time.DateTime)})
				}
				out := cmd.OutOrStdout()
				heading(out, fmt.Sprintf("%d %s entries", len(entries), kind))
				renderTable(out, []string{"Key", "GitHub", "Title", "Created"}, rows)
				return nil
			},
		},
		&cobra.Command{
			Use:   "forget <issue|label|milestone> <key>...",
			Short: "Remove entries so the next seed run creates them again",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				ledger, closeLedger, err := d.OpenLedger(d.Config)
				if err != nil {
					return err
				}
				defer closeQuietly(closeLedger)

				for _, key := range args[1:] {
					if err := ledger.Forget(cmd.Context(), kind, key); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "forgot %s %s\n", kind, key)
				}
				return nil
			},
		},
	)
	return cmd
}
