// Package cli provides the command-line interface for realmseed.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/realmseed/internal/adapter/driven/github"
	sqliteadapter "github.com/ericfisherdev/realmseed/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/realmseed/internal/application"
	"github.com/ericfisherdev/realmseed/internal/config"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// Deps are the collaborators commands build on demand. Only commands that
// talk to GitHub construct a tracker or board, so the offline commands run
// without a token.
type Deps struct {
	Config *config.Config

	NewTracker func(cfg *config.Config) (driven.IssueTracker, error)
	NewBoard   func(ctx context.Context, cfg *config.Config) (driven.ProjectBoard, error)
	// OpenLedger returns the ledger and a func that releases it.
	OpenLedger func(cfg *config.Config) (driven.SeedLedger, func() error, error)
	NewPacer   func(every int, delay time.Duration) *application.Pacer
}

// DefaultDeps wires the GitHub and SQLite adapters.
func DefaultDeps(cfg *config.Config) *Deps {
	return &Deps{
		Config:     cfg,
		NewTracker: newTracker,
		NewBoard:   newBoard,
		OpenLedger: openLedger,
		NewPacer:   application.NewPacer,
	}
}

func newTracker(cfg *config.Config) (driven.IssueTracker, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return githubadapter.NewClient(cfg.GitHubToken, cfg.FullName())
}

func newBoard(ctx context.Context, cfg *config.Config) (driven.ProjectBoard, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return githubadapter.NewProjectClient(ctx, cfg.GitHubToken, cfg.FullName())
}

func openLedger(cfg *config.Config) (driven.SeedLedger, func() error, error) {
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Debug("ledger opened", "path", db.Path())
	return sqliteadapter.NewLedgerRepo(db), db.Close, nil
}

// NewRootCommand creates the root command. version is shown by --version.
func NewRootCommand(d *Deps, version string) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "realmseed",
		Short: "Seed and plan the Shadowed Realms GitHub project",
		Long: `realmseed populates the Shadowed Realms repository with labels,
milestones and catalog issues, sets up the sprint board, packs the
backlog into weekly sprints, patches the progress dashboard and
produces the revenue reports.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (main logs them)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := d.Config.LogLevel
			if debug {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level")

	root.AddCommand(
		newLabelsCommand(d),
		newMilestonesCommand(d),
		newIssuesCommand(d),
		newHierarchyCommand(d),
		newBoardCommand(d),
		newSprintsCommand(d),
		newPatchCommand(d),
		newFinanceCommand(d),
		newCheckCommand(),
		newLedgerCommand(d),
		newServeCommand(d),
	)
	return root
}

// pacer builds the configured fixed pacer, or one with the given
// override when every is positive.
func (d *Deps) pacer(every int, delay time.Duration) *application.Pacer {
	if every <= 0 {
		every, delay = d.Config.PaceEvery, d.Config.PaceDelay
	}
	return d.NewPacer(every, delay)
}

// seeder opens the ledger and, unless dryRun, a GitHub tracker. The
// returned func closes the ledger.
func (d *Deps) seeder(dryRun bool) (*application.SeedService, driven.IssueTracker, func() error, error) {
	var tracker driven.IssueTracker
	if !dryRun {
		var err error
		tracker, err = d.NewTracker(d.Config)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	ledger, closeLedger, err := d.OpenLedger(d.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	return application.NewSeedService(tracker, ledger), tracker, closeLedger, nil
}

func closeQuietly(closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Error("error closing ledger", "error", err)
	}
}
