package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/realmseed/internal/adapter/driven/render"
	httphandler "github.com/ericfisherdev/realmseed/internal/adapter/driving/http"
	"github.com/ericfisherdev/realmseed/internal/application"
)

func newServeCommand(d *Deps) *cobra.Command {
	var (
		addr     string
		capacity float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sprint schedule and issue previews over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = d.Config.ListenAddr
			}
			logger := slog.Default()
			h := httphandler.NewHandler(application.NewSprintPlanner(), capacity, render.DefaultScheduleLimit, logger)

			srv := &http.Server{
				Addr:              addr,
				Handler:           httphandler.NewServeMux(h, logger),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       120 * time.Second,
			}
			return serve(cmd.Context(), srv)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $REALMSEED_LISTEN_ADDR)")
	cmd.Flags().Float64Var(&capacity, "cap", application.DefaultSprintCap, "Sprint capacity in hours")
	return cmd
}

// serve runs srv until ctx is cancelled, then drains it for up to ten
// seconds.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	slog.Info("shutdown complete")
	return nil
}
