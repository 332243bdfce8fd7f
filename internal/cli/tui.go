package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/franny-sync/internal/tui"
	"github.com/MKhiriev/franny-sync/internal/workers"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive sync monitor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("tui")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			w := workers.NewWorkers(rt.cfg.Workers, rt.logger)
			app := rt.newApp(w, rt.cfg.Workers.SyncInterval)
			ui := tui.New(app, opts.info, rt.cfg.Workers.SyncInterval, rt.logger)
			app.Subscribe(ui.Sink())

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return app.Run(gctx) })
			g.Go(func() error {
				// quitting the monitor stops the control loop
				defer cancel()
				return ui.Run(gctx)
			})
			runErr := g.Wait()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			if err := w.Shutdown(shutdownCtx); err != nil {
				rt.logger.Warn().Err(err).Msg("workers did not stop in time")
			}
			return runErr
		},
	}
}
