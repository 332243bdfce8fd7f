// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/franny-sync/internal/client"
	"github.com/MKhiriev/franny-sync/internal/workers"
	"github.com/MKhiriev/franny-sync/models"
)

// shutdownTimeout bounds how long a stopping command waits for running jobs.
const shutdownTimeout = 10 * time.Second

func newAutoCmd(opts *rootOptions) *cobra.Command {
	var (
		minutes    int
		passphrase string
		now        bool
	)

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Enable auto-sync and run it until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("auto")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				minutes = int(rt.cfg.Workers.SyncInterval / time.Minute)
			}
			if minutes < 1 {
				return ErrInvalidMinutes
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := workers.NewWorkers(rt.cfg.Workers, rt.logger)
			app := rt.newApp(w, time.Duration(minutes)*time.Minute)
			app.Subscribe(printView(cmd, opts.json))

			if passphrase != "" {
				app.SetPassphraseInput(passphrase)
			}
			app.SetAutoSync(true, minutes)
			if now {
				app.RunSync(models.DirectionSync, "")
			}

			runErr := app.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := w.Shutdown(shutdownCtx); err != nil {
				rt.logger.Warn().Err(err).Msg("workers did not stop in time")
			}
			return runErr
		},
	}

	cmd.Flags().IntVar(&minutes, "interval", 0, "minutes between syncs (defaults to the configured interval)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "sync passphrase for this session")
	cmd.Flags().BoolVar(&now, "now", false, "sync once immediately")
	return cmd
}

// printView writes every view that carries a message, one line each.
func printView(cmd *cobra.Command, asJSON bool) client.StatusSink {
	out := cmd.OutOrStdout()
	return func(v client.View) {
		if v.Message == "" {
			return
		}
		if asJSON && v.Result != nil {
			_ = fprintJSON(out, toJSONSyncResult(*v.Result))
			return
		}
		fmt.Fprintf(out, "%s  %s\n", time.Now().Format(time.TimeOnly), v.Message)
	}
}
