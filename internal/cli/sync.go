// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/franny-sync/internal/service"
	"github.com/MKhiriev/franny-sync/models"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:       "sync [test|push|pull|sync]",
		Short:     "Run one sync against the encrypted store",
		Long:      "Runs a single sync in the foreground. The direction defaults to sync (push, then pull).",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"test", "push", "pull", "sync"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := models.DirectionSync
			if len(args) == 1 {
				d, err := models.ParseDirection(args[0])
				if err != nil {
					return err
				}
				direction = d
			}

			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}

			result := rt.services.SyncEngine.PerformSync(cmd.Context(), service.SyncRequest{
				Direction:  direction,
				Passphrase: passphrase,
				Bookmarks:  rt.storages.Collections.LoadBookmarks(),
				History:    rt.storages.Collections.LoadHistory(),
			})

			out := cmd.OutOrStdout()
			if opts.json {
				if err := fprintJSON(out, toJSONSyncResult(result)); err != nil {
					return err
				}
			} else if result.Success {
				fmt.Fprintln(out, result.Message)
			}

			if !result.Success {
				return fmt.Errorf("%w: %s", ErrSyncFailed, result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "sync passphrase (defaults to the stored one)")
	return cmd
}
