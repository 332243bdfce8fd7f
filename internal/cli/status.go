package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync settings and local collection sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}

			cfg := rt.services.SyncConfig.Current()
			status := jsonStatus{
				Enabled:   cfg.Enabled,
				Store:     rt.storages.SyncStore.Path(),
				Profile:   rt.cfg.App.ProfileDir,
				Keyring:   rt.backend.Available(),
				Bookmarks: len(rt.services.Collections.Bookmarks()),
				History:   len(rt.services.Collections.History()),
			}
			if cfg.LastSync != nil {
				status.LastSync = cfg.LastSync.UTC().Format(time.RFC3339)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), status)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Sync enabled:\t%t\n", status.Enabled)
			fmt.Fprintf(w, "Last sync:\t%s\n", formatLastSync(cfg.LastSync))
			fmt.Fprintf(w, "Store:\t%s\n", status.Store)
			fmt.Fprintf(w, "Profile:\t%s\n", status.Profile)
			fmt.Fprintf(w, "Keyring:\t%t\n", status.Keyring)
			fmt.Fprintf(w, "Bookmarks:\t%d\n", status.Bookmarks)
			fmt.Fprintf(w, "History:\t%d\n", status.History)
			return w.Flush()
		},
	}
}

// newEnableCmd builds "enable" or "disable", which flip the persisted
// sync flag.
func newEnableCmd(opts *rootOptions, enabled bool) *cobra.Command {
	use, short, action := "enable", "Enable sync for this profile", "sync_enable"
	if !enabled {
		use, short, action = "disable", "Disable sync for this profile", "sync_disable"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if _, err := rt.services.SyncConfig.SetEnabled(enabled); err != nil {
				return fmt.Errorf("failed to save sync settings: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: action})
			}
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Sync enabled.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Sync disabled.")
			}
			return nil
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := opts.info
			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonBuildInfo{
					Version: info.BuildVersion(),
					Date:    info.BuildDate(),
					Commit:  info.BuildCommit(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}
