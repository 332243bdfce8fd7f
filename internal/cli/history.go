package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage local browsing history",
	}
	cmd.AddCommand(newHistoryListCmd(opts))
	cmd.AddCommand(newHistoryRecordCmd(opts))
	cmd.AddCommand(newHistoryClearCmd(opts))
	return cmd
}

func newHistoryListCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			history := rt.services.Collections.History()
			if limit > 0 {
				history = history.Tail(limit)
			}
			return printURLs(cmd, opts.json, history)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the most recent N visits")
	return cmd
}

func newHistoryRecordCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "record <url>",
		Short: "Append a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if _, err := rt.services.Collections.RecordVisit(args[0]); err != nil {
				return fmt.Errorf("failed to record visit: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "history_record", URL: args[0]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", args[0])
			return nil
		},
	}
}

func newHistoryClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all local history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if err := rt.services.Collections.ClearHistory(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "history_clear"})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}
