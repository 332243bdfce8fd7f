// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBookmarksCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "Manage local bookmarks",
	}
	cmd.AddCommand(newBookmarksListCmd(opts))
	cmd.AddCommand(newBookmarksAddCmd(opts))
	cmd.AddCommand(newBookmarksRemoveCmd(opts))
	cmd.AddCommand(newBookmarksImportCmd(opts))
	cmd.AddCommand(newBookmarksExportCmd(opts))
	return cmd
}

func newBookmarksListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			return printURLs(cmd, opts.json, rt.services.Collections.Bookmarks())
		},
	}
}

func newBookmarksAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Bookmark a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			_, added, err := rt.services.Collections.AddBookmark(args[0])
			if err != nil {
				return fmt.Errorf("failed to add bookmark: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: added, Action: "bookmark_add", URL: args[0]})
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "Already bookmarked: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s\n", args[0])
			return nil
		},
	}
}

func newBookmarksRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <url>",
		Aliases: []string{"rm"},
		Short:   "Remove a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			_, removed, err := rt.services.Collections.RemoveBookmark(args[0])
			if err != nil {
				return fmt.Errorf("failed to remove bookmark: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: removed, Action: "bookmark_remove", URL: args[0]})
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Not bookmarked: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newBookmarksImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge bookmarks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			_, added, err := rt.services.Collections.ImportBookmarks(args[0])
			if err != nil {
				return fmt.Errorf("failed to import bookmarks: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "bookmark_import", Path: args[0], Count: &added})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new bookmark(s).\n", added)
			return nil
		},
	}
}

func newBookmarksExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write bookmarks to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if err := rt.services.Collections.ExportBookmarks(args[0]); err != nil {
				return fmt.Errorf("failed to export bookmarks: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "bookmark_export", Path: args[0]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported bookmarks to %s\n", args[0])
			return nil
		},
	}
}

// printURLs writes urls one per line, or as a JSON array.
func printURLs(cmd *cobra.Command, asJSON bool, urls []string) error {
	if asJSON {
		if urls == nil {
			urls = []string{}
		}
		return fprintJSON(cmd.OutOrStdout(), urls)
	}
	for _, u := range urls {
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}
	return nil
}
