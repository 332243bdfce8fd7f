// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPassphraseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Manage the stored sync passphrase",
	}
	cmd.AddCommand(newPassphraseSetCmd(opts))
	cmd.AddCommand(newPassphraseForgetCmd(opts))
	return cmd
}

func newPassphraseSetCmd(opts *rootOptions) *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the sync passphrase in the OS keyring",
		Long:  "Stores the passphrase given with --passphrase, or the first line read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if !rt.services.Credentials.Remembers() {
				return ErrNoKeyring
			}

			if passphrase == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return ErrEmptyPassphrase
				}
				passphrase = strings.TrimRight(line, "\r\n")
			}
			if passphrase == "" {
				return ErrEmptyPassphrase
			}

			if err := rt.services.Credentials.Store(passphrase); err != nil {
				return fmt.Errorf("failed to store passphrase: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "passphrase_set"})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Passphrase stored.")
			return nil
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase to store (read from stdin if omitted)")
	return cmd
}

func newPassphraseForgetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Remove the stored sync passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap("cli")
			if err != nil {
				return err
			}
			if err := rt.services.Credentials.Forget(); err != nil {
				return fmt.Errorf("failed to remove passphrase: %w", err)
			}

			if opts.json {
				return fprintJSON(cmd.OutOrStdout(), jsonAction{OK: true, Action: "passphrase_forget"})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Passphrase removed.")
			return nil
		},
	}
}
