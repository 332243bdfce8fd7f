// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command-line control surface of franny-sync.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/crypto"
	"github.com/MKhiriev/franny-sync/models"
)

// rootOptions is shared by every subcommand of one root command.
type rootOptions struct {
	info    models.AppBuildInfo
	flagCfg *config.StructuredConfig
	json    bool

	// keyChain replaces the production key derivation in tests.
	keyChain crypto.KeyChain
}

// NewRootCmd builds the franny command tree.
func NewRootCmd(info models.AppBuildInfo) *cobra.Command {
	return newRootCmd(&rootOptions{info: info})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "franny",
		Short: "Encrypted bookmark and history sync",
		Long: "Synchronizes franny bookmarks and browsing history through a " +
			"passphrase-encrypted store shared by every profile of the user.",
		Version:      opts.info.BuildVersion(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("franny %s\n", opts.info.BuildVersion()))
	root.CompletionOptions.DisableDefaultCmd = true

	opts.flagCfg = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output in JSON format")

	root.AddCommand(newSyncCmd(opts))
	root.AddCommand(newAutoCmd(opts))
	root.AddCommand(newPassphraseCmd(opts))
	root.AddCommand(newBookmarksCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newEnableCmd(opts, true))
	root.AddCommand(newEnableCmd(opts, false))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newVersionCmd(opts))
	return root
}

func Execute(info models.AppBuildInfo) {
	if err := NewRootCmd(info).Execute(); err != nil {
		os.Exit(1)
	}
}
