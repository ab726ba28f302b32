package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lerna",
		Short:         "Lerna-Lite: a lightweight tool for managing JavaScript monorepos",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Root directory of the monorepo")
	cmd.PersistentFlags().String("loglevel", "info", "What level of logs to report (silent, error, warn, info, verbose, silly)")
	cmd.PersistentFlags().String("log-format", "auto", "Log output format (auto, console, json)")

	cmd.AddCommand(
		newInitCmd(),
	)

	return cmd
}
