package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fpm",
		Short:   "Dependency installer for contracts projects",
		Version: version,
		// Errors are reported once, by main.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.New("a subcommand is required")
		},
	}

	cmd.PersistentFlags().String("root", ".", "Project root directory")

	cmd.AddCommand(
		newInitCmd(),
		newInstallCmd(),
		newAddCmd(),
		newStatusCmd(),
	)

	return cmd
}
