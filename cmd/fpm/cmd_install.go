package main

import (
	"github.com/spf13/cobra"
	"github.com/ton-community/fpm/internal/install"
	"github.com/ton-community/fpm/internal/project"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Fetch and install the dependencies declared in fpm-package.json",
		Args:  cobra.NoArgs,
		RunE:  runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	return install.Run(ctx, install.Options{
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}
