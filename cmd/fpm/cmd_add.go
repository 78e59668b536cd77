package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ton-community/fpm/internal/install"
	"github.com/ton-community/fpm/internal/manifest"
	"github.com/ton-community/fpm/internal/project"
	"github.com/ton-community/fpm/internal/resolver"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <url> <version>",
		Short: "Add a dependency to the manifest and install it",
		Args:  cobra.ExactArgs(2),
		RunE:  runAdd,
	}
}

// runAdd appends the dependency to the in-memory manifest and runs the
// full install against it. The manifest is only written back if the
// install succeeded, so the file on disk never references a dependency
// set that failed to install.
func runAdd(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	url, ref := args[0], args[1]

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	if ctx.Manifest.Deps().Has(url) {
		return fmt.Errorf("dependency %s is already declared in %s", url, manifest.FileName)
	}
	if _, err := resolver.LocalName(url); err != nil {
		return err
	}

	ctx.Manifest.Deps().Set(url, ref)

	if err := install.Run(ctx, install.Options{
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	if err := manifest.Save(ctx.ManifestPath, ctx.Manifest); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s @ %s\n", url, ref)
	return nil
}
