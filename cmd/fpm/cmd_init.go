package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ton-community/fpm/internal/manifest"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new fpm-package.json interactively",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing manifest")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	force, _ := cmd.Flags().GetBool("force")

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}
	manifestPath := filepath.Join(root, manifest.FileName)

	if _, err := os.Stat(manifestPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", manifest.FileName)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive init requires a TTY")
	}

	pkg, err := interactiveNewPackage(filepath.Base(root))
	if err != nil {
		return fmt.Errorf("interactive setup: %w", err)
	}

	// Build the manifest before touching the filesystem so an aborted
	// prompt leaves no empty directories behind.
	if err := os.MkdirAll(root, 0755); err != nil { //nolint:gosec // project dir needs to be world-readable
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := manifest.Save(manifestPath, pkg); err != nil {
		return err
	}

	exports := filepath.Join(root, pkg.ContractsDir(), manifest.ExportsDirName, pkg.Name)
	if err := os.MkdirAll(exports, 0755); err != nil { //nolint:gosec // contracts dir needs to be readable
		return fmt.Errorf("creating exports directory: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Package %q created at %s\n", pkg.Name, root)
	return nil
}
