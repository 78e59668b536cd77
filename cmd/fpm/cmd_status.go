package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/ton-community/fpm/internal/lock"
	"github.com/ton-community/fpm/internal/project"
	"github.com/ton-community/fpm/internal/resolver"
	"github.com/ton-community/fpm/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show declared dependencies, locked commits, and install state",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type depStatus struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Installed bool   `json:"installed"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	lf, err := lock.LoadOrInit(ctx.LockPath)
	if err != nil {
		return err
	}

	deps := ctx.Manifest.Deps()
	statuses := make([]depStatus, 0, deps.Len())
	for _, url := range deps.URLs() {
		name, err := resolver.LocalName(url)
		if err != nil {
			return err
		}
		ref, _ := deps.Ref(url)
		s := depStatus{Name: name, URL: url, Version: ref}
		if e, ok := lf.Packages[name]; ok {
			s.Commit = e.Commit
		}
		if info, err := os.Stat(ctx.ModuleDir(name)); err == nil && info.IsDir() {
			s.Installed = true
		}
		statuses = append(statuses, s)
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "NAME", "VERSION", "COMMIT", "INSTALLED")
	for _, s := range statuses {
		commit := s.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		state := "no"
		if s.Installed {
			state = "yes"
		}
		tbl.Row(s.Name, s.Version, commit, state)
	}
	return tbl.Flush()
}
