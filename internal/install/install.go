package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ton-community/fpm/internal/fsutil"
	"github.com/ton-community/fpm/internal/git"
	"github.com/ton-community/fpm/internal/lock"
	"github.com/ton-community/fpm/internal/manifest"
	"github.com/ton-community/fpm/internal/project"
	"github.com/ton-community/fpm/internal/resolver"
	"github.com/ton-community/fpm/internal/ui"
	"go.trai.ch/zerr"
)

// Options carries the output streams for one install run. Progress and
// informational messages go to Out, warnings to Err.
type Options struct {
	Out io.Writer
	Err io.Writer
}

// resolvedPackage is the ephemeral per-dependency state built during one
// install run. Only url, version and commit survive into the lock.
type resolvedPackage struct {
	target  resolver.Target
	pkg     *manifest.Package
	commit  string
	workdir string
}

// Run executes the full install workflow against the loaded project:
// resolve, fetch and verify each dependency into staging, reconcile the
// resolved commits against the previous lock, replace the installed
// module tree, and write the new lock file.
func Run(ctx *project.Context, opts Options) error {
	deps := ctx.Manifest.Deps()
	if deps.Len() == 0 {
		_, _ = fmt.Fprintln(opts.Out, "No dependencies declared; nothing to install.")
		return nil
	}

	targets, err := resolver.Resolve(deps)
	if err != nil {
		return err
	}

	if !git.IsGitInstalled() {
		return errors.New("git is required to install dependencies but was not found on PATH")
	}

	prev, err := lock.LoadOrInit(ctx.LockPath)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(ctx.StagingDir); err != nil {
		return fmt.Errorf("clearing staging directory: %w", err)
	}
	if err := os.MkdirAll(ctx.StagingDir, 0755); err != nil { //nolint:gosec // module tree needs to be readable
		return fmt.Errorf("creating staging directory: %w", err)
	}
	// Partial clones must not leak across runs.
	defer func() { _ = os.RemoveAll(ctx.StagingDir) }()

	resolved, err := fetchAll(ctx, targets, opts)
	if err != nil {
		return err
	}

	next, err := reconcile(prev, resolved)
	if err != nil {
		return err
	}

	if err := materialize(ctx, resolved); err != nil {
		return err
	}

	if err := lock.Save(ctx.LockPath, next); err != nil {
		return err
	}

	ui.Successf(opts.Out, "Installed %d package(s).", len(resolved))
	return nil
}

// fetchAll clones and verifies every target in declaration order.
func fetchAll(ctx *project.Context, targets []resolver.Target, opts Options) ([]resolvedPackage, error) {
	progress := ui.NewProgress(opts.Out, len(targets))
	resolved := make([]resolvedPackage, 0, len(targets))
	for _, t := range targets {
		progress.Step(fmt.Sprintf("Fetching %s @ %s", t.Name, t.Version))
		rp, err := fetchOne(ctx, t, opts)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rp)
	}
	return resolved, nil
}

// fetchOne clones one target at its pinned ref into staging, verifies
// the fetched package's identity, and captures its resolved commit.
func fetchOne(ctx *project.Context, t resolver.Target, opts Options) (resolvedPackage, error) {
	dest := ctx.StagingPath(t.Name)
	if err := git.Clone(t.URL, dest, git.CloneOpts{Depth: 1, Ref: t.Version}); err != nil {
		return resolvedPackage{}, err
	}

	pkg, err := manifest.Load(filepath.Join(dest, manifest.FileName))
	if err != nil {
		return resolvedPackage{}, zerr.With(zerr.With(ErrDependencyManifest, "url", t.URL), "cause", err.Error())
	}

	if pkg.Name != t.Name {
		return resolvedPackage{}, zerr.With(zerr.With(zerr.With(ErrNameMismatch, "url", t.URL), "resolved", t.Name), "declared", pkg.Name)
	}

	warnUndeclared(ctx, pkg, opts.Err)

	commit, err := git.HeadCommit(dest)
	if err != nil {
		return resolvedPackage{}, err
	}

	return resolvedPackage{target: t, pkg: pkg, commit: commit, workdir: dest}, nil
}

// warnUndeclared reports dependencies of a fetched package that the
// top-level manifest does not declare. Nested dependencies are never
// fetched, so these are advisory only.
func warnUndeclared(ctx *project.Context, pkg *manifest.Package, errOut io.Writer) {
	for _, url := range pkg.Deps().URLs() {
		if !ctx.Manifest.Deps().Has(url) {
			ui.Warnf(errOut, "%s depends on %s, which is not declared in the top-level manifest and will not be installed", pkg.Name, url)
		}
	}
}

// reconcile builds the new lock file and checks every resolved commit
// against the previous lock. A prior entry with a different url or
// version is stale and ignored; a matching (url, version) pair with a
// different commit is a reproducibility violation. Dependencies removed
// from the manifest simply drop out of the new lock.
func reconcile(prev *lock.File, resolved []resolvedPackage) (*lock.File, error) {
	next := lock.New()
	for _, rp := range resolved {
		if old, ok := prev.Packages[rp.target.Name]; ok {
			if old.URL == rp.target.URL && old.Version == rp.target.Version && old.Commit != rp.commit {
				return nil, zerr.With(zerr.With(zerr.With(zerr.With(ErrLockMismatch,
					"url", rp.target.URL),
					"version", rp.target.Version),
					"locked", old.Commit),
					"resolved", rp.commit)
			}
		}
		next.Packages[rp.target.Name] = lock.Entry{
			URL:     rp.target.URL,
			Version: rp.target.Version,
			Commit:  rp.commit,
		}
	}
	return next, nil
}

// materialize replaces the installed module tree with the staged
// packages. Everything under the module directory except staging itself
// is owned by the installer and removed first.
func materialize(ctx *project.Context, resolved []resolvedPackage) error {
	entries, err := os.ReadDir(ctx.ModulesDir)
	if err != nil {
		return fmt.Errorf("reading module directory: %w", err)
	}
	for _, e := range entries {
		if e.Name() == project.StagingDirName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(ctx.ModulesDir, e.Name())); err != nil {
			return fmt.Errorf("removing stale module %s: %w", e.Name(), err)
		}
	}

	for _, rp := range resolved {
		src := filepath.Join(rp.workdir, rp.pkg.ContractsDir(), manifest.ExportsDirName, rp.pkg.Name)
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("package %s has no exports directory %s: %w",
				rp.pkg.Name, filepath.Join(rp.pkg.ContractsDir(), manifest.ExportsDirName, rp.pkg.Name), err)
		}
		if err := fsutil.CopyDir(src, ctx.ModuleDir(rp.pkg.Name)); err != nil {
			return fmt.Errorf("installing %s: %w", rp.pkg.Name, err)
		}
	}
	return nil
}
