package project

import (
	"fmt"
	"path/filepath"

	"github.com/ton-community/fpm/internal/lock"
	"github.com/ton-community/fpm/internal/manifest"
)

// ModulesDirName is the directory under the project root that holds one
// subdirectory per installed dependency.
const ModulesDirName = "fpm_modules"

// StagingDirName is the scratch subdirectory inside the module tree
// where dependencies are fetched before being validated and promoted.
const StagingDirName = ".staging"

// Context holds the resolved paths and loaded manifest for a project.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	ModulesDir   string
	StagingDir   string
	Manifest     *manifest.Package
}

// Load resolves project paths relative to root and loads the manifest.
// The lock file is not loaded here; install reads it lazily because its
// absence is only meaningful there.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	manifestPath := filepath.Join(root, manifest.FileName)
	pkg, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	modulesDir := filepath.Join(root, ModulesDirName)
	return &Context{
		Root:         root,
		ManifestPath: manifestPath,
		LockPath:     filepath.Join(root, lock.FileName),
		ModulesDir:   modulesDir,
		StagingDir:   filepath.Join(modulesDir, StagingDirName),
		Manifest:     pkg,
	}, nil
}

// ModuleDir returns the install path for a dependency's local name.
func (c *Context) ModuleDir(name string) string {
	return filepath.Join(c.ModulesDir, name)
}

// StagingPath returns the staging checkout path for a dependency.
func (c *Context) StagingPath(name string) string {
	return filepath.Join(c.StagingDir, name)
}
