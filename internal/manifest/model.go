package manifest

// FileName is the manifest file name expected at the project root and
// inside every fetched dependency.
const FileName = "fpm-package.json"

// DefaultContractsDir is used when the manifest omits the contracts field.
const DefaultContractsDir = "contracts"

// ExportsDirName is the subdirectory inside a package's contracts tree
// that holds the artifacts consumers install.
const ExportsDirName = "exports"

// Package represents the fpm-package.json manifest.
type Package struct {
	Name         string
	Contracts    string
	Dependencies Dependencies
}

// ContractsDir returns the contracts directory, applying the default when
// the field was omitted. The parsed value itself is not mutated so the
// manifest round-trips exactly as written.
func (p *Package) ContractsDir() string {
	if p.Contracts == "" {
		return DefaultContractsDir
	}
	return p.Contracts
}

// Deps returns the dependency mapping. The pointer is live: Set on the
// returned value updates the package.
func (p *Package) Deps() *Dependencies {
	return &p.Dependencies
}
