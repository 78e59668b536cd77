// Package resolver derives local module names from dependency source
// identifiers and rejects ambiguous declarations before any network or
// filesystem work happens.
package resolver

import (
	"strings"

	"github.com/ton-community/fpm/internal/manifest"
	"go.trai.ch/zerr"
)

// VCSSuffix is stripped from the last path component of an identifier
// when deriving the local name.
const VCSSuffix = ".git"

var (
	// ErrEmptyName is returned when an identifier yields no usable
	// local name (empty, "." or "..").
	ErrEmptyName = zerr.New("cannot derive a local name from dependency identifier")

	// ErrDuplicateName is returned when two distinct identifiers derive
	// the same local name.
	ErrDuplicateName = zerr.New("two dependencies resolve to the same local name")
)

// Target is a concrete fetch target for one declared dependency.
type Target struct {
	Name    string
	URL     string
	Version string
}

// LocalName derives the module directory name for a dependency: the
// substring after the last path separator, with a trailing .git
// stripped. An identifier like "https://example.com/org/foo.git"
// therefore installs as "foo".
func LocalName(url string) (string, error) {
	name := url
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, VCSSuffix)
	if name == "" || name == "." || name == ".." {
		return "", zerr.With(ErrEmptyName, "identifier", url)
	}
	return name, nil
}

// Resolve turns the declared dependency mapping into fetch targets,
// preserving declaration order. It fails if any identifier yields an
// empty name or if two identifiers collide on the same name.
func Resolve(deps *manifest.Dependencies) ([]Target, error) {
	targets := make([]Target, 0, deps.Len())
	byName := make(map[string]string, deps.Len())

	for _, url := range deps.URLs() {
		name, err := LocalName(url)
		if err != nil {
			return nil, err
		}
		if prev, ok := byName[name]; ok {
			return nil, zerr.With(zerr.With(zerr.With(ErrDuplicateName, "name", name), "first", prev), "second", url)
		}
		byName[name] = url

		ref, _ := deps.Ref(url)
		targets = append(targets, Target{Name: name, URL: url, Version: ref})
	}

	return targets, nil
}
