package install

import "go.trai.ch/zerr"

var (
	// ErrDependencyManifest is returned when a fetched dependency lacks
	// a valid fpm-package.json of its own.
	ErrDependencyManifest = zerr.New("fetched dependency has no valid fpm-package.json")

	// ErrNameMismatch is returned when a fetched package declares a name
	// different from the one derived from its identifier. Without this
	// check a dependency could silently rename itself relative to how
	// the parent references it.
	ErrNameMismatch = zerr.New("fetched package name does not match the name derived from its identifier")

	// ErrLockMismatch is returned when a previously locked (url, version)
	// pair resolves to a different commit. A moving branch tip is
	// surfaced as an error, never silently accepted.
	ErrLockMismatch = zerr.New("locked ref resolved to a different commit")
)
