// Package project integrates manifest loading with path resolution. It
// provides the Context type holding the resolved project paths and the
// loaded manifest that every command operates on.
package project
