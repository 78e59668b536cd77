package lock

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// ErrSchema is returned when a lock file fails structural validation.
var ErrSchema = zerr.New("lock file does not match the fpm-lock.json schema")

// LoadOrInit reads an fpm-lock.json file. A missing file is not an
// error: it yields an empty lock, the state before any install. Every
// other read or parse failure propagates.
func LoadOrInit(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a project lock file path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates fpm-lock.json content.
func Parse(data []byte) (*File, error) {
	var lf File
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, zerr.With(zerr.With(ErrSchema, "field", "(root)"), "cause", err.Error())
	}
	if lf.Version != Version {
		return nil, zerr.With(zerr.With(zerr.With(ErrSchema, "field", "version"), "want", Version), "got", lf.Version)
	}
	if lf.Packages == nil {
		lf.Packages = make(map[string]Entry)
	}
	for name, e := range lf.Packages {
		if e.URL == "" || e.Version == "" || e.Commit == "" {
			return nil, zerr.With(zerr.With(ErrSchema, "field", "packages."+name), "want", "url, version and commit")
		}
	}
	return &lf, nil
}

// Save writes the lock file with 2-space indentation and sorted package
// names, so identical inputs always produce byte-identical output.
func Save(path string, lf *File) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lf); err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil { //nolint:gosec // lock file needs to be readable
		return fmt.Errorf("writing lock file: %w", err)
	}
	return nil
}
