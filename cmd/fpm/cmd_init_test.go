package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit_requiresTTY(t *testing.T) {
	dir := t.TempDir()

	// Test processes never have a TTY on stdin.
	_, _, err := execute(t, "--root", dir, "init")
	if err == nil {
		t.Fatal("expected error without a TTY")
	}
	if !strings.Contains(err.Error(), "TTY") {
		t.Errorf("err = %v, want TTY requirement", err)
	}
}

func TestRunInit_existingManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fpm-package.json")
	if err := os.WriteFile(path, []byte(`{"name": "existing"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "--root", dir, "init")
	if err == nil {
		t.Fatal("expected error for existing manifest without --force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v, want already-exists message", err)
	}
}
