package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyDir_nested(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "sub", "deep"), 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"top.fc":             "top",
		"sub/inner.fc":       "inner",
		"sub/deep/bottom.fc": "bottom",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	dst := filepath.Join(t.TempDir(), "copy")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}

	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(dst, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestCopyDir_overwritesExisting(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "f.fc"), []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}

	dst := t.TempDir()
	if err := os.WriteFile(filepath.Join(dst, "f.fc"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dst, "f.fc"))
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestCopyDir_missingSource(t *testing.T) {
	err := CopyDir(filepath.Join(t.TempDir(), "absent"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFile_preservesMode(t *testing.T) {
	src := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0755); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "copy.sh")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}
