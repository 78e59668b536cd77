package project

import (
	"path/filepath"
	"testing"

	"github.com/ton-community/fpm/internal/manifest"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	pkg := &manifest.Package{Name: "wallet"}
	if err := manifest.Save(filepath.Join(dir, manifest.FileName), pkg); err != nil {
		t.Fatal(err)
	}

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Manifest.Name != "wallet" {
		t.Errorf("manifest name = %q, want wallet", ctx.Manifest.Name)
	}
	if ctx.ModulesDir != filepath.Join(ctx.Root, ModulesDirName) {
		t.Errorf("modules dir = %q", ctx.ModulesDir)
	}
	if ctx.StagingDir != filepath.Join(ctx.ModulesDir, StagingDirName) {
		t.Errorf("staging dir = %q", ctx.StagingDir)
	}
	if ctx.ModuleDir("foo") != filepath.Join(ctx.ModulesDir, "foo") {
		t.Errorf("module dir = %q", ctx.ModuleDir("foo"))
	}
	if ctx.StagingPath("foo") != filepath.Join(ctx.StagingDir, "foo") {
		t.Errorf("staging path = %q", ctx.StagingPath("foo"))
	}
}

func TestLoad_missingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
