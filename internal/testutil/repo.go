// Package testutil creates bare git repositories containing valid fpm
// packages, for use as install sources in tests.
package testutil

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreatePackageRepo creates a bare git repository holding an fpm package
// named name. The bare path ends in <name>.git so the resolver derives
// the same name from it. deps, if non-nil, becomes the package's own
// dependencies mapping. Returns the path to the bare repo.
func CreatePackageRepo(t *testing.T, name string, deps map[string]string) string {
	t.Helper()
	return CreatePackageRepoNamed(t, name, name, deps)
}

// CreatePackageRepoNamed creates a bare repo at <repoName>.git whose
// manifest declares manifestName. The two differ only in tests that
// exercise the identity check.
func CreatePackageRepoNamed(t *testing.T, repoName, manifestName string, deps map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, repoName+".git")

	// Create a working repo first, then clone it bare.
	work := filepath.Join(dir, "work")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	writePackageManifest(t, work, manifestName, deps)

	exports := filepath.Join(work, "contracts", "exports", manifestName)
	if err := os.MkdirAll(exports, 0755); err != nil {
		t.Fatal(err)
	}
	contract := filepath.Join(exports, manifestName+".fc")
	if err := os.WriteFile(contract, []byte(";; "+manifestName+"\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")

	run(t, dir, "git", "clone", "--bare", work, bare)
	return bare
}

// CreateBareRepo creates a bare repo at <repoName>.git that is not an
// fpm package: it holds a single README and no manifest.
func CreateBareRepo(t *testing.T, repoName string) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, repoName+".git")

	work := filepath.Join(dir, "work")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	readme := filepath.Join(work, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")

	run(t, dir, "git", "clone", "--bare", work, bare)
	return bare
}

// AdvanceHead pushes a new commit to the bare repo's main branch, moving
// the ref tip so a re-resolution yields a different commit.
func AdvanceHead(t *testing.T, bare string) {
	t.Helper()
	work := filepath.Join(t.TempDir(), "advance")
	run(t, filepath.Dir(work), "git", "clone", bare, work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	note := filepath.Join(work, "NOTES.md")
	if err := os.WriteFile(note, []byte("moved\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "advance")
	run(t, work, "git", "push", "origin", "main")
}

func writePackageManifest(t *testing.T, dir, name string, deps map[string]string) {
	t.Helper()
	m := map[string]any{
		"name":      name,
		"contracts": "contracts",
	}
	if len(deps) > 0 {
		m["dependencies"] = deps
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "fpm-package.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
