package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ton-community/fpm/internal/testutil"
)

func TestRunStatus_table(t *testing.T) {
	foo := testutil.CreatePackageRepo(t, "foo", nil)
	dir := setupProjectDir(t, [][2]string{{foo, "main"}})

	if _, _, err := execute(t, "--root", dir, "install"); err != nil {
		t.Fatalf("install: %v", err)
	}

	out, _, err := execute(t, "--root", dir, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "foo") {
		t.Errorf("missing dependency row:\n%s", s)
	}
	if !strings.Contains(s, "yes") {
		t.Errorf("installed dependency should show as installed:\n%s", s)
	}
}

func TestRunStatus_notInstalled(t *testing.T) {
	foo := testutil.CreatePackageRepo(t, "foo", nil)
	dir := setupProjectDir(t, [][2]string{{foo, "main"}})

	out, _, err := execute(t, "--root", dir, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out.String(), "no") {
		t.Errorf("uninstalled dependency should show as not installed:\n%s", out.String())
	}
}

func TestRunStatus_json(t *testing.T) {
	foo := testutil.CreatePackageRepo(t, "foo", nil)
	dir := setupProjectDir(t, [][2]string{{foo, "main"}})

	if _, _, err := execute(t, "--root", dir, "install"); err != nil {
		t.Fatalf("install: %v", err)
	}

	out, _, err := execute(t, "--root", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	var statuses []struct {
		Name      string `json:"name"`
		Version   string `json:"version"`
		Commit    string `json:"commit"`
		Installed bool   `json:"installed"`
	}
	if err := json.Unmarshal(out.Bytes(), &statuses); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out.String())
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	s := statuses[0]
	if s.Name != "foo" || s.Version != "main" || !s.Installed {
		t.Errorf("unexpected status: %+v", s)
	}
	if len(s.Commit) != 40 {
		t.Errorf("commit = %q, want full SHA", s.Commit)
	}
}
