package lock

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrInit_missingFile(t *testing.T) {
	lf, err := LoadOrInit(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lf.Version != Version {
		t.Errorf("version = %d, want %d", lf.Version, Version)
	}
	if len(lf.Packages) != 0 {
		t.Errorf("packages = %v, want empty", lf.Packages)
	}
}

func TestLoadOrInit_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadOrInit(path)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}

func TestParse_valid(t *testing.T) {
	data := []byte(`{
  "version": 1,
  "packages": {
    "foo": {
      "url": "https://example.com/org/foo.git",
      "version": "v1.0.0",
      "commit": "0123456789abcdef0123456789abcdef01234567"
    }
  }
}`)
	lf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := lf.Packages["foo"]
	if !ok {
		t.Fatal("missing foo entry")
	}
	if e.Version != "v1.0.0" {
		t.Errorf("version = %q, want v1.0.0", e.Version)
	}
}

func TestParse_schemaViolations(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"wrong version", `{"version": 2, "packages": {}}`},
		{"missing version", `{"packages": {}}`},
		{"entry missing commit", `{"version": 1, "packages": {"foo": {"url": "u", "version": "v"}}}`},
		{"entry missing url", `{"version": 1, "packages": {"foo": {"version": "v", "commit": "c"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("err = %v, want ErrSchema", err)
			}
		})
	}
}

func TestSave_deterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	lf := New()
	lf.Packages["zeta"] = Entry{URL: "z", Version: "v1", Commit: "c1"}
	lf.Packages["alpha"] = Entry{URL: "a", Version: "v2", Commit: "c2"}

	if err := Save(first, lf); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := Save(second, lf); err != nil {
		t.Fatalf("save: %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("two saves of the same lock should be byte-identical")
	}
	// Map keys marshal sorted, so alpha comes before zeta.
	if bytes.Index(a, []byte("alpha")) > bytes.Index(a, []byte("zeta")) {
		t.Error("package names should be sorted in the output")
	}
	if !bytes.Contains(a, []byte("\n  \"version\": 1")) {
		t.Errorf("expected 2-space indentation, got:\n%s", a)
	}
}

func TestSave_thenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	lf := New()
	lf.Packages["foo"] = Entry{URL: "u", Version: "v", Commit: "c"}
	if err := Save(path, lf); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Packages["foo"] != lf.Packages["foo"] {
		t.Errorf("round trip mismatch: %+v", back.Packages["foo"])
	}
}
