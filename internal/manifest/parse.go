package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.trai.ch/zerr"
)

// ErrSchema is returned when a manifest fails structural validation.
// The offending field path and expected shape are attached as metadata.
var ErrSchema = zerr.New("manifest does not match the fpm-package.json schema")

// Load reads and validates an fpm-package.json file.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a project manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates fpm-package.json content. The schema is
// fixed but tolerant of unknown fields: only missing required fields and
// type violations are errors.
func Parse(data []byte) (*Package, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.With(zerr.With(ErrSchema, "field", "(root)"), "want", "JSON object"), "cause", err.Error())
	}

	var pkg Package

	nameRaw, ok := raw["name"]
	if !ok {
		return nil, zerr.With(zerr.With(ErrSchema, "field", "name"), "want", "non-empty string")
	}
	if err := json.Unmarshal(nameRaw, &pkg.Name); err != nil || pkg.Name == "" {
		return nil, zerr.With(zerr.With(ErrSchema, "field", "name"), "want", "non-empty string")
	}

	if contractsRaw, ok := raw["contracts"]; ok {
		if err := json.Unmarshal(contractsRaw, &pkg.Contracts); err != nil {
			return nil, zerr.With(zerr.With(ErrSchema, "field", "contracts"), "want", "string path")
		}
	}

	if depsRaw, ok := raw["dependencies"]; ok {
		if err := json.Unmarshal(depsRaw, &pkg.Dependencies); err != nil {
			return nil, zerr.With(zerr.With(zerr.With(ErrSchema, "field", "dependencies"), "want", "object of string refs"), "cause", err.Error())
		}
	}

	return &pkg, nil
}

// Save validates and writes a manifest to disk with 2-space indentation,
// preserving dependency declaration order.
func Save(path string, pkg *Package) error {
	if pkg.Name == "" {
		return zerr.With(zerr.With(ErrSchema, "field", "name"), "want", "non-empty string")
	}
	data, err := Marshal(pkg)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest file needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Marshal serializes a manifest with the fixed field order (name,
// contracts, dependencies) and 2-space indentation.
func Marshal(pkg *Package) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')

	name, err := json.Marshal(pkg.Name)
	if err != nil {
		return nil, err
	}
	compact.WriteString(`"name":`)
	compact.Write(name)

	if pkg.Contracts != "" {
		contracts, err := json.Marshal(pkg.Contracts)
		if err != nil {
			return nil, err
		}
		compact.WriteString(`,"contracts":`)
		compact.Write(contracts)
	}

	if pkg.Dependencies.Len() > 0 {
		deps, err := json.Marshal(pkg.Dependencies)
		if err != nil {
			return nil, err
		}
		compact.WriteString(`,"dependencies":`)
		compact.Write(deps)
	}

	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
