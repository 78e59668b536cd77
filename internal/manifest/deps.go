package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dependencies is a url -> version-ref mapping that preserves the
// declaration order of the manifest. Declaration order drives resolution
// and fetch order, so encoding/json's unordered map is not enough here;
// decoding walks the object tokens instead.
type Dependencies struct {
	urls map[string]string
	keys []string
}

// Len returns the number of declared dependencies.
func (d *Dependencies) Len() int {
	return len(d.keys)
}

// URLs returns the dependency identifiers in declaration order.
func (d *Dependencies) URLs() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Ref returns the version ref declared for url.
func (d *Dependencies) Ref(url string) (string, bool) {
	ref, ok := d.urls[url]
	return ref, ok
}

// Has reports whether url is declared.
func (d *Dependencies) Has(url string) bool {
	_, ok := d.urls[url]
	return ok
}

// Set declares or updates a dependency. New identifiers are appended
// after all existing ones.
func (d *Dependencies) Set(url, ref string) {
	if d.urls == nil {
		d.urls = make(map[string]string)
	}
	if _, ok := d.urls[url]; !ok {
		d.keys = append(d.keys, url)
	}
	d.urls[url] = ref
}

// UnmarshalJSON decodes a JSON object of string values, recording key
// order. Any non-string value fails the decode.
func (d *Dependencies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	*d = Dependencies{urls: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string) // object keys are always strings

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("dependency %q: expected string version ref, got %v", key, valTok)
		}
		d.Set(key, val)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the mapping as a JSON object in declaration order.
func (d Dependencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, url := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(url)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.urls[url])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
