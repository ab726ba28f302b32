package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrNotObject is returned when a document's top-level value is not a JSON object.
var ErrNotObject = errors.New("top-level value is not a JSON object")

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes a JSON document. A leading UTF-8 byte order mark is ignored.
// Empty or whitespace-only input yields an empty object. The document's
// indentation is remembered for Marshal.
func Parse(data []byte) (*Object, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return NewObject(), nil
	}
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	obj.indent = detectIndent(data)
	return obj, nil
}

// Load reads the document at path. A missing file yields an empty object
// and exists == false.
func Load(path string) (obj *Object, exists bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a workspace document path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewObject(), false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	obj, err = Parse(data)
	if err != nil {
		return nil, true, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, true, nil
}

// Save writes the document to path, replacing any existing file atomically.
func Save(path string, obj *Object) error {
	data, err := obj.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func decodeObject(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding JSON: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding JSON value for %q: %w", key, err)
		}
		obj.SetRaw(key, raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding JSON: unexpected data after top-level object")
	}
	return obj, nil
}

// detectIndent returns the leading whitespace of the first indented line,
// or the default indentation when the document has none.
func detectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return defaultIndent
}
