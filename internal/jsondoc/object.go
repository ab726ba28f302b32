package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const defaultIndent = "  "

// Object is a JSON object whose keys keep their document order.
// Values are stored as compacted raw JSON; nested objects are decoded on demand.
type Object struct {
	pairs  *orderedmap.OrderedMap[string, json.RawMessage]
	indent string
}

// NewObject returns an empty object using the default two-space indentation.
func NewObject() *Object {
	return &Object{
		pairs:  orderedmap.New[string, json.RawMessage](),
		indent: defaultIndent,
	}
}

// Len returns the number of keys.
func (o *Object) Len() int { return o.pairs.Len() }

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.pairs.Len())
	for p := o.pairs.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.pairs.Get(key)
	return ok
}

// String returns the value under key if it is a JSON string.
func (o *Object) String(key string) (string, bool) {
	raw, ok := o.pairs.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// IsNull reports whether key is present and holds JSON null.
func (o *Object) IsNull(key string) bool {
	raw, ok := o.pairs.Get(key)
	return ok && bytes.Equal(raw, []byte("null"))
}

// Object returns a detached copy of the child object under key.
// ok is false when the key is absent or its value is not a JSON object.
// Changes to the child are only visible after SetObject.
func (o *Object) Object(key string) (child *Object, ok bool) {
	raw, present := o.pairs.Get(key)
	if !present || !isObject(raw) {
		return nil, false
	}
	child, err := decodeObject(raw)
	if err != nil {
		return nil, false
	}
	child.indent = o.indent
	return child, true
}

// SetRaw stores a raw JSON value. An existing key keeps its position;
// a new key is appended.
func (o *Object) SetRaw(key string, raw json.RawMessage) {
	o.pairs.Set(key, compact(raw))
}

// SetString stores a JSON string.
func (o *Object) SetString(key, value string) {
	o.pairs.Set(key, Quote(value))
}

// SetBool stores a JSON boolean.
func (o *Object) SetBool(key string, value bool) {
	if value {
		o.pairs.Set(key, json.RawMessage("true"))
		return
	}
	o.pairs.Set(key, json.RawMessage("false"))
}

// SetObject stores child under key.
func (o *Object) SetObject(key string, child *Object) {
	o.pairs.Set(key, child.compactBytes())
}

// SetSorted stores raw under key. An existing key is replaced in place.
// A new key is inserted before the first existing key that cmp orders after
// it, or appended when there is none.
func (o *Object) SetSorted(key string, raw json.RawMessage, cmp func(a, b string) int) {
	if _, ok := o.pairs.Get(key); ok {
		o.SetRaw(key, raw)
		return
	}

	var mark string
	found := false
	for p := o.pairs.Oldest(); p != nil; p = p.Next() {
		if cmp(key, p.Key) < 0 {
			mark, found = p.Key, true
			break
		}
	}

	o.SetRaw(key, raw)
	if found {
		// Both keys are known to exist, so MoveBefore cannot fail.
		_ = o.pairs.MoveBefore(key, mark)
	}
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	_, ok := o.pairs.Delete(key)
	return ok
}

// MarshalJSON encodes the object compactly, keys in document order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.compactBytes(), nil
}

// Marshal encodes the object with its indentation and a trailing newline.
func (o *Object) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, o.compactBytes(), "", o.indent); err != nil {
		return nil, fmt.Errorf("indenting document: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (o *Object) compactBytes() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for p := o.pairs.Oldest(); p != nil; p = p.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(Quote(p.Key))
		buf.WriteByte(':')
		buf.Write(p.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// Quote encodes s as a JSON string without HTML escaping.
func Quote(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	return bytes.TrimRight(buf.Bytes(), "\n")
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
