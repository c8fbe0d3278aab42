package history

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	// HashKey identifies the track a history entry refers to.
	HashKey = "metadataHash"
	// RatingKey holds the star rating of a history entry.
	RatingKey = "rating"
)

// Record is one history entry. Fields keep the order they were read in and
// their values are kept as raw JSON, so anything this tool does not know
// about is written back byte for byte (modulo indentation).
//
// An element of the history array that is not an object is kept in raw and
// has no fields.
type Record struct {
	keys   []string
	values map[string]json.RawMessage
	raw    json.RawMessage
}

// NewRecord builds a record from key/value pairs; values are marshalled to
// JSON. It is meant for tests and fixtures.
func NewRecord(kv ...any) (Record, error) {
	if len(kv)%2 != 0 {
		return Record{}, fmt.Errorf("odd number of arguments: %d", len(kv))
	}
	r := Record{values: make(map[string]json.RawMessage, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return Record{}, fmt.Errorf("key %v is not a string", kv[i])
		}
		v, err := json.Marshal(kv[i+1])
		if err != nil {
			return Record{}, fmt.Errorf("marshal %s: %w", k, err)
		}
		r.set(k, v)
	}
	return r, nil
}

// IsObject reports whether the record was read from a JSON object.
func (r Record) IsObject() bool {
	return r.raw == nil
}

// Has reports whether the field is present.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the raw JSON value of a field.
func (r Record) Get(key string) (json.RawMessage, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Without returns a copy of the record minus the given field.
func (r Record) Without(key string) Record {
	if !r.IsObject() {
		return Record{raw: append(json.RawMessage(nil), r.raw...)}
	}
	out := Record{values: make(map[string]json.RawMessage, len(r.keys))}
	for _, k := range r.keys {
		if k == key {
			continue
		}
		out.set(k, append(json.RawMessage(nil), r.values[k]...))
	}
	return out
}

func (r *Record) set(key string, value json.RawMessage) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate keys keep the position
// of their first occurrence and the value of the last, like most decoders.
func (r *Record) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		r.keys = nil
		r.values = nil
		r.raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return err
	}

	r.raw = nil
	r.keys = nil
	r.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		r.set(key, value)
	}
	_, err := dec.Token()
	return err
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	if !r.IsObject() {
		return r.raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(r.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
