package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ponto/internal/domain"
)

// Entries is a key -> TimeEntry mapping that remembers insertion order.
// Overwriting a key keeps its original position.
type Entries struct {
	keys   []string
	values map[string]domain.TimeEntry
}

// NewEntries creates an empty mapping.
func NewEntries() *Entries {
	return &Entries{values: make(map[string]domain.TimeEntry)}
}

// Set stores entry under key and reports whether an existing entry was replaced.
func (e *Entries) Set(key string, entry domain.TimeEntry) bool {
	_, exists := e.values[key]
	if !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = entry
	return exists
}

// Get returns the entry stored under key.
func (e *Entries) Get(key string) (domain.TimeEntry, bool) {
	entry, ok := e.values[key]
	return entry, ok
}

// Len returns the number of keys.
func (e *Entries) Len() int {
	return len(e.keys)
}

// Records returns a copy of the mapping in insertion order.
func (e *Entries) Records() []domain.Record {
	records := make([]domain.Record, 0, len(e.keys))
	for _, key := range e.keys {
		records = append(records, domain.Record{Key: key, Entry: e.values[key]})
	}
	return records
}

// MarshalJSON writes a JSON object whose member order follows insertion order.
func (e *Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping member order. A repeated member
// keeps its first position and its last value.
func (e *Entries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("entries: expected JSON object, got %v", tok)
	}

	parsed := NewEntries()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("entries: expected object key, got %v", tok)
		}

		var entry domain.TimeEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("entries: decode %q: %w", key, err)
		}
		parsed.Set(key, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = *parsed
	return nil
}
