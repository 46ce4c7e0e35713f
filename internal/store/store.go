// Package store holds the timesheet mapping: loaded once from a KV slot,
// changed in memory, and written back whole on every save.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"ponto/internal/domain"
	"ponto/internal/errors"
	"ponto/internal/logging"
)

// DefaultSlot is the slot holding the timesheet.
const DefaultSlot = "folhaDePonto"

// Store owns the in-memory mapping and its persistence slot.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	slot    string
	entries *Entries
}

// Open creates a store bound to slot and loads it.
func Open(ctx context.Context, kv KV, slot string) *Store {
	s := &Store{kv: kv, slot: slot, entries: NewEntries()}
	s.Load(ctx)
	return s
}

// Slot returns the persistence slot name.
func (s *Store) Slot() string {
	return s.slot
}

// Load replaces the in-memory mapping with the persisted one. A missing,
// unreadable or malformed slot yields an empty mapping.
func (s *Store) Load(ctx context.Context) {
	entries := Read(ctx, s.kv, s.slot)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Save merges entry under key, replacing any previous entry with that key,
// and persists the entire mapping in one write. On a persistence error the
// in-memory mapping keeps the new entry.
func (s *Store) Save(ctx context.Context, key string, entry domain.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if replaced := s.entries.Set(key, entry); replaced {
		logging.Debugf("replacing entry %q", key)
	}

	data, err := json.Marshal(s.entries)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "encode entries")
	}
	if err := s.kv.Set(ctx, s.slot, string(data)); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewDatabaseError("write slot "+s.slot, err)
	}
	return nil
}

// All returns the mapping in insertion order for read-only use.
func (s *Store) All() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Records()
}

// Get returns the entry stored under key.
func (s *Store) Get(key string) (domain.TimeEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Get(key)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Len()
}

// Read loads the persisted mapping directly from kv, bypassing any Store.
// It never fails: problems are logged and an empty mapping is returned.
func Read(ctx context.Context, kv KV, slot string) *Entries {
	raw, ok, err := kv.Get(ctx, slot)
	if err != nil {
		logging.Logger().Warn("could not read timesheet slot, starting empty", "slot", slot, "err", err)
		return NewEntries()
	}
	if !ok || raw == "" {
		logging.Debugf("slot %q is empty", slot)
		return NewEntries()
	}

	entries := NewEntries()
	if err := json.Unmarshal([]byte(raw), entries); err != nil {
		logging.Logger().Warn("malformed timesheet slot, starting empty", "slot", slot, "err", err)
		return NewEntries()
	}

	logging.Debugf("loaded %d entries from slot %q", entries.Len(), slot)
	return entries
}
