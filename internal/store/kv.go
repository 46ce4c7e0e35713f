package store

import (
	"context"
	"sync"
)

// KV is the persistence collaborator: named string slots with whole-value
// get and set. Each call is assumed atomic; there are no transactions.
type KV interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, slot string) (string, bool, error)
	// Set replaces the slot value.
	Set(ctx context.Context, slot string, value string) error
}

// MemoryKV keeps slots in process memory.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(ctx context.Context, slot string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[slot]
	return value, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(ctx context.Context, slot string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

// Close is a no-op so MemoryKV can stand in for closable backends.
func (m *MemoryKV) Close() error {
	return nil
}
