package storage

import (
	"context"
	"sync"
)

// MemorySlots keeps slots in process memory. Nothing survives a restart.
type MemorySlots struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySlots creates an empty in-memory slot store
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: make(map[string][]byte)}
}

// Get retrieves a copy of the value stored under key
func (m *MemorySlots) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set replaces the value stored under key
func (m *MemorySlots) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (m *MemorySlots) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
