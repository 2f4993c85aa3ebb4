package store

import (
	"context"
	"sync"
)

// MemoryKeyValueStorage is a process-local [KeyValueStorage]. It backs the
// "memory" DSN and is handy in tests.
type MemoryKeyValueStorage struct {
	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewMemoryKeyValueStorage returns an empty in-memory storage.
func NewMemoryKeyValueStorage() *MemoryKeyValueStorage {
	return &MemoryKeyValueStorage{items: make(map[string]string)}
}

func (m *MemoryKeyValueStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrStorageClosed
	}

	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryKeyValueStorage) SetItem(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}

	m.items[key] = value
	return nil
}

func (m *MemoryKeyValueStorage) RemoveItem(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}

	delete(m.items, key)
	return nil
}

// Close marks the storage as closed; later calls fail with ErrStorageClosed.
func (m *MemoryKeyValueStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
