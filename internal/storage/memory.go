package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as the degraded
// mode when the persistent store keeps failing. Like the SQL store it
// is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage

	// SetErr, when non-nil, is returned by Set until cleared. Tests use
	// it to simulate quota failures.
	SetErr error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

// Get implements Store
func (m *MemoryStore) Get(key string, out interface{}) (bool, error) {
	m.mu.Lock()
	raw, ok := m.docs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// Set implements Store
func (m *MemoryStore) Set(key string, doc interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[key] = raw
	return nil
}

// Delete implements Store
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

// Len returns the number of stored documents
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
