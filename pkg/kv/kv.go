// Package kv provides the flat string key-value storage the session state
// persists into. The layout mirrors the browser-era storage of the original
// dashboard: three well-known keys holding a token, an identity record, and
// the account registry.
package kv

import "sync"

// Well-known keys of the persisted session state.
const (
	KeyToken    = "pacifisai_token"
	KeyIdentity = "pacifisai_user"
	KeyRegistry = "pacifisai_users"
)

// KV is a durable string-to-string map. Writes are write-through: a nil
// error means the value is persisted. There is no transactional guarantee
// across keys; concurrent writers are last-write-wins.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV keeps values in-process. Useful for tests and single-run demos.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV initializes an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value for key, reporting presence.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores a value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
