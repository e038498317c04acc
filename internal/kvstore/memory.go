// Package kvstore provides key-value persistence implementations and
// the JSON read/write helpers shared by every state store.
package kvstore

import (
	"context"
	"sync"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

// Compile-time interface check.
var _ domain.KV = (*Memory)(nil)

// Memory is an in-memory key-value store. Safe for concurrent access.
// Used by tests and as the ephemeral backend.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
	log  *logger.Logger
}

// NewMemory creates an empty in-memory store.
func NewMemory(log *logger.Logger) *Memory {
	return &Memory{
		data: make(map[string]string),
		log:  log,
	}
}

// Get returns the value under key, reporting presence separately.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Debug("kv set %s (%d bytes)", key, len(value))
	m.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	m.log.Debug("kv delete %s", key)
	return nil
}
