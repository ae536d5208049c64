// keystore/keystore.go
// ============================================================================
// KEYSTORE - Durable key-value storage on the device
// ============================================================================
// Holds the session token under the "jwtToken" key. The SQLite implementation
// backs the app; the in-memory one backs tests.
// ============================================================================

package keystore

import (
	"errors"
	"sync"
)

// TokenKey is the key the session JWT is stored under.
const TokenKey = "jwtToken"

var ErrNotFound = errors.New("key not found")

type Keystore interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Memory is an in-memory Keystore for tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
