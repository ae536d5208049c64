package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/PaynestHQ/paynest-mobile/models"
)

// MemoryStore is an in-memory UserStore used by unit and integration tests,
// and by the server when no DATABASE_URL is configured (local development).
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by user ID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]models.User)}
}

func (m *MemoryStore) CreateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
		if user.PhoneNumber != "" && existing.PhoneNumber == user.PhoneNumber {
			return ErrDuplicate
		}
	}

	m.users[user.ID] = user
	return nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *MemoryStore) SetVerified(_ context.Context, id, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}

	switch channel {
	case "phone":
		user.PhoneVerified = true
	default:
		user.EmailVerified = true
	}
	user.UpdatedAt = time.Now()
	m.users[id] = user
	return nil
}

func (m *MemoryStore) AdvanceCodeCounter(_ context.Context, id string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return 0, ErrNotFound
	}

	user.CodeCounter++
	user.UpdatedAt = time.Now()
	m.users[id] = user
	return user.CodeCounter, nil
}
