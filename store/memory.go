package store

import (
	"context"
	"sync"
)

// memoryStore keeps values in process memory. It is used for demos and tests.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Store = &memoryStore{}

func NewMemoryStore() Store {
	return &memoryStore{
		values: map[string]string{},
	}
}

func (m *memoryStore) Get(_ context.Context, key string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryStore) Ping(_ context.Context) error {
	return nil
}
