package credentialstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend é usado nos testes e como cache do LayeredBackend
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, ownerID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[ownerID][key]
	return value, ok, nil
}

func (m *MemoryBackend) Put(_ context.Context, ownerID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.values[ownerID]
	if !ok {
		owner = make(map[string]string)
		m.values[ownerID] = owner
	}
	owner[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, ownerID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.values[ownerID]
	if !ok {
		return nil
	}
	delete(owner, key)
	if len(owner) == 0 {
		delete(m.values, ownerID)
	}
	return nil
}

func (m *MemoryBackend) Owners(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owners := make([]string, 0, len(m.values))
	for owner := range m.values {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners, nil
}
