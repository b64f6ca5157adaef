package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore implements the ObjectStore interface with an in-process map.
// It is used in tests and wherever a real object store is unavailable.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	fetches int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

// PutObject stores data under bucket/key, replacing any existing object.
func (m *MemoryStore) PutObject(bucket, key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectPath(bucket, key)] = data
}

// FetchObject retrieves the object at bucket/key.
// Returns an error if the object does not exist.
func (m *MemoryStore) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := validateObjectRef(bucket, key); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.fetches++
	data, exists := m.objects[objectPath(bucket, key)]
	m.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("object %s does not exist in bucket %s", key, bucket)
	}
	return data, nil
}

// FetchCount reports how many times FetchObject has been called.
func (m *MemoryStore) FetchCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetches
}

// Close implements ObjectStore. It is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

func objectPath(bucket, key string) string {
	return bucket + "/" + key
}
