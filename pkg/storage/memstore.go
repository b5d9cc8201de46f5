package storage

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryObjectStore implements ObjectStore in memory. Intended for tests.
type InMemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewInMemoryObjectStore creates a new in-memory object store
func NewInMemoryObjectStore() *InMemoryObjectStore {
	return &InMemoryObjectStore{
		objects: make(map[string][]byte),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// Upload stores an object
func (s *InMemoryObjectStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, upsert bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := objectKey(bucket, key)
	if _, exists := s.objects[k]; exists && !upsert {
		return fmt.Errorf("object already exists: %s", k)
	}
	s.objects[k] = append([]byte(nil), data...)
	return nil
}

// Remove deletes an object
func (s *InMemoryObjectStore) Remove(ctx context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, objectKey(bucket, key))
	return nil
}

// PublicURL derives a fake public URL
func (s *InMemoryObjectStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("mem://%s/%s", bucket, key)
}

// Has reports whether an object exists. Test helper.
func (s *InMemoryObjectStore) Has(bucket, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.objects[objectKey(bucket, key)]
	return ok
}
