package storage

import (
	"context"
	"errors"
	"sync"
	"time"
)

// InMemoryObjectStorage keeps objects in a map. Used by tests and by
// development setups without an S3 backend.
type InMemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	BaseURL string
}

// NewInMemoryObjectStorage creates a new in-memory object storage
func NewInMemoryObjectStorage() *InMemoryObjectStorage {
	return &InMemoryObjectStorage{
		objects: make(map[string][]byte),
		BaseURL: "https://storage.local",
	}
}

// Upload stores an object in memory
func (s *InMemoryObjectStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[storageKey] = buf
	return nil
}

// GenerateDownloadURL returns a fake URL for the object
func (s *InMemoryObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/" + storageKey, expiresAt, nil
}

// DeleteObject removes an object
func (s *InMemoryObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// ObjectExists reports whether an object is stored
func (s *InMemoryObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}

// Get returns a stored object's bytes, for test assertions
func (s *InMemoryObjectStorage) Get(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}
