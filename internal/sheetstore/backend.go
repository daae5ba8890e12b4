package sheetstore

import (
	"context"
	"sync"
)

// Backend is a string-keyed blob store with a single persistent slot per key.
type Backend interface {
	// Get returns the blob stored under key, or false when the key is unset.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key, value string) error
	// Close releases the backend's resources.
	Close() error
}

// Memory is an in-process Backend used by tests and dry runs.
type Memory struct {
	mu    sync.Mutex
	blobs map[string]string
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.blobs[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
