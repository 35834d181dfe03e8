package repository

import (
	"context"
	"sync"
)

// DefaultMaxValueSize mirrors the browser session-storage quota.
const DefaultMaxValueSize = 5 * 1024 * 1024

type memoryBackend struct {
	mu           sync.RWMutex
	entries      map[string]string
	maxValueSize int
}

// NewMemoryBackend returns a process-local backend. Values larger than maxValueSize
// bytes are rejected with ErrValueTooLarge; maxValueSize <= 0 selects DefaultMaxValueSize.
func NewMemoryBackend(maxValueSize int) Backend {
	if maxValueSize <= 0 {
		maxValueSize = DefaultMaxValueSize
	}
	return &memoryBackend{
		entries:      make(map[string]string),
		maxValueSize: maxValueSize,
	}
}

func (b *memoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.entries[key]
	return value, ok, nil
}

func (b *memoryBackend) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	if len(value) > b.maxValueSize {
		return ErrValueTooLarge
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	return nil
}

func (b *memoryBackend) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}
