package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKVRepo keeps values in process memory. Used by tests and by the
// "memory" store backend.
type MemoryKVRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{values: map[string]string{}}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

func (r *MemoryKVRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *MemoryKVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}
