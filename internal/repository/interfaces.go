package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key has no stored value.
var ErrNotFound = errors.New("not found")

// KVRepo is the storage port behind the local state store: a durable
// string-to-string map. Implementations must be safe for concurrent use.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var (
	_ KVRepo = (*SQLiteKVRepo)(nil)
	_ KVRepo = (*MemoryKVRepo)(nil)
	_ KVRepo = (*FileKVRepo)(nil)
	_ KVRepo = (*RedisKVRepo)(nil)
)
