package repository

import (
	"context"
	"errors"
)

var (
	ErrKeyEmpty      = errors.New("key cannot be empty")
	ErrValueTooLarge = errors.New("value exceeds maximum size")
)

// Backend abstracts the session-scoped key/value medium under the secure store.
// Implementations: in-memory (single instance / tests), Redis, Postgres.
// A missing key is reported as ok == false with a nil error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
