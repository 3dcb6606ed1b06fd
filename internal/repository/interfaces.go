package repository

import "context"

// KVStore is durable string key/value storage backing the persistence bridge.
// Get returns ErrNotFound for keys that were never written.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
