// Package kvstore wraps the durable key-value store the application
// repository persists into. The index of application ids is kept as a set so
// membership updates are atomic on the store side.
package kvstore

import "context"

// KV is the minimal surface the repositories need from the store.
type KV interface {
	// Get returns the raw value for key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error

	// AddSetMember atomically adds member to the set at key.
	AddSetMember(ctx context.Context, key, member string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
	SetSize(ctx context.Context, key string) (int64, error)
}
