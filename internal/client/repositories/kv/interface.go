// Package kv implements the client's durable key-value store. It holds the
// persisted cart slots (one per identity) and the auth session keys; nothing
// else in the application writes to it directly.
package kv

import (
	"context"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
