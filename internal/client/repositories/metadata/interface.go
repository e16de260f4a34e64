// Package metadata is the key-value store backing the persisted session
// record (bearer token and serialized user profile).
package metadata

import (
	"context"
)

// Repository stores opaque byte values by key. Get returns
// common.ErrNotFound when the key is absent, so callers can distinguish
// "logged out" from an empty value.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
