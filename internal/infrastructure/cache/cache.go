package cache

import (
	"context"
	"time"
)

// Store is the key-value contract shared by the Redis client and the
// in-memory fallback. Values are plain strings; callers marshal as needed.
type Store interface {
	// Get retrieves a value, reporting whether the key exists and is unexpired
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// SetNX stores a value only when the key is absent, reporting whether it
	// was stored. Used for sync source locks.
	SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
