// Package cache stores JSON encoded values under string keys, either in Redis
// or in process memory.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the value stored under key into dest. The boolean is false
	// on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Name() string
}
