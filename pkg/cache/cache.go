// Package cache abstracts the counter workloads the service keeps in
// redis: daily reward counters and post like counters. The interface is
// deliberately small; everything else talks to redis directly.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBadValue marks a key whose stored value is not a parseable integer.
// The like reconciliation run skips such keys instead of aborting.
var ErrBadValue = errors.New("cache value is not an integer")

// CounterStore is the counter surface services depend on. The redis
// implementation backs production; the memory implementation backs tests
// and local development.
type CounterStore interface {
	// Get returns the counter value and whether the key exists.
	Get(ctx context.Context, key string) (int64, bool, error)
	// Set writes value with a TTL; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value int64, ttl time.Duration) error
	// Incr atomically increments, creating the key at 1 if absent.
	Incr(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, key string) error
	// Has reports key existence without reading the value.
	Has(ctx context.Context, key string) (bool, error)
	// ScanPrefix returns every key starting with prefix.
	ScanPrefix(ctx context.Context, prefix string) ([]string, error)
}
