package cachestore

import (
	"context"
	"time"
)

// Expiry window applied when a store is constructed without an explicit TTL.
// Matches the lifetime of a cached protected-ping decision.
const DefaultTTL = 10 * time.Minute

type CacheStore interface {
	Get(ctx context.Context, name, key string) (string, error)
	Set(ctx context.Context, name, key string, val string) error
	Purge(ctx context.Context, name, key string) error
}

// entries are namespaced so decision kinds never collide across subjects
func cacheKey(name, key string) string {
	return name + "/" + key
}
