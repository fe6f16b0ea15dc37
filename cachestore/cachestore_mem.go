package cachestore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// In-process decision cache backed by an expiring LRU. The TTL does the real
// work; capacity is only a safety bound on memory if a deployment sees an
// unexpected flood of distinct subjects.
type MemCacheStore struct {
	data *expirable.LRU[string, string]
	ttl  time.Duration
}

var _ CacheStore = (*MemCacheStore)(nil)

// A non-positive ttl falls back to DefaultTTL.
func NewMemCacheStore(capacity int, ttl time.Duration) *MemCacheStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemCacheStore{
		data: expirable.NewLRU[string, string](capacity, nil, ttl),
		ttl:  ttl,
	}
}

// Get returns "" for both a missing and an expired entry; callers treat the
// empty string as "no live decision".
func (s *MemCacheStore) Get(ctx context.Context, name, key string) (string, error) {
	val, ok := s.data.Get(cacheKey(name, key))
	if !ok {
		return "", nil
	}
	return val, nil
}

func (s *MemCacheStore) Set(ctx context.Context, name, key string, val string) error {
	s.data.Add(cacheKey(name, key), val)
	return nil
}

func (s *MemCacheStore) Purge(ctx context.Context, name, key string) error {
	s.data.Remove(cacheKey(name, key))
	return nil
}
