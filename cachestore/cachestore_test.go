package cachestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCacheStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemCacheStore(10, time.Hour)

	v, err := s.Get(ctx, "ping-decision", "member-1")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(s.Set(ctx, "ping-decision", "member-1", "punish"))
	v, err = s.Get(ctx, "ping-decision", "member-1")
	assert.NoError(err)
	assert.Equal("punish", v)

	// entries are namespaced by name
	v, err = s.Get(ctx, "other", "member-1")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(s.Purge(ctx, "ping-decision", "member-1"))
	v, err = s.Get(ctx, "ping-decision", "member-1")
	assert.NoError(err)
	assert.Equal("", v)
}

func TestMemCacheStoreDefaultTTL(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// zero ttl falls back to the decision-window default
	s := NewMemCacheStore(10, 0)
	assert.Equal(DefaultTTL, s.ttl)

	assert.NoError(s.Set(ctx, "ping-decision", "member-1", "punish"))
	v, err := s.Get(ctx, "ping-decision", "member-1")
	assert.NoError(err)
	assert.Equal("punish", v)
}

func TestMemCacheStoreExpiry(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemCacheStore(10, 50*time.Millisecond)
	assert.NoError(s.Set(ctx, "ping-decision", "member-1", "skip"))

	time.Sleep(100 * time.Millisecond)
	v, err := s.Get(ctx, "ping-decision", "member-1")
	assert.NoError(err)
	assert.Equal("", v)
}
