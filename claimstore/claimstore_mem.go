package claimstore

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// In-process claim store. Expired entries are reclaimed lazily on the next
// Claim of the same key; the map never grows beyond the set of keys seen
// within one TTL window under normal operation.
type MemClaimStore struct {
	Data *xsync.MapOf[string, time.Time]
	TTL  time.Duration

	// Now is the clock used for expiry decisions. Tests substitute a
	// deterministic clock; defaults to time.Now.
	Now func() time.Time
}

var _ ClaimStore = (*MemClaimStore)(nil)

func NewMemClaimStore(ttl time.Duration) *MemClaimStore {
	return &MemClaimStore{
		Data: xsync.NewMapOf[string, time.Time](),
		TTL:  ttl,
		Now:  time.Now,
	}
}

func (s *MemClaimStore) Claim(ctx context.Context, name, key string) (bool, error) {
	now := s.Now()
	var claimed bool
	// Compute gives atomicity: two concurrent claims of the same key observe
	// the callback serially, so exactly one of them wins.
	s.Data.Compute(name+"/"+key, func(expiry time.Time, loaded bool) (time.Time, bool) {
		if loaded && now.Before(expiry) {
			claimed = false
			return expiry, false
		}
		claimed = true
		return now.Add(s.TTL), false
	})
	return claimed, nil
}
