package countstore

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
)

// In-process count store, safe under concurrent evaluations.
type MemCountStore struct {
	Counts         *xsync.MapOf[string, int]
	DistinctCounts *xsync.MapOf[string, *xsync.MapOf[string, struct{}]]
}

var _ CountStore = (*MemCountStore)(nil)

func NewMemCountStore() *MemCountStore {
	return &MemCountStore{
		Counts:         xsync.NewMapOf[string, int](),
		DistinctCounts: xsync.NewMapOf[string, *xsync.MapOf[string, struct{}]](),
	}
}

func (s *MemCountStore) GetCount(ctx context.Context, name, val, period string) (int, error) {
	v, ok := s.Counts.Load(periodBucket(name, val, period))
	if !ok {
		return 0, nil
	}
	return v, nil
}

func (s *MemCountStore) Increment(ctx context.Context, name, val string) error {
	for _, p := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		k := periodBucket(name, val, p)
		s.Counts.Compute(k, func(v int, _ bool) (int, bool) {
			return v + 1, false
		})
	}
	return nil
}

func (s *MemCountStore) GetCountDistinct(ctx context.Context, name, bucket, period string) (int, error) {
	v, ok := s.DistinctCounts.Load(periodBucket(name, bucket, period))
	if !ok {
		return 0, nil
	}
	return v.Size(), nil
}

func (s *MemCountStore) IncrementDistinct(ctx context.Context, name, bucket, val string) error {
	for _, p := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		k := periodBucket(name, bucket, p)
		m, _ := s.DistinctCounts.LoadOrCompute(k, func() *xsync.MapOf[string, struct{}] {
			return xsync.NewMapOf[string, struct{}]()
		})
		m.Store(val, struct{}{})
	}
	return nil
}
