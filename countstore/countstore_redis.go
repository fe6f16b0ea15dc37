package countstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	countKeyPrefix    = "count/"
	distinctKeyPrefix = "distinct/"
)

// Rolling buckets are kept a little past their period so a just-rolled-over
// bucket can still be read; total buckets never expire.
var bucketRetention = map[string]time.Duration{
	PeriodHour: 2 * time.Hour,
	PeriodDay:  48 * time.Hour,
}

// Shared counter state for multi-process deployments. Plain counters are
// redis integers; distinct counters are HyperLogLogs, so GetCountDistinct is
// an estimate.
type RedisCountStore struct {
	client *redis.Client
}

var _ CountStore = (*RedisCountStore)(nil)

func NewRedisCountStore(redisURL string) (*RedisCountStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// fail at construction on a bad connection, not on the first increment
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RedisCountStore{client: rdb}, nil
}

func (s *RedisCountStore) GetCount(ctx context.Context, name, val, period string) (int, error) {
	c, err := s.client.Get(ctx, countKeyPrefix+periodBucket(name, val, period)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c, nil
}

// Increment bumps every period bucket for the counter in one round-trip.
func (s *RedisCountStore) Increment(ctx context.Context, name, val string) error {
	pipe := s.client.Pipeline()
	for _, period := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		key := countKeyPrefix + periodBucket(name, val, period)
		pipe.Incr(ctx, key)
		if retention, ok := bucketRetention[period]; ok {
			pipe.Expire(ctx, key, retention)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisCountStore) GetCountDistinct(ctx context.Context, name, bucket, period string) (int, error) {
	c, err := s.client.PFCount(ctx, distinctKeyPrefix+periodBucket(name, bucket, period)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

func (s *RedisCountStore) IncrementDistinct(ctx context.Context, name, bucket, val string) error {
	pipe := s.client.Pipeline()
	for _, period := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		key := distinctKeyPrefix + periodBucket(name, bucket, period)
		pipe.PFAdd(ctx, key, val)
		if retention, ok := bucketRetention[period]; ok {
			pipe.Expire(ctx, key, retention)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}
