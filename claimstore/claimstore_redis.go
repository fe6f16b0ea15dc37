package claimstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClaimPrefix string = "claim/"

type RedisClaimStore struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ ClaimStore = (*RedisClaimStore)(nil)

func NewRedisClaimStore(redisURL string, ttl time.Duration) (*RedisClaimStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	return &RedisClaimStore{
		Client: rdb,
		TTL:    ttl,
	}, nil
}

func (s *RedisClaimStore) Claim(ctx context.Context, name, key string) (bool, error) {
	// SETNX with expiry is atomic on the redis side, which makes the claim
	// safe across multiple processes sharing one store.
	return s.Client.SetNX(ctx, redisClaimPrefix+name+"/"+key, "1", s.TTL).Result()
}
