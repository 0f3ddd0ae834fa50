package cartstore

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const keyPrefix = "ecosage:cart:"

// RedisStore persists cart blobs keyed by session, one JSON document each.
// It satisfies cartengine.Store.
type RedisStore struct {
	rds *redis.Redis
	ttl time.Duration
}

func NewRedisStore(rds *redis.Redis, ttl time.Duration) *RedisStore {
	return &RedisStore{rds: rds, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionKey string) ([]byte, bool, error) {
	val, err := s.rds.GetCtx(ctx, keyPrefix+sessionKey)
	if err != nil {
		return nil, false, err
	}
	if val == "" {
		return nil, false, nil
	}
	return []byte(val), true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionKey string, blob []byte) error {
	if s.ttl > 0 {
		return s.rds.SetexCtx(ctx, keyPrefix+sessionKey, string(blob), int(s.ttl.Seconds()))
	}
	return s.rds.SetCtx(ctx, keyPrefix+sessionKey, string(blob))
}

// Drop removes a session's cart outright. Used by the expiry sweeper.
func (s *RedisStore) Drop(ctx context.Context, sessionKey string) error {
	_, err := s.rds.DelCtx(ctx, keyPrefix+sessionKey)
	return err
}
