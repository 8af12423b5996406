package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const contextKeyPrefix = "chat:context:"

// redisContextStore keeps session contexts in Redis with a TTL, for
// deployments that don't want widget state in Postgres.
type redisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(addr string, ttl time.Duration) ContextStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisContextStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *redisContextStore) Save(ctx context.Context, sessionID string, payload []byte) error {
	return s.client.Set(ctx, contextKeyPrefix+sessionID, payload, s.ttl).Err()
}

func (s *redisContextStore) Get(ctx context.Context, sessionID string) ([]byte, error) {
	val, err := s.client.Get(ctx, contextKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}
