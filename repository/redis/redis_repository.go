package redis

import (
	"context"
	"time"

	redisclient "github.com/hendrawans/marketplace/cmd/redis"
)

// RedisRepository stores login sessions keyed by token id.
type RedisRepository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

func NewRepository() RedisRepository {
	return &redis{}
}

func (r *redis) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "session:"+sessionID, userID, ttl).Err()
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	return client.Get(ctx, "session:"+sessionID).Result()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "session:"+sessionID).Err()
}
