package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRefreshNotFound is returned when a refresh token id is absent,
// expired, or already consumed.
var ErrRefreshNotFound = errors.New("refresh token not found")

// RefreshStore tracks outstanding refresh token ids. Consume is
// one-shot: a rotated or replayed token id is rejected.
type RefreshStore interface {
	Save(ctx context.Context, tokenID, accountID string, ttl time.Duration) error
	Consume(ctx context.Context, tokenID string) (string, error)
}

const refreshKeyPrefix = "refresh:"

type redisRefreshStore struct {
	client *redis.Client
}

// NewRedisRefreshStore backs the allowlist with redis; TTL expiry
// matches the token lifetime so stale entries clean themselves up.
func NewRedisRefreshStore(client *redis.Client) RefreshStore {
	return &redisRefreshStore{client: client}
}

func (s *redisRefreshStore) Save(ctx context.Context, tokenID, accountID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+tokenID, accountID, ttl).Err()
}

func (s *redisRefreshStore) Consume(ctx context.Context, tokenID string) (string, error) {
	accountID, err := s.client.GetDel(ctx, refreshKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return "", ErrRefreshNotFound
	}
	if err != nil {
		return "", err
	}
	return accountID, nil
}
