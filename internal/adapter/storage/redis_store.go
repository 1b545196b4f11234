package storage

import (
	"context"
	"encoding/json"

	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps the session in redis with no TTL; expiry is the
// token's own concern.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) SaveToken(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, tokenKey, token, 0).Err()
}

func (s *RedisSessionStore) SaveUser(ctx context.Context, user entity.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, userKey, b, 0).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context) (string, *entity.User, bool, error) {
	token, err := s.rdb.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", nil, false, nil
	}
	if err != nil {
		return "", nil, false, err
	}

	raw, err := s.rdb.Get(ctx, userKey).Result()
	if err == redis.Nil {
		return "", nil, false, nil
	}
	if err != nil {
		return "", nil, false, err
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, false, err
	}
	return token, &user, token != "", nil
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, tokenKey, userKey).Err()
}

var _ SessionStore = (*RedisSessionStore)(nil)
