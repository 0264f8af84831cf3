package databases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linesmerrill/emergency-dashboard/config"
)

// NewRedisClient connects to redis and pings it before handing the client out
func NewRedisClient(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPass,
		DB:       conf.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

type redisTokenStore struct {
	rdb redis.Cmdable
}

// NewRedisTokenStore keeps the token under TokenKey with no expiry
func NewRedisTokenStore(rdb redis.Cmdable) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (r *redisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.rdb.Get(ctx, TokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (r *redisTokenStore) Save(ctx context.Context, token string) error {
	return r.rdb.Set(ctx, TokenKey, token, 0).Err()
}

func (r *redisTokenStore) Clear(ctx context.Context) error {
	return r.rdb.Del(ctx, TokenKey).Err()
}
