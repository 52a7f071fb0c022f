package kvstore

import (
	"context"

	"github.com/redis/go-redis/v9"

	"patrimon/internal/logger"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Get().Errorw("redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	logger.Get().Infow("redis connection successful", "address", addr)
	return rdb, nil
}
