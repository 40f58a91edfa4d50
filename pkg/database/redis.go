package database

import (
	"context"
	"fmt"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	logger.Log.Info("Redis connection established",
		zap.String("addr", rdb.Options().Addr),
		zap.Int("poolSize", cfg.PoolSize))
	return rdb, nil
}
