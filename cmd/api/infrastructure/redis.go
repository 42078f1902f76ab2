package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"users-api/internal/config"
	redisclient "users-api/pkg/redis"
)

// NewRedisClient connects to the Redis instance backing the rate limiter.
// It returns nil when rate limiting is disabled.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	if !cfg.RateLimit.Enabled {
		l.Info("rate limiting disabled, skipping Redis")
		return nil, nil
	}

	rdb, err := redisclient.NewClient(redisclient.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
