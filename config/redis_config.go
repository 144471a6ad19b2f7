package config

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient : создаёт клиента Redis.
// Недоступность Redis при старте не фатальна: ошибка логируется, а запросы к кэшу вернут ошибку позже.
func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("не задан адрес Redis")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Error("Redis недоступен при старте", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		zap.L().Info("подключение к Redis успешно выполнено", zap.String("addr", cfg.Addr))
	}

	return &RedisClient{Client: client}, nil
}

func (r *RedisClient) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с Redis: %w", err)
	}
	return nil
}
