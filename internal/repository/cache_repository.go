package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"movie-catalog/config"
	"movie-catalog/internal/util"
	"time"
)

// CacheRepository : кэш поверх Redis, значения хранятся строкой JSON
type CacheRepository struct {
	client *config.RedisClient
}

func NewCacheRepository(rdb *config.RedisClient) *CacheRepository {
	return &CacheRepository{rdb}
}

// Get : false без ошибки, если ключа нет
func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, util.LogError("[CacheRepo] ошибка получения значения из Redis", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, util.LogError("[CacheRepo] ошибка десериализации значения из кэша", err)
	}
	return true, nil
}

func (r *CacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации значения", err)
	}

	cmd := r.client.Client.Set(ctx, key, data, ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("[CacheRepo] неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

// Delete : удаление отсутствующего ключа не является ошибкой
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Client.Del(ctx, key).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления ключа из Redis", err)
	}
	return nil
}
