package ports

import (
	"context"
	"time"
)

// CacheRepository : ключ-значение кэш (Redis или in-memory).
// Значения сериализуются в JSON; промах не является ошибкой.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
