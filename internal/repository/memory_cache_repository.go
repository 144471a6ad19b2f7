package repository

import (
	"context"
	"encoding/json"
	"fmt"
	gocache "github.com/patrickmn/go-cache"
	"movie-catalog/internal/util"
	"time"
)

// MemoryCacheRepository : кэш внутри процесса, используется когда Redis не настроен.
// Хранит JSON-строки, как и Redis, поэтому вызывающий код всегда получает независимую копию.
type MemoryCacheRepository struct {
	cache *gocache.Cache
}

func NewMemoryCacheRepository(cleanupInterval time.Duration) *MemoryCacheRepository {
	return &MemoryCacheRepository{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest any) (bool, error) {
	item, found := r.cache.Get(key)
	if !found {
		return false, nil
	}

	data, ok := item.(string)
	if !ok {
		return false, fmt.Errorf("[MemoryCacheRepo] неожиданный тип значения в кэше: %T", item)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, util.LogError("[MemoryCacheRepo] ошибка десериализации значения из кэша", err)
	}
	return true, nil
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("[MemoryCacheRepo] ошибка сериализации значения", err)
	}

	r.cache.Set(key, string(data), ttl)
	return nil
}

func (r *MemoryCacheRepository) Delete(_ context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}

// ItemCount : количество записей, включая истёкшие, но ещё не вычищенные
func (r *MemoryCacheRepository) ItemCount() int {
	return r.cache.ItemCount()
}
