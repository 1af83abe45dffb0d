package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain/repository"
)

const searchKeyPrefix = "search:routes:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetSearch(ctx context.Context, key string) ([]byte, error) {
	return r.Get(ctx, searchKeyPrefix+key)
}

func (r *cacheRepository) SetSearch(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.Set(ctx, searchKeyPrefix+key, data, ttl)
}

// InvalidateSearch удаляет все закешированные результаты поиска маршрутов.
// Вызывается после создания маршрута, чтобы поиск не отдавал устаревший набор.
func (r *cacheRepository) InvalidateSearch(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error("Failed to invalidate search key", zap.String("key", iter.Val()), zap.Error(err))
			return fmt.Errorf("cache invalidate error: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan search keys", zap.Error(err))
		return fmt.Errorf("cache scan error: %w", err)
	}

	r.logger.Debug("Search cache invalidated")
	return nil
}
