package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы кеширования
type CacheRepository interface {
	// Get возвращает значение по ключу (nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение по ключу
	Delete(ctx context.Context, key string) error

	// GetSearch возвращает закешированный результат поиска маршрутов
	GetSearch(ctx context.Context, key string) ([]byte, error)

	// SetSearch кеширует результат поиска маршрутов
	SetSearch(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// InvalidateSearch сбрасывает кеш поиска (вызывается при создании маршрута)
	InvalidateSearch(ctx context.Context) error
}
