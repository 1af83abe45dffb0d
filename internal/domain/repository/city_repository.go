package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// CityRepository определяет методы для работы со справочником городов
type CityRepository interface {
	// Create создаёт город
	Create(ctx context.Context, city *domain.City) error

	// GetByID возвращает город по ID
	GetByID(ctx context.Context, id int64) (*domain.City, error)

	// GetByName возвращает город по уникальному имени
	GetByName(ctx context.Context, name string) (*domain.City, error)

	// List возвращает все города
	List(ctx context.Context) ([]*domain.City, error)
}

// ArrivalPointRepository определяет методы для работы с точками прибытия
type ArrivalPointRepository interface {
	// Create создаёт точку прибытия
	Create(ctx context.Context, point *domain.ArrivalPoint) error

	// GetByID возвращает точку прибытия с именем города
	GetByID(ctx context.Context, id int64) (*domain.ArrivalPoint, error)

	// List возвращает все точки прибытия
	List(ctx context.Context) ([]*domain.ArrivalPoint, error)
}
