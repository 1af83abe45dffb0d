package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// RouteRepository определяет методы для работы с маршрутами и остановками
type RouteRepository interface {
	// CreateWithStops атомарно сохраняет маршрут и его остановки:
	// либо маршрут виден с полным списком остановок, либо не существует
	CreateWithStops(ctx context.Context, route *domain.Route, stops []domain.RouteStop) error

	// GetByID возвращает маршрут с остановками, отсортированными по порядку
	GetByID(ctx context.Context, id int64) (*domain.RouteWithStops, error)

	// List возвращает все маршруты с остановками
	List(ctx context.Context) ([]*domain.RouteWithStops, error)

	// FindCandidates возвращает дедуплицированные маршруты-кандидаты для
	// поиска: начинающиеся в городе отправления либо проходящие через него
	// не конечной остановкой
	FindCandidates(ctx context.Context, departureCityID int64) ([]*domain.RouteWithStops, error)
}
