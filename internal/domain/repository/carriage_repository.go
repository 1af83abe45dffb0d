package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// CarriageTypeRepository определяет методы для справочника типов вагонов
type CarriageTypeRepository interface {
	// Create создаёт тип вагона
	Create(ctx context.Context, ct *domain.CarriageType) error

	// GetByID возвращает тип вагона по ID
	GetByID(ctx context.Context, id int64) (*domain.CarriageType, error)

	// List возвращает все типы вагонов
	List(ctx context.Context) ([]*domain.CarriageType, error)
}

// CarriageRepository определяет методы для работы с вагонами
type CarriageRepository interface {
	// Create создаёт вагон маршрута
	Create(ctx context.Context, carriage *domain.Carriage) error

	// GetByID возвращает вагон по ID
	GetByID(ctx context.Context, id int64) (*domain.Carriage, error)

	// ListByRoute возвращает вагоны маршрута
	ListByRoute(ctx context.Context, routeID int64) ([]*domain.Carriage, error)

	// TakenSeats возвращает занятые места вагона (номера мест его билетов)
	TakenSeats(ctx context.Context, carriageID int64) ([]int, error)

	// AvailableSeatsByRoute возвращает суммарное число свободных мест
	// по всем вагонам маршрута
	AvailableSeatsByRoute(ctx context.Context, routeID int64) (int, error)
}
