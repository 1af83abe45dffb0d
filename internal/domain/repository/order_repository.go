package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	// GetByID возвращает заказ по ID
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByUserAndStatus возвращает заказы пользователя в заданном статусе
	ListByUserAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error)

	// UpdateStatus меняет статус заказа
	UpdateStatus(ctx context.Context, id int64, status string) error

	// UpdateTotalPrice перезаписывает сумму заказа (admin-путь со скидкой)
	UpdateTotalPrice(ctx context.Context, id int64, totalPrice float64) error
}
