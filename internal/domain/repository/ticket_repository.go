package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// TicketRepository определяет методы для работы с билетами
type TicketRepository interface {
	// Purchase в одной транзакции создаёт билет и пополняет pending-заказ
	// пользователя (создавая заказ при отсутствии). Уникальный индекс
	// (carriage_id, seat_number) - авторитетная защита места: нарушение
	// возвращается как ErrSeatTaken. Возвращает заказ после пополнения.
	Purchase(ctx context.Context, userID int64, ticket *domain.Ticket) (*domain.Order, error)

	// GetByID возвращает билет по ID
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)

	// ListByUser возвращает билеты из заказов пользователя
	ListByUser(ctx context.Context, userID int64) ([]*domain.Ticket, error)

	// ListByOrderIDs возвращает билеты пачки заказов одним запросом
	ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*domain.Ticket, error)
}
