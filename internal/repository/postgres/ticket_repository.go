package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
)

// uniqueViolation - SQLSTATE нарушения уникального индекса
const uniqueViolation = "23505"

type ticketRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTicketRepository(db *DB) repository.TicketRepository {
	return &ticketRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Purchase создаёт билет и пополняет pending-заказ пользователя в одной
// транзакции. Гонку двух покупок одного места решает уникальный индекс
// (carriage_id, seat_number): нарушение конвертируется в ErrSeatTaken.
// Гонку создания двух pending-заказов решает upsert по частичному
// уникальному индексу orders(user_id) WHERE status = 'pending'.
func (r *ticketRepository) Purchase(ctx context.Context, userID int64, ticket *domain.Ticket) (*domain.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin purchase transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	const orderQuery = `
		INSERT INTO orders (user_id, status, total_price)
		VALUES ($1, 'pending', $2)
		ON CONFLICT (user_id) WHERE status = 'pending'
		DO UPDATE SET total_price = orders.total_price + EXCLUDED.total_price
		RETURNING id, user_id, status, total_price
	`

	var order domain.Order
	err = tx.QueryRowContext(ctx, orderQuery, userID, ticket.Price).Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalPrice,
	)
	if err != nil {
		r.logger.Error("Failed to upsert pending order", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	const ticketQuery = `
		INSERT INTO tickets (carriage_id, seat_number, departure_point_id, arrival_point_id, price, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, ticketQuery,
		ticket.CarriageID, ticket.SeatNumber,
		ticket.DeparturePointID, ticket.ArrivalPointID,
		ticket.Price, order.ID,
	).Scan(&ticket.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errors.ErrSeatTaken
		}
		r.logger.Error("Failed to insert ticket",
			zap.Int64("carriage_id", ticket.CarriageID),
			zap.Int("seat_number", ticket.SeatNumber),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit purchase transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	ticket.OrderID = &order.ID
	return &order, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `
		SELECT id, carriage_id, seat_number, departure_point_id, arrival_point_id, price, order_id
		FROM tickets
		WHERE id = $1
	`

	var ticket domain.Ticket
	err := r.db.GetContext(ctx, &ticket, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTicketNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get ticket", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	query := `
		SELECT t.id, t.carriage_id, t.seat_number, t.departure_point_id, t.arrival_point_id, t.price, t.order_id
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE o.user_id = $1
		ORDER BY t.id
	`

	var tickets []*domain.Ticket
	if err := r.db.SelectContext(ctx, &tickets, query, userID); err != nil {
		r.logger.Error("Failed to list tickets", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}

func (r *ticketRepository) ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*domain.Ticket, error) {
	if len(orderIDs) == 0 {
		return map[int64][]*domain.Ticket{}, nil
	}

	query := `
		SELECT id, carriage_id, seat_number, departure_point_id, arrival_point_id, price, order_id
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		r.logger.Error("Failed to list tickets by orders", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	tickets := make(map[int64][]*domain.Ticket, len(orderIDs))
	for rows.Next() {
		var t domain.Ticket
		err := rows.Scan(
			&t.ID, &t.CarriageID, &t.SeatNumber,
			&t.DeparturePointID, &t.ArrivalPointID, &t.Price, &t.OrderID,
		)
		if err != nil {
			r.logger.Error("Failed to scan ticket", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if t.OrderID != nil {
			tickets[*t.OrderID] = append(tickets[*t.OrderID], &t)
		}
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate tickets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}
