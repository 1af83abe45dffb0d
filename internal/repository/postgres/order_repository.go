package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
)

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT id, user_id, status, total_price FROM orders WHERE id = $1`

	var order domain.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &order, nil
}

func (r *orderRepository) ListByUserAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error) {
	query := `
		SELECT id, user_id, status, total_price
		FROM orders
		WHERE user_id = $1 AND status = $2
		ORDER BY id DESC
	`

	var orders []*domain.Order
	if err := r.db.SelectContext(ctx, &orders, query, userID, status); err != nil {
		r.logger.Error("Failed to list orders",
			zap.Int64("user_id", userID),
			zap.String("status", status),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		r.logger.Error("Failed to update order status", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) UpdateTotalPrice(ctx context.Context, id int64, totalPrice float64) error {
	query := `UPDATE orders SET total_price = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, totalPrice)
	if err != nil {
		r.logger.Error("Failed to update order total", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrOrderNotFound
	}

	return nil
}
