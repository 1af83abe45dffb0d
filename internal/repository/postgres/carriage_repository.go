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

type carriageTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCarriageTypeRepository(db *DB) repository.CarriageTypeRepository {
	return &carriageTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *carriageTypeRepository) Create(ctx context.Context, ct *domain.CarriageType) error {
	query := `
		INSERT INTO carriage_types (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, ct.Name, ct.Description).Scan(&ct.ID)
	if err != nil {
		r.logger.Error("Failed to create carriage type", zap.String("name", ct.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *carriageTypeRepository) GetByID(ctx context.Context, id int64) (*domain.CarriageType, error) {
	query := `SELECT id, name, description FROM carriage_types WHERE id = $1`

	var ct domain.CarriageType
	err := r.db.GetContext(ctx, &ct, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCarriageTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get carriage type", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &ct, nil
}

func (r *carriageTypeRepository) List(ctx context.Context) ([]*domain.CarriageType, error) {
	query := `SELECT id, name, description FROM carriage_types ORDER BY id`

	var types []*domain.CarriageType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to list carriage types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

type carriageRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCarriageRepository(db *DB) repository.CarriageRepository {
	return &carriageRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *carriageRepository) Create(ctx context.Context, carriage *domain.Carriage) error {
	query := `
		INSERT INTO carriages (route_id, carriage_type_id, seat_amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		carriage.RouteID, carriage.CarriageTypeID, carriage.SeatAmount,
	).Scan(&carriage.ID)
	if err != nil {
		r.logger.Error("Failed to create carriage", zap.Int64("route_id", carriage.RouteID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *carriageRepository) GetByID(ctx context.Context, id int64) (*domain.Carriage, error) {
	query := `SELECT id, route_id, carriage_type_id, seat_amount FROM carriages WHERE id = $1`

	var carriage domain.Carriage
	err := r.db.GetContext(ctx, &carriage, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCarriageNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get carriage", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &carriage, nil
}

func (r *carriageRepository) ListByRoute(ctx context.Context, routeID int64) ([]*domain.Carriage, error) {
	query := `
		SELECT id, route_id, carriage_type_id, seat_amount
		FROM carriages
		WHERE route_id = $1
		ORDER BY id
	`

	var carriages []*domain.Carriage
	if err := r.db.SelectContext(ctx, &carriages, query, routeID); err != nil {
		r.logger.Error("Failed to list carriages", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return carriages, nil
}

func (r *carriageRepository) TakenSeats(ctx context.Context, carriageID int64) ([]int, error) {
	query := `SELECT seat_number FROM tickets WHERE carriage_id = $1 ORDER BY seat_number`

	var seats []int
	if err := r.db.SelectContext(ctx, &seats, query, carriageID); err != nil {
		r.logger.Error("Failed to get taken seats", zap.Int64("carriage_id", carriageID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return seats, nil
}

// AvailableSeatsByRoute считает свободные места всех вагонов маршрута:
// суммарная вместимость минус число билетов
func (r *carriageRepository) AvailableSeatsByRoute(ctx context.Context, routeID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(c.seat_amount), 0)
		       - (SELECT COUNT(*)
		          FROM tickets t
		          JOIN carriages tc ON tc.id = t.carriage_id
		          WHERE tc.route_id = $1)
		FROM carriages c
		WHERE c.route_id = $1
	`

	var available int
	if err := r.db.GetContext(ctx, &available, query, routeID); err != nil {
		r.logger.Error("Failed to count available seats", zap.Int64("route_id", routeID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return available, nil
}
