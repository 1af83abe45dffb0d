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

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	query := `
		INSERT INTO cities (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, city.Name, city.Description).Scan(&city.ID)
	if err != nil {
		r.logger.Error("Failed to create city", zap.String("name", city.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	query := `SELECT id, name, description FROM cities WHERE id = $1`

	var city domain.City
	err := r.db.GetContext(ctx, &city, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &city, nil
}

func (r *cityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	query := `SELECT id, name, description FROM cities WHERE name = $1`

	var city domain.City
	err := r.db.GetContext(ctx, &city, query, name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &city, nil
}

func (r *cityRepository) List(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, name, description FROM cities ORDER BY name`

	var cities []*domain.City
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		r.logger.Error("Failed to list cities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cities, nil
}

type arrivalPointRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewArrivalPointRepository(db *DB) repository.ArrivalPointRepository {
	return &arrivalPointRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *arrivalPointRepository) Create(ctx context.Context, point *domain.ArrivalPoint) error {
	query := `
		INSERT INTO arrival_points (city_id, place)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, point.CityID, point.Place).Scan(&point.ID)
	if err != nil {
		r.logger.Error("Failed to create arrival point", zap.Int64("city_id", point.CityID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *arrivalPointRepository) GetByID(ctx context.Context, id int64) (*domain.ArrivalPoint, error) {
	query := `
		SELECT ap.id, ap.city_id, ap.place, c.name AS city_name
		FROM arrival_points ap
		JOIN cities c ON c.id = ap.city_id
		WHERE ap.id = $1
	`

	var point domain.ArrivalPoint
	err := r.db.GetContext(ctx, &point, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrArrivalPointNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get arrival point", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &point, nil
}

func (r *arrivalPointRepository) List(ctx context.Context) ([]*domain.ArrivalPoint, error) {
	query := `
		SELECT ap.id, ap.city_id, ap.place, c.name AS city_name
		FROM arrival_points ap
		JOIN cities c ON c.id = ap.city_id
		ORDER BY c.name, ap.place
	`

	var points []*domain.ArrivalPoint
	if err := r.db.SelectContext(ctx, &points, query); err != nil {
		r.logger.Error("Failed to list arrival points", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return points, nil
}
