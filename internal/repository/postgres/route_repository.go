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

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// CreateWithStops сохраняет маршрут и остановки в одной транзакции:
// читатели никогда не увидят маршрут с частичным списком остановок
func (r *routeRepository) CreateWithStops(ctx context.Context, route *domain.Route, stops []domain.RouteStop) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin route transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	const routeQuery = `
		INSERT INTO routes (departure_point_id, departure_time)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, routeQuery, route.DeparturePointID, route.DepartureTime).Scan(&route.ID); err != nil {
		r.logger.Error("Failed to insert route", zap.Error(err))
		return errors.ErrDatabaseError
	}

	const stopQuery = `
		INSERT INTO route_stops (route_id, arrival_point_id, stop_order, price, arrival_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range stops {
		stops[i].RouteID = route.ID
		err := tx.QueryRowContext(ctx, stopQuery,
			route.ID, stops[i].ArrivalPointID, stops[i].StopOrder, stops[i].Price, stops[i].ArrivalTime,
		).Scan(&stops[i].ID)
		if err != nil {
			r.logger.Error("Failed to insert route stop",
				zap.Int64("route_id", route.ID),
				zap.Int("stop_order", stops[i].StopOrder),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.RouteWithStops, error) {
	const query = `
		SELECT r.id, r.departure_point_id, r.departure_time,
		       ap.id AS point_id, ap.city_id, ap.place, c.name AS city_name
		FROM routes r
		JOIN arrival_points ap ON ap.id = r.departure_point_id
		JOIN cities c ON c.id = ap.city_id
		WHERE r.id = $1
	`

	var route domain.RouteWithStops
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&route.ID, &route.DeparturePointID, &route.DepartureTime,
		&route.DeparturePoint.ID, &route.DeparturePoint.CityID,
		&route.DeparturePoint.Place, &route.DeparturePoint.CityName,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stops, err := r.loadStops(ctx, []int64{route.ID})
	if err != nil {
		return nil, err
	}
	route.Stops = stops[route.ID]

	return &route, nil
}

func (r *routeRepository) List(ctx context.Context) ([]*domain.RouteWithStops, error) {
	const query = `
		SELECT r.id, r.departure_point_id, r.departure_time,
		       ap.id AS point_id, ap.city_id, ap.place, c.name AS city_name
		FROM routes r
		JOIN arrival_points ap ON ap.id = r.departure_point_id
		JOIN cities c ON c.id = ap.city_id
		ORDER BY r.departure_time
	`

	return r.queryRoutes(ctx, query)
}

// FindCandidates собирает кандидатов поиска одним запросом:
// объединение маршрутов, начинающихся в городе, и маршрутов с остановкой
// в городе, которая не является конечной (с последней остановки нельзя
// уехать). UNION даёт дедупликацию на стороне базы.
func (r *routeRepository) FindCandidates(ctx context.Context, departureCityID int64) ([]*domain.RouteWithStops, error) {
	const query = `
		SELECT r.id, r.departure_point_id, r.departure_time,
		       ap.id AS point_id, ap.city_id, ap.place, c.name AS city_name
		FROM routes r
		JOIN arrival_points ap ON ap.id = r.departure_point_id
		JOIN cities c ON c.id = ap.city_id
		WHERE r.id IN (
			SELECT r2.id
			FROM routes r2
			JOIN arrival_points dp ON dp.id = r2.departure_point_id
			WHERE dp.city_id = $1

			UNION

			SELECT rs.route_id
			FROM route_stops rs
			JOIN arrival_points sp ON sp.id = rs.arrival_point_id
			WHERE sp.city_id = $1
			  AND rs.stop_order < (
				SELECT MAX(rs2.stop_order)
				FROM route_stops rs2
				WHERE rs2.route_id = rs.route_id
			  )
		)
		ORDER BY r.departure_time
	`

	return r.queryRoutes(ctx, query, departureCityID)
}

func (r *routeRepository) queryRoutes(ctx context.Context, query string, args ...interface{}) ([]*domain.RouteWithStops, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []*domain.RouteWithStops
	var routeIDs []int64
	for rows.Next() {
		var route domain.RouteWithStops
		err := rows.Scan(
			&route.ID, &route.DeparturePointID, &route.DepartureTime,
			&route.DeparturePoint.ID, &route.DeparturePoint.CityID,
			&route.DeparturePoint.Place, &route.DeparturePoint.CityName,
		)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		routes = append(routes, &route)
		routeIDs = append(routeIDs, route.ID)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(routes) == 0 {
		return routes, nil
	}

	stopsByRoute, err := r.loadStops(ctx, routeIDs)
	if err != nil {
		return nil, err
	}
	for _, route := range routes {
		route.Stops = stopsByRoute[route.ID]
	}

	return routes, nil
}

// loadStops подтягивает остановки пачки маршрутов одним запросом
func (r *routeRepository) loadStops(ctx context.Context, routeIDs []int64) (map[int64][]domain.RouteStop, error) {
	query, args, err := sqlx.In(`
		SELECT rs.id, rs.route_id, rs.arrival_point_id, rs.stop_order, rs.price, rs.arrival_time,
		       ap.place, ap.city_id, c.name AS city_name
		FROM route_stops rs
		JOIN arrival_points ap ON ap.id = rs.arrival_point_id
		JOIN cities c ON c.id = ap.city_id
		WHERE rs.route_id IN (?)
		ORDER BY rs.route_id, rs.stop_order
	`, routeIDs)
	if err != nil {
		r.logger.Error("Failed to build stops query", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.logger.Error("Failed to query route stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stops := make(map[int64][]domain.RouteStop, len(routeIDs))
	for rows.Next() {
		var stop domain.RouteStop
		err := rows.Scan(
			&stop.ID, &stop.RouteID, &stop.ArrivalPointID, &stop.StopOrder, &stop.Price, &stop.ArrivalTime,
			&stop.Place, &stop.CityID, &stop.CityName,
		)
		if err != nil {
			r.logger.Error("Failed to scan route stop", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stops[stop.RouteID] = append(stops[stop.RouteID], stop)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate route stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stops, nil
}
