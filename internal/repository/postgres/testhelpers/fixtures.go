package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SeedCity inserts a city and returns its ID
func SeedCity(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO cities (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed city %s: %w", name, err)
	}
	return id, nil
}

// SeedArrivalPoint inserts an arrival point and returns its ID
func SeedArrivalPoint(db *sqlx.DB, cityID int64, place string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO arrival_points (city_id, place) VALUES ($1, $2) RETURNING id",
		cityID, place).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed arrival point %s: %w", place, err)
	}
	return id, nil
}

// SeedRoute inserts a route without stops and returns its ID
func SeedRoute(db *sqlx.DB, departurePointID int64, departureTime time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO routes (departure_point_id, departure_time) VALUES ($1, $2) RETURNING id",
		departurePointID, departureTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed route: %w", err)
	}
	return id, nil
}

// SeedRouteStop inserts a route stop and returns its ID
func SeedRouteStop(db *sqlx.DB, routeID, arrivalPointID int64, order int, price float64, arrivalTime time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO route_stops (route_id, arrival_point_id, stop_order, price, arrival_time)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		routeID, arrivalPointID, order, price, arrivalTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed route stop: %w", err)
	}
	return id, nil
}

// SeedCarriageType inserts a carriage type and returns its ID
func SeedCarriageType(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO carriage_types (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed carriage type %s: %w", name, err)
	}
	return id, nil
}

// SeedCarriage inserts a carriage and returns its ID
func SeedCarriage(db *sqlx.DB, routeID, carriageTypeID int64, seatAmount int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO carriages (route_id, carriage_type_id, seat_amount)
		 VALUES ($1, $2, $3) RETURNING id`,
		routeID, carriageTypeID, seatAmount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed carriage: %w", err)
	}
	return id, nil
}

// SeedDiscountType inserts a discount type and returns its ID. A nil limit
// makes a permanent discount type.
func SeedDiscountType(db *sqlx.DB, name string, percent float64, usageLimit *int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO discount_types (name, percent, usage_limit)
		 VALUES ($1, $2, $3) RETURNING id`,
		name, percent, usageLimit).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed discount type %s: %w", name, err)
	}
	return id, nil
}

// SeedDiscount inserts a user discount and returns its ID
func SeedDiscount(db *sqlx.DB, userID, discountTypeID int64, usageAmount int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO discounts (user_id, discount_type_id, usage_amount)
		 VALUES ($1, $2, $3) RETURNING id`,
		userID, discountTypeID, usageAmount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed discount: %w", err)
	}
	return id, nil
}
