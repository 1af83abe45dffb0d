package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCityRepositoryForTest creates a city repository with test database and logger
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CityRepository {
	return postgres.NewCityRepository(NewDBForTest(db, logger))
}

// NewArrivalPointRepositoryForTest creates an arrival point repository with test database and logger
func NewArrivalPointRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ArrivalPointRepository {
	return postgres.NewArrivalPointRepository(NewDBForTest(db, logger))
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger))
}

// NewCarriageTypeRepositoryForTest creates a carriage type repository with test database and logger
func NewCarriageTypeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CarriageTypeRepository {
	return postgres.NewCarriageTypeRepository(NewDBForTest(db, logger))
}

// NewCarriageRepositoryForTest creates a carriage repository with test database and logger
func NewCarriageRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CarriageRepository {
	return postgres.NewCarriageRepository(NewDBForTest(db, logger))
}

// NewTicketRepositoryForTest creates a ticket repository with test database and logger
func NewTicketRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TicketRepository {
	return postgres.NewTicketRepository(NewDBForTest(db, logger))
}

// NewOrderRepositoryForTest creates an order repository with test database and logger
func NewOrderRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OrderRepository {
	return postgres.NewOrderRepository(NewDBForTest(db, logger))
}

// NewDiscountTypeRepositoryForTest creates a discount type repository with test database and logger
func NewDiscountTypeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DiscountTypeRepository {
	return postgres.NewDiscountTypeRepository(NewDBForTest(db, logger))
}

// NewDiscountRepositoryForTest creates a discount repository with test database and logger
func NewDiscountRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DiscountRepository {
	return postgres.NewDiscountRepository(NewDBForTest(db, logger))
}
