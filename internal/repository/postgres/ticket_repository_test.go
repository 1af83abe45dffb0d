package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/repository/postgres/testhelpers"
)

type TicketRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB

	routeID    int64
	carriageID int64
	pointA     int64
	pointB     int64
}

func (s *TicketRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err)
}

func (s *TicketRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *TicketRepositorySuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.testDB.Cleanup(ctx))

	db := s.testDB.DB

	cityA, err := testhelpers.SeedCity(db, "Moscow")
	s.Require().NoError(err)
	cityB, err := testhelpers.SeedCity(db, "Saint Petersburg")
	s.Require().NoError(err)

	s.pointA, err = testhelpers.SeedArrivalPoint(db, cityA, "Leningradsky")
	s.Require().NoError(err)
	s.pointB, err = testhelpers.SeedArrivalPoint(db, cityB, "Moskovsky")
	s.Require().NoError(err)

	departure := time.Now().Add(24 * time.Hour)
	s.routeID, err = testhelpers.SeedRoute(db, s.pointA, departure)
	s.Require().NoError(err)
	_, err = testhelpers.SeedRouteStop(db, s.routeID, s.pointB, 1, 25, departure.Add(4*time.Hour))
	s.Require().NoError(err)

	typeID, err := testhelpers.SeedCarriageType(db, "coupe")
	s.Require().NoError(err)
	s.carriageID, err = testhelpers.SeedCarriage(db, s.routeID, typeID, 36)
	s.Require().NoError(err)
}

func (s *TicketRepositorySuite) newTicket(seat int, price float64) *domain.Ticket {
	return &domain.Ticket{
		CarriageID:       s.carriageID,
		SeatNumber:       seat,
		DeparturePointID: s.pointA,
		ArrivalPointID:   s.pointB,
		Price:            price,
	}
}

func (s *TicketRepositorySuite) TestPurchaseCreatesPendingOrder() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	order, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)

	s.Equal(int64(42), order.UserID)
	s.Equal(domain.OrderStatusPending, order.Status)
	s.Equal(25.0, order.TotalPrice)
}

func (s *TicketRepositorySuite) TestPurchaseAccumulatesIntoSameOrder() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	first, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)

	second, err := repo.Purchase(ctx, 42, s.newTicket(2, 25))
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal(50.0, second.TotalPrice)
}

func (s *TicketRepositorySuite) TestPurchaseSeparateOrdersPerUser() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	first, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)

	other, err := repo.Purchase(ctx, 43, s.newTicket(2, 25))
	s.Require().NoError(err)

	s.NotEqual(first.ID, other.ID)
}

func (s *TicketRepositorySuite) TestPurchaseTakenSeat() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	_, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)

	// Другой пользователь пытается занять то же место
	_, err = repo.Purchase(ctx, 43, s.newTicket(1, 25))
	s.Require().Error(err)
	s.ErrorIs(err, errors.ErrSeatTaken)
}

func (s *TicketRepositorySuite) TestTakenSeatLeavesOrderUntouched() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	orderRepo := testhelpers.NewOrderRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	order, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)

	// Конфликт места откатывает транзакцию целиком, сумма заказа не растёт
	_, err = repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().ErrorIs(err, errors.ErrSeatTaken)

	after, err := orderRepo.GetByID(ctx, order.ID)
	s.Require().NoError(err)
	s.Equal(25.0, after.TotalPrice)
}

func (s *TicketRepositorySuite) TestListByOrderIDs() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	order, err := repo.Purchase(ctx, 42, s.newTicket(1, 25))
	s.Require().NoError(err)
	_, err = repo.Purchase(ctx, 42, s.newTicket(2, 25))
	s.Require().NoError(err)

	grouped, err := repo.ListByOrderIDs(ctx, []int64{order.ID})
	s.Require().NoError(err)
	s.Len(grouped[order.ID], 2)
}

func (s *TicketRepositorySuite) TestListByOrderIDsEmpty() {
	ctx := context.Background()
	repo := testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	grouped, err := repo.ListByOrderIDs(ctx, nil)
	s.Require().NoError(err)
	s.Empty(grouped)
}

func TestTicketRepositorySuite(t *testing.T) {
	suite.Run(t, new(TicketRepositorySuite))
}
