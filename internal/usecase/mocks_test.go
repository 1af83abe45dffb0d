package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/railway-booking/internal/domain"
)

// MockCityRepository is a mock of CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

// MockArrivalPointRepository is a mock of ArrivalPointRepository
type MockArrivalPointRepository struct {
	mock.Mock
}

func (m *MockArrivalPointRepository) Create(ctx context.Context, point *domain.ArrivalPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockArrivalPointRepository) GetByID(ctx context.Context, id int64) (*domain.ArrivalPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArrivalPoint), args.Error(1)
}

func (m *MockArrivalPointRepository) List(ctx context.Context) ([]*domain.ArrivalPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ArrivalPoint), args.Error(1)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) CreateWithStops(ctx context.Context, route *domain.Route, stops []domain.RouteStop) error {
	args := m.Called(ctx, route, stops)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.RouteWithStops, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteWithStops), args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context) ([]*domain.RouteWithStops, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RouteWithStops), args.Error(1)
}

func (m *MockRouteRepository) FindCandidates(ctx context.Context, departureCityID int64) ([]*domain.RouteWithStops, error) {
	args := m.Called(ctx, departureCityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RouteWithStops), args.Error(1)
}

// MockCarriageTypeRepository is a mock of CarriageTypeRepository
type MockCarriageTypeRepository struct {
	mock.Mock
}

func (m *MockCarriageTypeRepository) Create(ctx context.Context, ct *domain.CarriageType) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockCarriageTypeRepository) GetByID(ctx context.Context, id int64) (*domain.CarriageType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarriageType), args.Error(1)
}

func (m *MockCarriageTypeRepository) List(ctx context.Context) ([]*domain.CarriageType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CarriageType), args.Error(1)
}

// MockCarriageRepository is a mock of CarriageRepository
type MockCarriageRepository struct {
	mock.Mock
}

func (m *MockCarriageRepository) Create(ctx context.Context, carriage *domain.Carriage) error {
	args := m.Called(ctx, carriage)
	return args.Error(0)
}

func (m *MockCarriageRepository) GetByID(ctx context.Context, id int64) (*domain.Carriage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carriage), args.Error(1)
}

func (m *MockCarriageRepository) ListByRoute(ctx context.Context, routeID int64) ([]*domain.Carriage, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Carriage), args.Error(1)
}

func (m *MockCarriageRepository) TakenSeats(ctx context.Context, carriageID int64) ([]int, error) {
	args := m.Called(ctx, carriageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCarriageRepository) AvailableSeatsByRoute(ctx context.Context, routeID int64) (int, error) {
	args := m.Called(ctx, routeID)
	return args.Int(0), args.Error(1)
}

// MockTicketRepository is a mock of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Purchase(ctx context.Context, userID int64, ticket *domain.Ticket) (*domain.Order, error) {
	args := m.Called(ctx, userID, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*domain.Ticket, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]*domain.Ticket), args.Error(1)
}

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUserAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateTotalPrice(ctx context.Context, id int64, totalPrice float64) error {
	args := m.Called(ctx, id, totalPrice)
	return args.Error(0)
}

// MockDiscountTypeRepository is a mock of DiscountTypeRepository
type MockDiscountTypeRepository struct {
	mock.Mock
}

func (m *MockDiscountTypeRepository) Create(ctx context.Context, dt *domain.DiscountType) error {
	args := m.Called(ctx, dt)
	return args.Error(0)
}

func (m *MockDiscountTypeRepository) GetByID(ctx context.Context, id int64) (*domain.DiscountType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountType), args.Error(1)
}

func (m *MockDiscountTypeRepository) List(ctx context.Context) ([]*domain.DiscountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DiscountType), args.Error(1)
}

// MockDiscountRepository is a mock of DiscountRepository. Redeem runs the
// apply callback against the discount configured via Return(discount, err):
// a non-nil discount is passed to apply, apply's error is returned as-is,
// mirroring the transactional rollback of the real implementation.
type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) Create(ctx context.Context, discount *domain.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) GetByID(ctx context.Context, id int64) (*domain.DiscountWithType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountWithType), args.Error(1)
}

func (m *MockDiscountRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.DiscountWithType, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DiscountWithType), args.Error(1)
}

func (m *MockDiscountRepository) Redeem(ctx context.Context, discountID, userID int64, apply func(*domain.DiscountWithType) error) error {
	args := m.Called(ctx, discountID, userID)
	if d, ok := args.Get(0).(*domain.DiscountWithType); ok && d != nil {
		if err := apply(d); err != nil {
			return err
		}
	}
	return args.Error(1)
}

// MockPaymentRepository is a mock of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, amountMinorUnits, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSearch(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetSearch(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateSearch(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
