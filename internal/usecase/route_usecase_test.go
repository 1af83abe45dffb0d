package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

func newRouteUseCase(
	routeRepo *MockRouteRepository,
	carriageRepo *MockCarriageRepository,
	pointRepo *MockArrivalPointRepository,
	cityRepo *MockCityRepository,
	cache *MockCacheRepository,
) *usecase.RouteUseCase {
	return usecase.NewRouteUseCase(routeRepo, carriageRepo, pointRepo, cityRepo, cache, zap.NewNop(), time.Minute)
}

// testRoute builds a route departing from point 1 with stops at points
// 2 and 3 in cities 20 and 30
func testRoute(id int64, departure time.Time) *domain.RouteWithStops {
	return &domain.RouteWithStops{
		Route: domain.Route{
			ID:               id,
			DeparturePointID: 1,
			DepartureTime:    departure,
		},
		DeparturePoint: domain.ArrivalPoint{ID: 1, CityID: 10, Place: "Central", CityName: "Moscow"},
		Stops: []domain.RouteStop{
			{
				ID: 1, RouteID: id, ArrivalPointID: 2, StopOrder: 1, Price: 10,
				ArrivalTime: departure.Add(2 * time.Hour),
				Place:       "North", CityID: 20, CityName: "Tver",
			},
			{
				ID: 2, RouteID: id, ArrivalPointID: 3, StopOrder: 2, Price: 25,
				ArrivalTime: departure.Add(5 * time.Hour),
				Place:       "Main", CityID: 30, CityName: "Saint Petersburg",
			},
		},
	}
}

func TestRouteUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes departed routes and filters by arrival city", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		carriageRepo := &MockCarriageRepository{}
		cityRepo := &MockCityRepository{}
		cache := &MockCacheRepository{}
		uc := newRouteUseCase(routeRepo, carriageRepo, &MockArrivalPointRepository{}, cityRepo, cache)

		future := testRoute(1, time.Now().Add(24*time.Hour))
		departed := testRoute(2, time.Now().Add(-1*time.Hour))
		elsewhere := testRoute(3, time.Now().Add(24*time.Hour))
		elsewhere.Stops[1].CityID = 99
		elsewhere.Stops[1].CityName = "Kazan"

		cache.On("GetSearch", ctx, mock.Anything).Return(nil, nil)
		cache.On("SetSearch", ctx, mock.Anything, mock.Anything, time.Minute).Return(nil)
		cityRepo.On("GetByName", ctx, "Moscow").Return(&domain.City{ID: 10, Name: "Moscow"}, nil)
		cityRepo.On("GetByName", ctx, "Saint Petersburg").Return(&domain.City{ID: 30, Name: "Saint Petersburg"}, nil)
		routeRepo.On("FindCandidates", ctx, int64(10)).
			Return([]*domain.RouteWithStops{future, departed, elsewhere}, nil)
		carriageRepo.On("AvailableSeatsByRoute", ctx, int64(1)).Return(42, nil)

		resp, err := uc.Search(ctx, &dto.SearchRoutesQuery{
			DepartureCity: "Moscow",
			ArrivalCity:   "Saint Petersburg",
		})

		require.NoError(t, err)
		require.Len(t, resp.Routes, 1)
		assert.Equal(t, int64(1), resp.Routes[0].ID)
		assert.Equal(t, 42, resp.Routes[0].AvailableSeatsAmount)
		assert.Equal(t, 1, resp.Total)

		routeRepo.AssertExpectations(t)
		carriageRepo.AssertExpectations(t)
	})

	t.Run("filters by calendar day", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		carriageRepo := &MockCarriageRepository{}
		cityRepo := &MockCityRepository{}
		cache := &MockCacheRepository{}
		uc := newRouteUseCase(routeRepo, carriageRepo, &MockArrivalPointRepository{}, cityRepo, cache)

		tomorrow := time.Now().Add(24 * time.Hour)
		nextWeek := time.Now().Add(7 * 24 * time.Hour)
		matching := testRoute(1, tomorrow)
		other := testRoute(2, nextWeek)

		cache.On("GetSearch", ctx, mock.Anything).Return(nil, nil)
		cache.On("SetSearch", ctx, mock.Anything, mock.Anything, time.Minute).Return(nil)
		cityRepo.On("GetByName", ctx, "Moscow").Return(&domain.City{ID: 10, Name: "Moscow"}, nil)
		routeRepo.On("FindCandidates", ctx, int64(10)).
			Return([]*domain.RouteWithStops{matching, other}, nil)
		carriageRepo.On("AvailableSeatsByRoute", ctx, int64(1)).Return(10, nil)

		day := tomorrow
		resp, err := uc.Search(ctx, &dto.SearchRoutesQuery{
			DepartureCity: "Moscow",
			Day:           &day,
		})

		require.NoError(t, err)
		require.Len(t, resp.Routes, 1)
		assert.Equal(t, int64(1), resp.Routes[0].ID)
	})

	t.Run("unknown departure city", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		cityRepo := &MockCityRepository{}
		cache := &MockCacheRepository{}
		uc := newRouteUseCase(routeRepo, &MockCarriageRepository{}, &MockArrivalPointRepository{}, cityRepo, cache)

		cache.On("GetSearch", ctx, mock.Anything).Return(nil, nil)
		cityRepo.On("GetByName", ctx, "Atlantis").Return(nil, errors.ErrCityNotFound)

		resp, err := uc.Search(ctx, &dto.SearchRoutesQuery{DepartureCity: "Atlantis"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		routeRepo.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything)
	})

	t.Run("serves cached result without hitting repositories", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		cityRepo := &MockCityRepository{}
		cache := &MockCacheRepository{}
		uc := newRouteUseCase(routeRepo, &MockCarriageRepository{}, &MockArrivalPointRepository{}, cityRepo, cache)

		cached := &dto.SearchRoutesResponse{Routes: []*dto.RouteResponse{}, Total: 0}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		cache.On("GetSearch", ctx, mock.Anything).Return(data, nil)

		resp, err := uc.Search(ctx, &dto.SearchRoutesQuery{DepartureCity: "Moscow"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)

		cityRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
		routeRepo.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything)
	})
}

func TestRouteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects first arrival before departure", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		pointRepo := &MockArrivalPointRepository{}
		uc := newRouteUseCase(routeRepo, &MockCarriageRepository{}, pointRepo, &MockCityRepository{}, &MockCacheRepository{})

		departure := time.Now().Add(24 * time.Hour)
		pointRepo.On("GetByID", ctx, int64(1)).Return(&domain.ArrivalPoint{ID: 1}, nil)
		pointRepo.On("GetByID", ctx, int64(2)).Return(&domain.ArrivalPoint{ID: 2}, nil)

		_, err := uc.Create(ctx, &dto.CreateRouteRequest{
			DeparturePointID: 1,
			DepartureTime:    departure,
			Stops: []dto.RouteStopInput{
				{ArrivalPointID: 2, Price: 10, ArrivalTime: departure.Add(-time.Hour)},
			},
		})

		assert.ErrorIs(t, err, errors.ErrFirstArrivalBeforeDeparture)
		routeRepo.AssertNotCalled(t, "CreateWithStops", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates route and invalidates search cache", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		pointRepo := &MockArrivalPointRepository{}
		cache := &MockCacheRepository{}
		uc := newRouteUseCase(routeRepo, &MockCarriageRepository{}, pointRepo, &MockCityRepository{}, cache)

		departure := time.Now().Add(24 * time.Hour)
		created := testRoute(7, departure)

		pointRepo.On("GetByID", ctx, mock.Anything).Return(&domain.ArrivalPoint{ID: 1}, nil)
		routeRepo.On("CreateWithStops", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Route).ID = 7
			}).
			Return(nil)
		routeRepo.On("GetByID", ctx, int64(7)).Return(created, nil)
		cache.On("InvalidateSearch", ctx).Return(nil)

		route, err := uc.Create(ctx, &dto.CreateRouteRequest{
			DeparturePointID: 1,
			DepartureTime:    departure,
			Stops: []dto.RouteStopInput{
				{ArrivalPointID: 2, Price: 10, ArrivalTime: departure.Add(2 * time.Hour)},
				{ArrivalPointID: 3, Price: 25, ArrivalTime: departure.Add(5 * time.Hour)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), route.ID)
		cache.AssertExpectations(t)
	})
}
