package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/pkg/errors"
)

func sampleRoute() *domain.RouteWithStops {
	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return &domain.RouteWithStops{
		Route: domain.Route{
			ID:               1,
			DeparturePointID: 100,
			DepartureTime:    departure,
		},
		DeparturePoint: domain.ArrivalPoint{ID: 100, CityID: 1, CityName: "Moscow"},
		Stops: []domain.RouteStop{
			{ArrivalPointID: 200, StopOrder: 1, Price: 10, ArrivalTime: departure.Add(2 * time.Hour), CityID: 2, CityName: "Tver"},
			{ArrivalPointID: 300, StopOrder: 2, Price: 25, ArrivalTime: departure.Add(5 * time.Hour), CityID: 3, CityName: "Saint Petersburg"},
		},
	}
}

func TestSegmentPrice(t *testing.T) {
	route := sampleRoute()

	t.Run("from route departure", func(t *testing.T) {
		price, err := route.SegmentPrice(100, 200)
		require.NoError(t, err)
		assert.Equal(t, 10.0, price)

		price, err = route.SegmentPrice(100, 300)
		require.NoError(t, err)
		assert.Equal(t, 25.0, price)
	})

	t.Run("between intermediate stops", func(t *testing.T) {
		price, err := route.SegmentPrice(200, 300)
		require.NoError(t, err)
		assert.Equal(t, 15.0, price)
	})

	t.Run("arrival not on route", func(t *testing.T) {
		_, err := route.SegmentPrice(100, 999)
		assert.ErrorIs(t, err, errors.ErrArrivalNotOnRoute)
	})

	t.Run("departure not on route", func(t *testing.T) {
		_, err := route.SegmentPrice(999, 300)
		assert.ErrorIs(t, err, errors.ErrDepartureNotOnRoute)
	})

	t.Run("backwards segment", func(t *testing.T) {
		_, err := route.SegmentPrice(300, 200)
		assert.ErrorIs(t, err, errors.ErrInvalidSegmentOrder)
	})

	t.Run("same stop twice", func(t *testing.T) {
		_, err := route.SegmentPrice(200, 200)
		assert.ErrorIs(t, err, errors.ErrInvalidSegmentOrder)
	})
}

func TestServesCity(t *testing.T) {
	route := sampleRoute()

	assert.True(t, route.ServesCity(2))
	assert.True(t, route.ServesCity(3))
	assert.False(t, route.ServesCity(1)) // город отправления не остановка
	assert.False(t, route.ServesCity(99))
}

func TestTouchesDay(t *testing.T) {
	route := sampleRoute()

	assert.True(t, route.TouchesDay(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, route.TouchesDay(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))

	// Ночной рейс касается обоих дней
	night := sampleRoute()
	night.DepartureTime = time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
	night.Stops[0].ArrivalTime = time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)
	night.Stops[1].ArrivalTime = time.Date(2026, 9, 2, 4, 0, 0, 0, time.UTC)

	assert.True(t, night.TouchesDay(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
	assert.True(t, night.TouchesDay(time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)))
}

func TestValidateStops(t *testing.T) {
	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	valid := []domain.RouteStop{
		{StopOrder: 1, Price: 10, ArrivalTime: departure.Add(time.Hour)},
		{StopOrder: 2, Price: 10, ArrivalTime: departure.Add(2 * time.Hour)},
		{StopOrder: 3, Price: 30, ArrivalTime: departure.Add(4 * time.Hour)},
	}
	assert.NoError(t, domain.ValidateStops(departure, valid))

	t.Run("no stops", func(t *testing.T) {
		err := domain.ValidateStops(departure, nil)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("first arrival before departure", func(t *testing.T) {
		stops := []domain.RouteStop{
			{StopOrder: 1, Price: 10, ArrivalTime: departure.Add(-time.Minute)},
		}
		err := domain.ValidateStops(departure, stops)
		assert.ErrorIs(t, err, errors.ErrFirstArrivalBeforeDeparture)
	})

	t.Run("first arrival equals departure", func(t *testing.T) {
		stops := []domain.RouteStop{
			{StopOrder: 1, Price: 10, ArrivalTime: departure},
		}
		err := domain.ValidateStops(departure, stops)
		assert.ErrorIs(t, err, errors.ErrFirstArrivalBeforeDeparture)
	})

	t.Run("price decreases", func(t *testing.T) {
		stops := []domain.RouteStop{
			{StopOrder: 1, Price: 20, ArrivalTime: departure.Add(time.Hour)},
			{StopOrder: 2, Price: 10, ArrivalTime: departure.Add(2 * time.Hour)},
		}
		err := domain.ValidateStops(departure, stops)
		assert.ErrorIs(t, err, errors.ErrInvalidStopOrder)
	})

	t.Run("arrival time decreases", func(t *testing.T) {
		stops := []domain.RouteStop{
			{StopOrder: 1, Price: 10, ArrivalTime: departure.Add(3 * time.Hour)},
			{StopOrder: 2, Price: 20, ArrivalTime: departure.Add(2 * time.Hour)},
		}
		err := domain.ValidateStops(departure, stops)
		assert.ErrorIs(t, err, errors.ErrInvalidStopOrder)
	})
}
