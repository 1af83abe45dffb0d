package domain

import (
	"fmt"
	"time"

	"github.com/railway-booking/internal/pkg/errors"
)

// Route - рейс: отправление из точки в фиксированное время,
// далее упорядоченный список остановок (RouteStop)
type Route struct {
	ID               int64     `json:"id" db:"id"`
	DeparturePointID int64     `json:"-" db:"departure_point_id"`
	DepartureTime    time.Time `json:"departure_time" db:"departure_time"`
}

// RouteStop - одна остановка маршрута. Price - накопленный тариф от точки
// отправления маршрута до этой остановки, StopOrder - позиция (с 1).
type RouteStop struct {
	ID             int64     `json:"id" db:"id"`
	RouteID        int64     `json:"-" db:"route_id"`
	ArrivalPointID int64     `json:"-" db:"arrival_point_id"`
	StopOrder      int       `json:"order" db:"stop_order"`
	Price          float64   `json:"price" db:"price"`
	ArrivalTime    time.Time `json:"arrival_time" db:"arrival_time"`

	// Данные точки прибытия, подтягиваются join-ом
	Place    string `json:"arrival_place" db:"place"`
	CityID   int64  `json:"-" db:"city_id"`
	CityName string `json:"arrival_city" db:"city_name"`
}

// RouteWithStops - маршрут вместе с остановками, отсортированными по StopOrder.
// Все расчёты тарифа и предикаты поиска работают поверх этого типа.
type RouteWithStops struct {
	Route
	DeparturePoint ArrivalPoint `json:"departure_city"`
	Stops          []RouteStop  `json:"arrival_points"`
}

// StopByPoint возвращает остановку маршрута для точки прибытия
func (r *RouteWithStops) StopByPoint(arrivalPointID int64) (*RouteStop, bool) {
	for i := range r.Stops {
		if r.Stops[i].ArrivalPointID == arrivalPointID {
			return &r.Stops[i], true
		}
	}
	return nil, false
}

// FinalStop - последняя остановка маршрута (конечная)
func (r *RouteWithStops) FinalStop() *RouteStop {
	if len(r.Stops) == 0 {
		return nil
	}
	return &r.Stops[len(r.Stops)-1]
}

// SegmentPrice - цена сегмента маршрута между двумя точками.
// Точка отправления, совпадающая с началом маршрута, имеет цену 0.
// Остановка отправления обязана идти строго раньше остановки прибытия.
func (r *RouteWithStops) SegmentPrice(departurePointID, arrivalPointID int64) (float64, error) {
	arrival, ok := r.StopByPoint(arrivalPointID)
	if !ok {
		return 0, errors.ErrArrivalNotOnRoute
	}

	departure, ok := r.StopByPoint(departurePointID)
	if !ok {
		if departurePointID == r.DeparturePointID {
			return arrival.Price, nil
		}
		return 0, errors.ErrDepartureNotOnRoute
	}

	if departure.StopOrder >= arrival.StopOrder {
		return 0, errors.ErrInvalidSegmentOrder
	}

	return arrival.Price - departure.Price, nil
}

// ServesCity сообщает, есть ли у маршрута остановка в городе
func (r *RouteWithStops) ServesCity(cityID int64) bool {
	for i := range r.Stops {
		if r.Stops[i].CityID == cityID {
			return true
		}
	}
	return false
}

// TouchesDay сообщает, приходится ли на календарный день отправление
// маршрута или прибытие хотя бы одной его остановки
func (r *RouteWithStops) TouchesDay(day time.Time) bool {
	if sameDay(r.DepartureTime, day) {
		return true
	}
	for i := range r.Stops {
		if sameDay(r.Stops[i].ArrivalTime, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ValidateStops проверяет инварианты порядка остановок перед сохранением:
// цена и время прибытия не убывают, первая остановка строго позже отправления
func ValidateStops(departureTime time.Time, stops []RouteStop) error {
	if len(stops) == 0 {
		return errors.ErrInvalidRequest.WithField("arrival_points", "at least one stop is required")
	}

	if !stops[0].ArrivalTime.After(departureTime) {
		return errors.ErrFirstArrivalBeforeDeparture
	}

	for i := 1; i < len(stops); i++ {
		if stops[i].Price < stops[i-1].Price || stops[i].ArrivalTime.Before(stops[i-1].ArrivalTime) {
			return errors.ErrInvalidStopOrder.WithField(
				"arrival_points",
				fmt.Sprintf("stop %d breaks the order", i+1),
			)
		}
	}

	return nil
}
