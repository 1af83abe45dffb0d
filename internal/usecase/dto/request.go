package dto

import "time"

// CreateCityRequest - запрос на создание города
type CreateCityRequest struct {
	Name        string  `json:"city_name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateArrivalPointRequest - запрос на создание точки прибытия
type CreateArrivalPointRequest struct {
	CityID int64  `json:"city" validate:"required,min=1"`
	Place  string `json:"arrival_place" validate:"required,min=1,max=200"`
}

// CreateCarriageTypeRequest - запрос на создание типа вагона
type CreateCarriageTypeRequest struct {
	Name        string  `json:"carriage_type_name" validate:"required,oneof=seated coupe platzkart"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateCarriageRequest - запрос на создание вагона маршрута
type CreateCarriageRequest struct {
	RouteID        int64 `json:"route" validate:"required,min=1"`
	CarriageTypeID int64 `json:"carriage_type" validate:"required,min=1"`
	SeatAmount     int   `json:"seat_amount" validate:"required,min=1"`
}

// RouteStopInput - остановка в запросе на создание маршрута
type RouteStopInput struct {
	ArrivalPointID int64     `json:"arrival_point" validate:"required,min=1"`
	Price          float64   `json:"price" validate:"min=0"`
	ArrivalTime    time.Time `json:"arrival_time" validate:"required"`
}

// CreateRouteRequest - запрос на создание маршрута с остановками.
// Порядок остановок задаётся порядком элементов arrival_points.
type CreateRouteRequest struct {
	DeparturePointID int64            `json:"departure_point" validate:"required,min=1"`
	DepartureTime    time.Time        `json:"departure_time" validate:"required"`
	Stops            []RouteStopInput `json:"arrival_points" validate:"required,min=1,dive"`
}

// SearchRoutesQuery - параметры поиска маршрутов. Day - календарный день
// (UTC), на который должно приходиться отправление или любое прибытие.
type SearchRoutesQuery struct {
	DepartureCity string     `json:"departure_city" validate:"required,min=1"`
	ArrivalCity   string     `json:"arrival_city,omitempty"`
	Day           *time.Time `json:"day,omitempty"`
}

// PurchaseTicketRequest - запрос на покупку билета
type PurchaseTicketRequest struct {
	CarriageID       int64 `json:"carriage" validate:"required,min=1"`
	SeatNumber       int   `json:"seat_number" validate:"required,min=1"`
	DeparturePointID int64 `json:"departure_point" validate:"required,min=1"`
	ArrivalPointID   int64 `json:"arrival_point" validate:"required,min=1"`
}

// UpdateOrderRequest - админский запрос на правку заказа: смена статуса
// и/или применение скидки к текущей сумме
type UpdateOrderRequest struct {
	Status     *string `json:"order_status,omitempty" validate:"omitempty,oneof=pending success fail"`
	DiscountID *int64  `json:"discount_id,omitempty" validate:"omitempty,min=1"`
}

// BuyOrderRequest - запрос на оплату заказа, скидка опциональна
type BuyOrderRequest struct {
	DiscountID *int64 `json:"discount_id,omitempty" validate:"omitempty,min=1"`
}

// CreateDiscountTypeRequest - запрос на создание вида скидки
type CreateDiscountTypeRequest struct {
	Name    string  `json:"discount_type_name" validate:"required,oneof=limited permanent"`
	Percent float64 `json:"discount_percent" validate:"required,gt=0,lte=100"`
	Limit   *int    `json:"discount_limit,omitempty" validate:"omitempty,min=1"`
}

// CreateDiscountRequest - запрос на выдачу скидки пользователю
type CreateDiscountRequest struct {
	UserID         int64 `json:"user" validate:"required,min=1"`
	DiscountTypeID int64 `json:"discount_type" validate:"required,min=1"`
}
