package dto

import "github.com/railway-booking/internal/domain"

// RouteResponse - маршрут с остановками и суммарным числом свободных мест
type RouteResponse struct {
	*domain.RouteWithStops
	AvailableSeatsAmount int `json:"available_seats_amount"`
}

// SearchRoutesResponse - результат поиска маршрутов
type SearchRoutesResponse struct {
	Routes []*RouteResponse `json:"routes"`
	Total  int              `json:"total"`
}

// AvailableSeatsResponse - свободные места вагона
type AvailableSeatsResponse struct {
	CarriageID int64 `json:"carriage"`
	Seats      []int `json:"available_seats"`
}

// PurchaseTicketResponse - купленный билет и заказ, в который он попал
type PurchaseTicketResponse struct {
	Ticket *domain.Ticket `json:"ticket"`
	Order  *domain.Order  `json:"order"`
}

// OrderWithTickets - заказ вместе с его билетами
type OrderWithTickets struct {
	*domain.Order
	Tickets []*domain.Ticket `json:"tickets"`
}

// BuyOrderResponse - результат оплаты: заказ после чекаута
// и платёжное намерение провайдера
type BuyOrderResponse struct {
	Order   *domain.Order         `json:"order"`
	Payment *domain.PaymentIntent `json:"payment"`
}
