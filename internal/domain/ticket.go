package domain

// Ticket - купленный билет: место в вагоне на сегмент маршрута.
// OrderID nullable - заказ может быть удалён, билет остаётся.
type Ticket struct {
	ID               int64   `json:"id" db:"id"`
	CarriageID       int64   `json:"carriage" db:"carriage_id"`
	SeatNumber       int     `json:"seat_number" db:"seat_number"`
	DeparturePointID int64   `json:"departure_point" db:"departure_point_id"`
	ArrivalPointID   int64   `json:"arrival_point" db:"arrival_point_id"`
	Price            float64 `json:"price" db:"price"`
	OrderID          *int64  `json:"order_id,omitempty" db:"order_id"`
}
