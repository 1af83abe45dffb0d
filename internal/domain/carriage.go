package domain

import "sort"

// MaxSeatAmount - предельная вместимость вагона
const MaxSeatAmount = 100

const (
	CarriageSeated    = "seated"
	CarriageCoupe     = "coupe"
	CarriagePlatzkart = "platzkart"
)

// ValidCarriageTypeName проверяет имя типа вагона по справочнику
func ValidCarriageTypeName(name string) bool {
	switch name {
	case CarriageSeated, CarriageCoupe, CarriagePlatzkart:
		return true
	}
	return false
}

// CarriageType - тип вагона (сидячий/купе/плацкарт)
type CarriageType struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"carriage_type_name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Carriage - вагон маршрута; места нумеруются 1..SeatAmount
type Carriage struct {
	ID             int64 `json:"id" db:"id"`
	RouteID        int64 `json:"route" db:"route_id"`
	CarriageTypeID int64 `json:"carriage_type" db:"carriage_type_id"`
	SeatAmount     int   `json:"seat_amount" db:"seat_amount"`
}

// AvailableSeats возвращает отсортированные свободные места вагона:
// {1..SeatAmount} минус занятые
func (c *Carriage) AvailableSeats(taken []int) []int {
	occupied := make(map[int]struct{}, len(taken))
	for _, seat := range taken {
		occupied[seat] = struct{}{}
	}

	available := make([]int, 0, c.SeatAmount-len(occupied))
	for seat := 1; seat <= c.SeatAmount; seat++ {
		if _, ok := occupied[seat]; !ok {
			available = append(available, seat)
		}
	}

	sort.Ints(available)
	return available
}

// HasSeat проверяет, что номер места входит в диапазон вагона
func (c *Carriage) HasSeat(seatNumber int) bool {
	return seatNumber >= 1 && seatNumber <= c.SeatAmount
}
