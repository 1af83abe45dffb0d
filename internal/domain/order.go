package domain

import "math"

const (
	OrderStatusPending = "pending"
	OrderStatusSuccess = "success"
	OrderStatusFail    = "fail"
)

// ValidOrderStatus проверяет статус заказа по справочнику
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusFail:
		return true
	}
	return false
}

// Order - корзина пользователя: билеты копятся в pending-заказе,
// TotalPrice - сумма цен билетов на момент их добавления (append-only)
type Order struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"user" db:"user_id"`
	Status     string  `json:"order_status" db:"status"`
	TotalPrice float64 `json:"total_price" db:"total_price"`
}

// Payable сообщает, допускает ли заказ оплату: статус pending или fail
// и ненулевая сумма. Оплаченный заказ повторно оплатить нельзя.
func (o *Order) Payable() bool {
	if o.Status != OrderStatusPending && o.Status != OrderStatusFail {
		return false
	}
	return o.TotalPrice > 0
}

// AmountMinorUnits переводит цену в минорные единицы платёжного провайдера
func AmountMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
