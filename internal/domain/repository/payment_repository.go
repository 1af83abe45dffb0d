package repository

import (
	"context"

	"github.com/railway-booking/internal/domain"
)

// PaymentRepository определяет методы внешнего платёжного провайдера
type PaymentRepository interface {
	// CreatePaymentIntent создаёт платёжное намерение на сумму
	// в минорных единицах и возвращает client_secret для клиента
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (*domain.PaymentIntent, error)
}
