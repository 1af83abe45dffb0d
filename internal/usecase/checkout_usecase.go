package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// CheckoutUseCase - use case оплаты заказа
type CheckoutUseCase struct {
	orderRepo    repository.OrderRepository
	discountRepo repository.DiscountRepository
	paymentRepo  repository.PaymentRepository
	logger       *zap.Logger
	currency     string
}

// NewCheckoutUseCase создает новый CheckoutUseCase
func NewCheckoutUseCase(
	orderRepo repository.OrderRepository,
	discountRepo repository.DiscountRepository,
	paymentRepo repository.PaymentRepository,
	logger *zap.Logger,
	currency string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:    orderRepo,
		discountRepo: discountRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
		currency:     currency,
	}
}

// Buy создаёт платёж по заказу пользователя, опционально со скидкой.
// Оплате подлежат только pending и fail заказы с ненулевой суммой.
// Платёж со скидкой идёт внутри Redeem: отказ провайдера откатывает
// инкремент применений, лимит скидки не расходуется впустую. Статус
// заказа метод не меняет, подтверждение платежа приходит извне.
func (uc *CheckoutUseCase) Buy(ctx context.Context, userID, orderID int64, req *dto.BuyOrderRequest) (*dto.BuyOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.ErrOrderNotPayable
	}

	if !order.Payable() {
		return nil, errors.ErrOrderNotPayable
	}

	finalPrice := order.TotalPrice
	var intent *domain.PaymentIntent

	if req.DiscountID != nil {
		err = uc.discountRepo.Redeem(ctx, *req.DiscountID, userID, func(d *domain.DiscountWithType) error {
			finalPrice = d.FinalPrice(order.TotalPrice)
			var payErr error
			intent, payErr = uc.paymentRepo.CreatePaymentIntent(ctx, domain.AmountMinorUnits(finalPrice), uc.currency)
			return payErr
		})
	} else {
		intent, err = uc.paymentRepo.CreatePaymentIntent(ctx, domain.AmountMinorUnits(finalPrice), uc.currency)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Payment intent created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Float64("charged_price", finalPrice),
		zap.String("payment_intent_id", intent.ID))

	return &dto.BuyOrderResponse{Order: order, Payment: intent}, nil
}
