package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// OrderUseCase - use case просмотра и административной правки заказов
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	ticketRepo   repository.TicketRepository
	discountRepo repository.DiscountRepository
	logger       *zap.Logger
}

// NewOrderUseCase создает новый OrderUseCase
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	discountRepo repository.DiscountRepository,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		ticketRepo:   ticketRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// ListByStatus возвращает заказы пользователя в заданном статусе
// вместе с их билетами
func (uc *OrderUseCase) ListByStatus(ctx context.Context, userID int64, status string) ([]*dto.OrderWithTickets, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, errors.ErrInvalidStatus
	}

	orders, err := uc.orderRepo.ListByUserAndStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	ticketsByOrder, err := uc.ticketRepo.ListByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OrderWithTickets, 0, len(orders))
	for _, order := range orders {
		tickets := ticketsByOrder[order.ID]
		if tickets == nil {
			tickets = []*domain.Ticket{}
		}
		result = append(result, &dto.OrderWithTickets{
			Order:   order,
			Tickets: tickets,
		})
	}

	return result, nil
}

// Update - административная правка заказа: смена статуса и/или применение
// скидки владельца заказа к текущей сумме. Скидка расходует лимит так же,
// как при оплате, но без обращения к платёжному провайдеру.
func (uc *OrderUseCase) Update(ctx context.Context, orderID int64, req *dto.UpdateOrderRequest) (*domain.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.DiscountID != nil {
		err := uc.discountRepo.Redeem(ctx, *req.DiscountID, order.UserID, func(d *domain.DiscountWithType) error {
			return uc.orderRepo.UpdateTotalPrice(ctx, order.ID, d.FinalPrice(order.TotalPrice))
		})
		if err != nil {
			return nil, err
		}
		uc.logger.Info("Discount applied to order",
			zap.Int64("order_id", order.ID),
			zap.Int64("discount_id", *req.DiscountID))
	}

	if req.Status != nil {
		if !domain.ValidOrderStatus(*req.Status) {
			return nil, errors.ErrInvalidStatus
		}
		if err := uc.orderRepo.UpdateStatus(ctx, order.ID, *req.Status); err != nil {
			return nil, err
		}
	}

	return uc.orderRepo.GetByID(ctx, orderID)
}
