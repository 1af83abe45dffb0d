package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// TicketUseCase - use case покупки билетов
type TicketUseCase struct {
	ticketRepo   repository.TicketRepository
	carriageRepo repository.CarriageRepository
	routeRepo    repository.RouteRepository
	logger       *zap.Logger
}

// NewTicketUseCase создает новый TicketUseCase
func NewTicketUseCase(
	ticketRepo repository.TicketRepository,
	carriageRepo repository.CarriageRepository,
	routeRepo repository.RouteRepository,
	logger *zap.Logger,
) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo:   ticketRepo,
		carriageRepo: carriageRepo,
		routeRepo:    routeRepo,
		logger:       logger,
	}
}

// Purchase покупает место в вагоне на сегмент маршрута. Цена билета
// считается по тарифам остановок в момент покупки. Финальная защита
// от двойной продажи места - уникальный индекс БД, гонка возвращается
// как ErrSeatTaken.
func (uc *TicketUseCase) Purchase(ctx context.Context, userID int64, req *dto.PurchaseTicketRequest) (*dto.PurchaseTicketResponse, error) {
	carriage, err := uc.carriageRepo.GetByID(ctx, req.CarriageID)
	if err != nil {
		return nil, err
	}

	if !carriage.HasSeat(req.SeatNumber) {
		return nil, errors.ErrSeatOutOfRange
	}

	route, err := uc.routeRepo.GetByID(ctx, carriage.RouteID)
	if err != nil {
		return nil, err
	}

	price, err := route.SegmentPrice(req.DeparturePointID, req.ArrivalPointID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		CarriageID:       carriage.ID,
		SeatNumber:       req.SeatNumber,
		DeparturePointID: req.DeparturePointID,
		ArrivalPointID:   req.ArrivalPointID,
		Price:            price,
	}

	order, err := uc.ticketRepo.Purchase(ctx, userID, ticket)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Ticket purchased",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("user_id", userID),
		zap.Int64("carriage_id", carriage.ID),
		zap.Int("seat_number", ticket.SeatNumber),
		zap.Float64("price", ticket.Price),
		zap.Int64("order_id", order.ID))

	return &dto.PurchaseTicketResponse{Ticket: ticket, Order: order}, nil
}

// GetByID возвращает билет по ID
func (uc *TicketUseCase) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return uc.ticketRepo.GetByID(ctx, id)
}

// ListByUser возвращает билеты пользователя
func (uc *TicketUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	return uc.ticketRepo.ListByUser(ctx, userID)
}
