package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

func TestTicketUseCase_Purchase(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	userID := int64(42)

	carriage := &domain.Carriage{ID: 5, RouteID: 1, CarriageTypeID: 1, SeatAmount: 36}
	route := testRoute(1, time.Now().Add(24*time.Hour))

	t.Run("success with segment price", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		carriageRepo := &MockCarriageRepository{}
		routeRepo := &MockRouteRepository{}
		uc := usecase.NewTicketUseCase(ticketRepo, carriageRepo, routeRepo, logger)

		carriageRepo.On("GetByID", ctx, int64(5)).Return(carriage, nil)
		routeRepo.On("GetByID", ctx, int64(1)).Return(route, nil)
		ticketRepo.On("Purchase", ctx, userID, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(2).(*domain.Ticket).ID = 100
			}).
			Return(&domain.Order{ID: 9, UserID: userID, Status: domain.OrderStatusPending, TotalPrice: 15}, nil)

		// Segment from the first stop to the final one: 25 - 10
		resp, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       5,
			SeatNumber:       12,
			DeparturePointID: 2,
			ArrivalPointID:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.Ticket.ID)
		assert.Equal(t, 15.0, resp.Ticket.Price)
		assert.Equal(t, int64(9), resp.Order.ID)
		ticketRepo.AssertExpectations(t)
	})

	t.Run("full route price from departure point", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		carriageRepo := &MockCarriageRepository{}
		routeRepo := &MockRouteRepository{}
		uc := usecase.NewTicketUseCase(ticketRepo, carriageRepo, routeRepo, logger)

		carriageRepo.On("GetByID", ctx, int64(5)).Return(carriage, nil)
		routeRepo.On("GetByID", ctx, int64(1)).Return(route, nil)
		ticketRepo.On("Purchase", ctx, userID, mock.Anything).
			Return(&domain.Order{ID: 9, UserID: userID, Status: domain.OrderStatusPending, TotalPrice: 25}, nil)

		resp, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       5,
			SeatNumber:       1,
			DeparturePointID: 1,
			ArrivalPointID:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, 25.0, resp.Ticket.Price)
	})

	t.Run("seat out of range", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		carriageRepo := &MockCarriageRepository{}
		uc := usecase.NewTicketUseCase(ticketRepo, carriageRepo, &MockRouteRepository{}, logger)

		carriageRepo.On("GetByID", ctx, int64(5)).Return(carriage, nil)

		_, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       5,
			SeatNumber:       37,
			DeparturePointID: 1,
			ArrivalPointID:   3,
		})

		assert.ErrorIs(t, err, errors.ErrSeatOutOfRange)
		ticketRepo.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("backwards segment", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		carriageRepo := &MockCarriageRepository{}
		routeRepo := &MockRouteRepository{}
		uc := usecase.NewTicketUseCase(ticketRepo, carriageRepo, routeRepo, logger)

		carriageRepo.On("GetByID", ctx, int64(5)).Return(carriage, nil)
		routeRepo.On("GetByID", ctx, int64(1)).Return(route, nil)

		_, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       5,
			SeatNumber:       1,
			DeparturePointID: 3,
			ArrivalPointID:   2,
		})

		assert.ErrorIs(t, err, errors.ErrInvalidSegmentOrder)
		ticketRepo.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("seat already taken", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		carriageRepo := &MockCarriageRepository{}
		routeRepo := &MockRouteRepository{}
		uc := usecase.NewTicketUseCase(ticketRepo, carriageRepo, routeRepo, logger)

		carriageRepo.On("GetByID", ctx, int64(5)).Return(carriage, nil)
		routeRepo.On("GetByID", ctx, int64(1)).Return(route, nil)
		ticketRepo.On("Purchase", ctx, userID, mock.Anything).Return(nil, errors.ErrSeatTaken)

		_, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       5,
			SeatNumber:       12,
			DeparturePointID: 1,
			ArrivalPointID:   3,
		})

		assert.ErrorIs(t, err, errors.ErrSeatTaken)
	})

	t.Run("carriage not found", func(t *testing.T) {
		carriageRepo := &MockCarriageRepository{}
		uc := usecase.NewTicketUseCase(&MockTicketRepository{}, carriageRepo, &MockRouteRepository{}, logger)

		carriageRepo.On("GetByID", ctx, int64(404)).Return(nil, errors.ErrCarriageNotFound)

		_, err := uc.Purchase(ctx, userID, &dto.PurchaseTicketRequest{
			CarriageID:       404,
			SeatNumber:       1,
			DeparturePointID: 1,
			ArrivalPointID:   3,
		})

		assert.ErrorIs(t, err, errors.ErrCarriageNotFound)
	})
}
