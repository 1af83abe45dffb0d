package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// CarriageUseCase - use case вагонов и их типов
type CarriageUseCase struct {
	carriageRepo     repository.CarriageRepository
	carriageTypeRepo repository.CarriageTypeRepository
	routeRepo        repository.RouteRepository
	logger           *zap.Logger
}

// NewCarriageUseCase создает новый CarriageUseCase
func NewCarriageUseCase(
	carriageRepo repository.CarriageRepository,
	carriageTypeRepo repository.CarriageTypeRepository,
	routeRepo repository.RouteRepository,
	logger *zap.Logger,
) *CarriageUseCase {
	return &CarriageUseCase{
		carriageRepo:     carriageRepo,
		carriageTypeRepo: carriageTypeRepo,
		routeRepo:        routeRepo,
		logger:           logger,
	}
}

// CreateCarriageType создает тип вагона
func (uc *CarriageUseCase) CreateCarriageType(ctx context.Context, req *dto.CreateCarriageTypeRequest) (*domain.CarriageType, error) {
	if !domain.ValidCarriageTypeName(req.Name) {
		return nil, errors.ErrInvalidRequest.WithField("carriage_type_name", "unknown carriage type")
	}

	ct := &domain.CarriageType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := uc.carriageTypeRepo.Create(ctx, ct); err != nil {
		return nil, err
	}

	uc.logger.Info("Carriage type created",
		zap.Int64("carriage_type_id", ct.ID),
		zap.String("name", ct.Name))

	return ct, nil
}

// ListCarriageTypes возвращает все типы вагонов
func (uc *CarriageUseCase) ListCarriageTypes(ctx context.Context) ([]*domain.CarriageType, error) {
	return uc.carriageTypeRepo.List(ctx)
}

// CreateCarriage создает вагон существующего маршрута.
// Вместимость ограничена domain.MaxSeatAmount.
func (uc *CarriageUseCase) CreateCarriage(ctx context.Context, req *dto.CreateCarriageRequest) (*domain.Carriage, error) {
	if req.SeatAmount > domain.MaxSeatAmount {
		return nil, errors.ErrSeatAmountExceeded
	}

	if _, err := uc.routeRepo.GetByID(ctx, req.RouteID); err != nil {
		return nil, err
	}
	if _, err := uc.carriageTypeRepo.GetByID(ctx, req.CarriageTypeID); err != nil {
		return nil, err
	}

	carriage := &domain.Carriage{
		RouteID:        req.RouteID,
		CarriageTypeID: req.CarriageTypeID,
		SeatAmount:     req.SeatAmount,
	}

	if err := uc.carriageRepo.Create(ctx, carriage); err != nil {
		return nil, err
	}

	uc.logger.Info("Carriage created",
		zap.Int64("carriage_id", carriage.ID),
		zap.Int64("route_id", carriage.RouteID),
		zap.Int("seat_amount", carriage.SeatAmount))

	return carriage, nil
}

// ListByRoute возвращает вагоны маршрута
func (uc *CarriageUseCase) ListByRoute(ctx context.Context, routeID int64) ([]*domain.Carriage, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}
	return uc.carriageRepo.ListByRoute(ctx, routeID)
}

// AvailableSeats возвращает свободные места вагона
func (uc *CarriageUseCase) AvailableSeats(ctx context.Context, carriageID int64) (*dto.AvailableSeatsResponse, error) {
	carriage, err := uc.carriageRepo.GetByID(ctx, carriageID)
	if err != nil {
		return nil, err
	}

	taken, err := uc.carriageRepo.TakenSeats(ctx, carriageID)
	if err != nil {
		return nil, err
	}

	return &dto.AvailableSeatsResponse{
		CarriageID: carriage.ID,
		Seats:      carriage.AvailableSeats(taken),
	}, nil
}
