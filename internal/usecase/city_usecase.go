package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/usecase/dto"
)

// CityUseCase - use case справочника городов и точек прибытия
type CityUseCase struct {
	cityRepo  repository.CityRepository
	pointRepo repository.ArrivalPointRepository
	logger    *zap.Logger
}

// NewCityUseCase создает новый CityUseCase
func NewCityUseCase(
	cityRepo repository.CityRepository,
	pointRepo repository.ArrivalPointRepository,
	logger *zap.Logger,
) *CityUseCase {
	return &CityUseCase{
		cityRepo:  cityRepo,
		pointRepo: pointRepo,
		logger:    logger,
	}
}

// CreateCity создает город
func (uc *CityUseCase) CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*domain.City, error) {
	city := &domain.City{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := uc.cityRepo.Create(ctx, city); err != nil {
		return nil, err
	}

	uc.logger.Info("City created",
		zap.Int64("city_id", city.ID),
		zap.String("name", city.Name))

	return city, nil
}

// GetCity возвращает город по ID
func (uc *CityUseCase) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return uc.cityRepo.GetByID(ctx, id)
}

// ListCities возвращает все города
func (uc *CityUseCase) ListCities(ctx context.Context) ([]*domain.City, error) {
	return uc.cityRepo.List(ctx)
}

// CreateArrivalPoint создает точку прибытия в существующем городе
func (uc *CityUseCase) CreateArrivalPoint(ctx context.Context, req *dto.CreateArrivalPointRequest) (*domain.ArrivalPoint, error) {
	city, err := uc.cityRepo.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	point := &domain.ArrivalPoint{
		CityID: city.ID,
		Place:  req.Place,
	}

	if err := uc.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}
	point.CityName = city.Name

	uc.logger.Info("Arrival point created",
		zap.Int64("point_id", point.ID),
		zap.Int64("city_id", city.ID),
		zap.String("place", point.Place))

	return point, nil
}

// ListArrivalPoints возвращает все точки прибытия
func (uc *CityUseCase) ListArrivalPoints(ctx context.Context) ([]*domain.ArrivalPoint, error) {
	return uc.pointRepo.List(ctx)
}
