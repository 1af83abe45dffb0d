package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/usecase/dto"
)

// RouteUseCase - use case маршрутов: создание, просмотр и поиск
type RouteUseCase struct {
	routeRepo    repository.RouteRepository
	carriageRepo repository.CarriageRepository
	pointRepo    repository.ArrivalPointRepository
	cityRepo     repository.CityRepository
	cache        repository.CacheRepository
	logger       *zap.Logger
	searchTTL    time.Duration
	now          func() time.Time
}

// NewRouteUseCase создает новый RouteUseCase
func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	carriageRepo repository.CarriageRepository,
	pointRepo repository.ArrivalPointRepository,
	cityRepo repository.CityRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	searchTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:    routeRepo,
		carriageRepo: carriageRepo,
		pointRepo:    pointRepo,
		cityRepo:     cityRepo,
		cache:        cache,
		logger:       logger,
		searchTTL:    searchTTL,
		now:          time.Now,
	}
}

// Create создает маршрут с остановками. Порядок остановок берётся из
// порядка элементов запроса, цены и времена прибытия обязаны не убывать.
func (uc *RouteUseCase) Create(ctx context.Context, req *dto.CreateRouteRequest) (*domain.RouteWithStops, error) {
	if _, err := uc.pointRepo.GetByID(ctx, req.DeparturePointID); err != nil {
		return nil, err
	}

	stops := make([]domain.RouteStop, 0, len(req.Stops))
	for i, in := range req.Stops {
		if _, err := uc.pointRepo.GetByID(ctx, in.ArrivalPointID); err != nil {
			return nil, err
		}
		stops = append(stops, domain.RouteStop{
			ArrivalPointID: in.ArrivalPointID,
			StopOrder:      i + 1,
			Price:          in.Price,
			ArrivalTime:    in.ArrivalTime,
		})
	}

	if err := domain.ValidateStops(req.DepartureTime, stops); err != nil {
		return nil, err
	}

	route := &domain.Route{
		DeparturePointID: req.DeparturePointID,
		DepartureTime:    req.DepartureTime,
	}

	if err := uc.routeRepo.CreateWithStops(ctx, route, stops); err != nil {
		return nil, err
	}

	// Новый маршрут меняет результаты поиска
	if err := uc.cache.InvalidateSearch(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate search cache", zap.Error(err))
	}

	uc.logger.Info("Route created",
		zap.Int64("route_id", route.ID),
		zap.Int("stops", len(stops)))

	return uc.routeRepo.GetByID(ctx, route.ID)
}

// GetByID возвращает маршрут со свободными местами
func (uc *RouteUseCase) GetByID(ctx context.Context, id int64) (*dto.RouteResponse, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.withAvailability(ctx, route)
}

// List возвращает все маршруты со свободными местами
func (uc *RouteUseCase) List(ctx context.Context) ([]*dto.RouteResponse, error) {
	routes, err := uc.routeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RouteResponse, 0, len(routes))
	for _, route := range routes {
		resp, err := uc.withAvailability(ctx, route)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

// Search ищет маршруты, отправляющиеся из города либо проходящие через
// него не конечной остановкой. Фильтры применяются поверх кандидатов:
// календарный день, город прибытия, исключение уже отправившихся.
// Результат кешируется на searchTTL.
func (uc *RouteUseCase) Search(ctx context.Context, query *dto.SearchRoutesQuery) (*dto.SearchRoutesResponse, error) {
	key := searchCacheKey(query)

	if data, err := uc.cache.GetSearch(ctx, key); err != nil {
		uc.logger.Warn("Search cache read failed", zap.Error(err))
	} else if data != nil {
		var cached dto.SearchRoutesResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warn("Corrupted search cache entry", zap.String("key", key))
	}

	departureCity, err := uc.cityRepo.GetByName(ctx, query.DepartureCity)
	if err != nil {
		if stderrors.Is(err, errors.ErrCityNotFound) {
			return nil, errors.ErrInvalidRequest.WithField("departure_city", "unknown city")
		}
		return nil, err
	}

	var arrivalCity *domain.City
	if query.ArrivalCity != "" {
		arrivalCity, err = uc.cityRepo.GetByName(ctx, query.ArrivalCity)
		if err != nil {
			if stderrors.Is(err, errors.ErrCityNotFound) {
				return nil, errors.ErrInvalidRequest.WithField("arrival_city", "unknown city")
			}
			return nil, err
		}
	}

	candidates, err := uc.routeRepo.FindCandidates(ctx, departureCity.ID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	result := make([]*dto.RouteResponse, 0, len(candidates))
	for _, route := range candidates {
		if route.DepartureTime.Before(now) {
			continue
		}
		if query.Day != nil && !route.TouchesDay(*query.Day) {
			continue
		}
		if arrivalCity != nil && !route.ServesCity(arrivalCity.ID) {
			continue
		}

		resp, err := uc.withAvailability(ctx, route)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	response := &dto.SearchRoutesResponse{Routes: result, Total: len(result)}

	if data, err := json.Marshal(response); err == nil {
		if err := uc.cache.SetSearch(ctx, key, data, uc.searchTTL); err != nil {
			uc.logger.Warn("Search cache write failed", zap.Error(err))
		}
	}

	return response, nil
}

func (uc *RouteUseCase) withAvailability(ctx context.Context, route *domain.RouteWithStops) (*dto.RouteResponse, error) {
	available, err := uc.carriageRepo.AvailableSeatsByRoute(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	return &dto.RouteResponse{
		RouteWithStops:       route,
		AvailableSeatsAmount: available,
	}, nil
}

func searchCacheKey(query *dto.SearchRoutesQuery) string {
	day := ""
	if query.Day != nil {
		day = query.Day.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("%s:%s:%s",
		strings.ToLower(query.DepartureCity),
		strings.ToLower(query.ArrivalCity),
		day)
}
