package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/pkg/utils"
	"github.com/railway-booking/internal/pkg/validator"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

// RouteHandler - обработчик маршрутов и поиска
type RouteHandler struct {
	routeUC    *usecase.RouteUseCase
	carriageUC *usecase.CarriageUseCase
	logger     *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, carriageUC *usecase.CarriageUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC:    routeUC,
		carriageUC: carriageUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Создание маршрута
// @Description Создает маршрут с остановками. Порядок остановок задаётся порядком элементов массива, цены и времена прибытия не убывают вдоль маршрута.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Маршрут с остановками"
// @Success 201 {object} utils.SuccessResponse{data=domain.RouteWithStops}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, route)
}

// List godoc
// @Summary Список маршрутов
// @Description Возвращает все маршруты с остановками и числом свободных мест
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.RouteResponse}
// @Router /api/v1/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	routes, err := h.routeUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{Total: len(routes)})
}

// GetByID godoc
// @Summary Маршрут по ID
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	route, err := h.routeUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Search godoc
// @Summary Поиск маршрутов
// @Description Ищет маршруты из города отправления: начинающиеся в нём или проходящие через него не конечной остановкой. Уже отправившиеся маршруты исключаются.
// @Tags Routes
// @Produce json
// @Param departure_city query string true "Город отправления"
// @Param arrival_city query string false "Город прибытия"
// @Param day query string false "Календарный день в формате 2006-01-02"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchRoutesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/search [get]
func (h *RouteHandler) Search(c *fiber.Ctx) error {
	query := dto.SearchRoutesQuery{
		DepartureCity: c.Query("departure_city"),
		ArrivalCity:   c.Query("arrival_city"),
	}

	if day := c.Query("day"); day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithField("day", "must be a date in 2006-01-02 format"))
		}
		query.Day = &parsed
	}

	if err := validator.Validate(&query); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Search(c.Context(), &query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// ListCarriages godoc
// @Summary Вагоны маршрута
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Carriage}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/carriages [get]
func (h *RouteHandler) ListCarriages(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	carriages, err := h.carriageUC.ListByRoute(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, carriages, &utils.Meta{Total: len(carriages)})
}
