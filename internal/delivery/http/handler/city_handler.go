package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/pkg/utils"
	"github.com/railway-booking/internal/pkg/validator"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

// CityHandler - обработчик справочника городов и точек прибытия
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// CreateCity godoc
// @Summary Создание города
// @Description Добавляет город в справочник. Имя города уникально.
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body dto.CreateCityRequest true "Город"
// @Success 201 {object} utils.SuccessResponse{data=domain.City}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cities [post]
func (h *CityHandler) CreateCity(c *fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	city, err := h.cityUC.CreateCity(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, city)
}

// ListCities godoc
// @Summary Список городов
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.City}
// @Router /api/v1/cities [get]
func (h *CityHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.cityUC.ListCities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// GetCity godoc
// @Summary Город по ID
// @Tags Cities
// @Produce json
// @Param id path int true "ID города"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [get]
func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	city, err := h.cityUC.GetCity(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// CreateArrivalPoint godoc
// @Summary Создание точки прибытия
// @Description Добавляет вокзал или платформу в существующем городе
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body dto.CreateArrivalPointRequest true "Точка прибытия"
// @Success 201 {object} utils.SuccessResponse{data=domain.ArrivalPoint}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/arrival-points [post]
func (h *CityHandler) CreateArrivalPoint(c *fiber.Ctx) error {
	var req dto.CreateArrivalPointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	point, err := h.cityUC.CreateArrivalPoint(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, point)
}

// ListArrivalPoints godoc
// @Summary Список точек прибытия
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ArrivalPoint}
// @Router /api/v1/arrival-points [get]
func (h *CityHandler) ListArrivalPoints(c *fiber.Ctx) error {
	points, err := h.cityUC.ListArrivalPoints(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, points, &utils.Meta{Total: len(points)})
}
