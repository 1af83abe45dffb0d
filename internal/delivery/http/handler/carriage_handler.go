package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/pkg/utils"
	"github.com/railway-booking/internal/pkg/validator"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

// CarriageHandler - обработчик вагонов и их типов
type CarriageHandler struct {
	carriageUC *usecase.CarriageUseCase
	logger     *zap.Logger
}

// NewCarriageHandler - создание нового CarriageHandler
func NewCarriageHandler(carriageUC *usecase.CarriageUseCase, logger *zap.Logger) *CarriageHandler {
	return &CarriageHandler{
		carriageUC: carriageUC,
		logger:     logger,
	}
}

// CreateCarriageType godoc
// @Summary Создание типа вагона
// @Tags Carriages
// @Accept json
// @Produce json
// @Param request body dto.CreateCarriageTypeRequest true "Тип вагона"
// @Success 201 {object} utils.SuccessResponse{data=domain.CarriageType}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/carriage-types [post]
func (h *CarriageHandler) CreateCarriageType(c *fiber.Ctx) error {
	var req dto.CreateCarriageTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ct, err := h.carriageUC.CreateCarriageType(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, ct)
}

// ListCarriageTypes godoc
// @Summary Список типов вагонов
// @Tags Carriages
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CarriageType}
// @Router /api/v1/carriage-types [get]
func (h *CarriageHandler) ListCarriageTypes(c *fiber.Ctx) error {
	types, err := h.carriageUC.ListCarriageTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// CreateCarriage godoc
// @Summary Создание вагона
// @Description Добавляет вагон к маршруту. Вместимость не больше 100 мест.
// @Tags Carriages
// @Accept json
// @Produce json
// @Param request body dto.CreateCarriageRequest true "Вагон"
// @Success 201 {object} utils.SuccessResponse{data=domain.Carriage}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/carriages [post]
func (h *CarriageHandler) CreateCarriage(c *fiber.Ctx) error {
	var req dto.CreateCarriageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	carriage, err := h.carriageUC.CreateCarriage(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, carriage)
}

// AvailableSeats godoc
// @Summary Свободные места вагона
// @Tags Carriages
// @Produce json
// @Param id path int true "ID вагона"
// @Success 200 {object} utils.SuccessResponse{data=dto.AvailableSeatsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/carriages/{id}/available-seats [get]
func (h *CarriageHandler) AvailableSeats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	seats, err := h.carriageUC.AvailableSeats(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, seats, &utils.Meta{Total: len(seats.Seats)})
}
