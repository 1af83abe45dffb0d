package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/delivery/http/middleware"
	"github.com/railway-booking/internal/pkg/utils"
	"github.com/railway-booking/internal/pkg/validator"
	"github.com/railway-booking/internal/usecase"
	"github.com/railway-booking/internal/usecase/dto"
)

// DiscountHandler - обработчик скидок и их видов
type DiscountHandler struct {
	discountUC *usecase.DiscountUseCase
	logger     *zap.Logger
}

// NewDiscountHandler - создание нового DiscountHandler
func NewDiscountHandler(discountUC *usecase.DiscountUseCase, logger *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		discountUC: discountUC,
		logger:     logger,
	}
}

// CreateDiscountType godoc
// @Summary Создание вида скидки
// @Description Limited-вид обязан иметь лимит применений, permanent действует без ограничений
// @Tags Discounts
// @Accept json
// @Produce json
// @Param request body dto.CreateDiscountTypeRequest true "Вид скидки"
// @Success 201 {object} utils.SuccessResponse{data=domain.DiscountType}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/discount-types [post]
func (h *DiscountHandler) CreateDiscountType(c *fiber.Ctx) error {
	var req dto.CreateDiscountTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	dt, err := h.discountUC.CreateDiscountType(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, dt)
}

// ListDiscountTypes godoc
// @Summary Список видов скидок
// @Tags Discounts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DiscountType}
// @Router /api/v1/discount-types [get]
func (h *DiscountHandler) ListDiscountTypes(c *fiber.Ctx) error {
	types, err := h.discountUC.ListDiscountTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// CreateDiscount godoc
// @Summary Выдача скидки пользователю
// @Tags Discounts
// @Accept json
// @Produce json
// @Param request body dto.CreateDiscountRequest true "Скидка"
// @Success 201 {object} utils.SuccessResponse{data=domain.DiscountWithType}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/discounts [post]
func (h *DiscountHandler) CreateDiscount(c *fiber.Ctx) error {
	var req dto.CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	discount, err := h.discountUC.CreateDiscount(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, discount)
}

// ListMy godoc
// @Summary Скидки пользователя
// @Tags Discounts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DiscountWithType}
// @Security BearerAuth
// @Router /api/v1/discounts [get]
func (h *DiscountHandler) ListMy(c *fiber.Ctx) error {
	discounts, err := h.discountUC.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, discounts, &utils.Meta{Total: len(discounts)})
}
