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

// OrderHandler - обработчик заказов и оплаты
type OrderHandler struct {
	orderUC    *usecase.OrderUseCase
	checkoutUC *usecase.CheckoutUseCase
	logger     *zap.Logger
}

// NewOrderHandler - создание нового OrderHandler
func NewOrderHandler(orderUC *usecase.OrderUseCase, checkoutUC *usecase.CheckoutUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC:    orderUC,
		checkoutUC: checkoutUC,
		logger:     logger,
	}
}

// ListByStatus godoc
// @Summary Заказы пользователя по статусу
// @Description Возвращает заказы пользователя в заданном статусе вместе с билетами
// @Tags Orders
// @Produce json
// @Param status path string true "Статус заказа" Enums(pending, success, fail)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.OrderWithTickets}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/orders/{status} [get]
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	orders, err := h.orderUC.ListByStatus(c.Context(), middleware.UserID(c), c.Params("status"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, orders, &utils.Meta{Total: len(orders)})
}

// Update godoc
// @Summary Правка заказа
// @Description Административная правка: смена статуса и/или применение скидки владельца заказа к сумме
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param request body dto.UpdateOrderRequest true "Изменения"
// @Success 200 {object} utils.SuccessResponse{data=domain.Order}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/orders/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.orderUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, order, nil)
}

// Buy godoc
// @Summary Оплата заказа
// @Description Оплачивает pending или fail заказ, опционально со скидкой. Отказ провайдера не расходует лимит скидки и переводит заказ в fail.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param request body dto.BuyOrderRequest false "Опциональная скидка"
// @Success 200 {object} utils.SuccessResponse{data=dto.BuyOrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/orders/{id}/buy [post]
func (h *OrderHandler) Buy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	var req dto.BuyOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.checkoutUC.Buy(c.Context(), middleware.UserID(c), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
