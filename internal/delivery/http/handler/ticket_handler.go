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

// TicketHandler - обработчик покупки билетов
type TicketHandler struct {
	ticketUC *usecase.TicketUseCase
	logger   *zap.Logger
}

// NewTicketHandler - создание нового TicketHandler
func NewTicketHandler(ticketUC *usecase.TicketUseCase, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		ticketUC: ticketUC,
		logger:   logger,
	}
}

// Purchase godoc
// @Summary Покупка билета
// @Description Покупает место в вагоне на сегмент маршрута. Билет попадает в pending-заказ пользователя, заказ создаётся при отсутствии. Гонка за место возвращает 409.
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body dto.PurchaseTicketRequest true "Билет"
// @Success 201 {object} utils.SuccessResponse{data=dto.PurchaseTicketResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tickets [post]
func (h *TicketHandler) Purchase(c *fiber.Ctx) error {
	var req dto.PurchaseTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.ticketUC.Purchase(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// ListMy godoc
// @Summary Билеты пользователя
// @Tags Tickets
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Ticket}
// @Security BearerAuth
// @Router /api/v1/tickets [get]
func (h *TicketHandler) ListMy(c *fiber.Ctx) error {
	tickets, err := h.ticketUC.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tickets, &utils.Meta{Total: len(tickets)})
}

// GetByID godoc
// @Summary Билет по ID
// @Tags Tickets
// @Produce json
// @Param id path int true "ID билета"
// @Success 200 {object} utils.SuccessResponse{data=domain.Ticket}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, validator.ErrBadID("id"))
	}

	ticket, err := h.ticketUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ticket, nil)
}
