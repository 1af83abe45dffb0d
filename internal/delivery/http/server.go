package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/config"
	"github.com/railway-booking/internal/delivery/http/handler"
	"github.com/railway-booking/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	cityHandler     *handler.CityHandler
	routeHandler    *handler.RouteHandler
	carriageHandler *handler.CarriageHandler
	ticketHandler   *handler.TicketHandler
	orderHandler    *handler.OrderHandler
	discountHandler *handler.DiscountHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	cityHandler *handler.CityHandler,
	routeHandler *handler.RouteHandler,
	carriageHandler *handler.CarriageHandler,
	ticketHandler *handler.TicketHandler,
	orderHandler *handler.OrderHandler,
	discountHandler *handler.DiscountHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Railway Booking",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		cityHandler:     cityHandler,
		routeHandler:    routeHandler,
		carriageHandler: carriageHandler,
		ticketHandler:   ticketHandler,
		orderHandler:    orderHandler,
		discountHandler: discountHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := middleware.JWTAuth(s.config.Auth.JWTSecret)
	admin := middleware.RequireAdmin()

	// Справочники
	api.Get("/cities", s.cityHandler.ListCities)
	api.Get("/cities/:id", s.cityHandler.GetCity)
	api.Post("/cities", auth, admin, s.cityHandler.CreateCity)
	api.Get("/arrival-points", s.cityHandler.ListArrivalPoints)
	api.Post("/arrival-points", auth, admin, s.cityHandler.CreateArrivalPoint)
	api.Get("/carriage-types", s.carriageHandler.ListCarriageTypes)
	api.Post("/carriage-types", auth, admin, s.carriageHandler.CreateCarriageType)

	// Маршруты и поиск. /routes/search раньше /routes/:id, иначе fiber
	// съест search как id
	api.Get("/routes/search", s.routeHandler.Search)
	api.Get("/routes", s.routeHandler.List)
	api.Get("/routes/:id", s.routeHandler.GetByID)
	api.Get("/routes/:id/carriages", s.routeHandler.ListCarriages)
	api.Post("/routes", auth, admin, s.routeHandler.Create)

	// Вагоны
	api.Post("/carriages", auth, admin, s.carriageHandler.CreateCarriage)
	api.Get("/carriages/:id/available-seats", s.carriageHandler.AvailableSeats)

	// Билеты
	api.Post("/tickets", auth, s.ticketHandler.Purchase)
	api.Get("/tickets", auth, s.ticketHandler.ListMy)
	api.Get("/tickets/:id", auth, s.ticketHandler.GetByID)

	// Заказы и оплата
	api.Get("/orders/:status", auth, s.orderHandler.ListByStatus)
	api.Patch("/orders/:id", auth, admin, s.orderHandler.Update)
	api.Post("/orders/:id/buy", auth, s.orderHandler.Buy)

	// Скидки
	api.Get("/discount-types", s.discountHandler.ListDiscountTypes)
	api.Post("/discount-types", auth, admin, s.discountHandler.CreateDiscountType)
	api.Get("/discounts", auth, s.discountHandler.ListMy)
	api.Post("/discounts", auth, admin, s.discountHandler.CreateDiscount)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
