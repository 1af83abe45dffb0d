package main

// @title Railway Booking API
// @version 1.0.0
// @description Бэкенд бронирования железнодорожных билетов. Поиск маршрутов по городам и датам, свободные места вагонов, покупка билетов на сегменты маршрута, заказы-корзины и оплата со скидками.

// @contact.name API Support
// @contact.email support@railway-booking.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/railway-booking/docs/swagger"
	"github.com/railway-booking/internal/config"
	httpDelivery "github.com/railway-booking/internal/delivery/http"
	"github.com/railway-booking/internal/delivery/http/handler"
	"github.com/railway-booking/internal/infrastructure/payment"
	"github.com/railway-booking/internal/pkg/logger"
	"github.com/railway-booking/internal/repository/cache"
	"github.com/railway-booking/internal/repository/postgres"
	"github.com/railway-booking/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Railway Booking")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cityRepo := postgres.NewCityRepository(db)
	pointRepo := postgres.NewArrivalPointRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	carriageTypeRepo := postgres.NewCarriageTypeRepository(db)
	carriageRepo := postgres.NewCarriageRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	discountTypeRepo := postgres.NewDiscountTypeRepository(db)
	discountRepo := postgres.NewDiscountRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	paymentRepo := payment.NewClient(&cfg.Payment, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	cityUC := usecase.NewCityUseCase(cityRepo, pointRepo, log)
	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		carriageRepo,
		pointRepo,
		cityRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
	)
	carriageUC := usecase.NewCarriageUseCase(carriageRepo, carriageTypeRepo, routeRepo, log)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, carriageRepo, routeRepo, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, ticketRepo, discountRepo, log)
	checkoutUC := usecase.NewCheckoutUseCase(
		orderRepo,
		discountRepo,
		paymentRepo,
		log,
		cfg.Payment.Currency,
	)
	discountUC := usecase.NewDiscountUseCase(discountRepo, discountTypeRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	cityHandler := handler.NewCityHandler(cityUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, carriageUC, log)
	carriageHandler := handler.NewCarriageHandler(carriageUC, log)
	ticketHandler := handler.NewTicketHandler(ticketUC, log)
	orderHandler := handler.NewOrderHandler(orderUC, checkoutUC, log)
	discountHandler := handler.NewDiscountHandler(discountUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		cityHandler,
		routeHandler,
		carriageHandler,
		ticketHandler,
		orderHandler,
		discountHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
