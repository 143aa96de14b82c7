package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"vocab-drills/internal/adapter"
	"vocab-drills/internal/adapter/source"
	"vocab-drills/internal/cache"
	"vocab-drills/internal/config"
	"vocab-drills/internal/domain"
	"vocab-drills/internal/handler"
	"vocab-drills/internal/logger"
	"vocab-drills/internal/middleware"
	"vocab-drills/internal/repository"
	"vocab-drills/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Redis is optional; without it every bank load goes to the source.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without question bank cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	// Question source: a local dump takes precedence over a remote one
	var questionSource domain.QuestionSource
	if cfg.Source.Path != "" {
		questionSource = source.NewFileSource(cfg.Source.Path)
	} else {
		questionSource = source.NewHTTPSource(cfg.Source.URL, cfg.Source.Timeout)
	}
	appLogger.Info("Question source configured", zap.String("source", questionSource.Name()))

	// Initialize services
	bankService := service.NewQuestionBankService(questionSource, cacheAdapter, cfg.Redis.BankTTL, cfg.Drill.MaxQuestions)
	sessionRepository := repository.NewMemorySessionRepository(cfg.Drill.SessionTTL, cfg.Drill.MaxSessions)
	drillService := service.NewDrillService(bankService, sessionRepository)

	// Initialize handlers
	drillHandler := handler.NewDrillHandler(drillService, bankService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Get("/health", healthHandler.Check)

	// API group
	apiGroup := app.Group("/api")
	drillHandler.Register(apiGroup)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
