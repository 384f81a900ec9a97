package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/bekzodtm/shoppay/internal/pkg/config"
	"github.com/bekzodtm/shoppay/internal/pkg/database"
	"github.com/bekzodtm/shoppay/internal/pkg/health"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/middleware"
	natspkg "github.com/bekzodtm/shoppay/internal/pkg/nats"
	"github.com/bekzodtm/shoppay/internal/pkg/server"
	"github.com/bekzodtm/shoppay/services/payment/gateway"
	"github.com/bekzodtm/shoppay/services/payment/gateway/click"
	"github.com/bekzodtm/shoppay/services/payment/handler"
	"github.com/bekzodtm/shoppay/services/payment/repository"
	"github.com/bekzodtm/shoppay/services/payment/usecase"
)

func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway providers and webhook signature verifier
	providerFactory := gateway.NewFactory(configs)
	verifier := click.NewSignatureVerifier(configs.Click.SecretKey)

	// Initialize UseCase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, providerFactory, verifier, natsClient)

	// Initialize handlers
	paymentHandler := handler.NewHandler(configs, paymentUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, configs.App.Name)

	// Register service routes
	paymentHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
