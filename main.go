package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abdurrahmanrahat/grocery-store-server/common/logger"
	"github.com/abdurrahmanrahat/grocery-store-server/config"
	"github.com/abdurrahmanrahat/grocery-store-server/controllers"
	"github.com/abdurrahmanrahat/grocery-store-server/database"
	"github.com/abdurrahmanrahat/grocery-store-server/kafka"
	"github.com/abdurrahmanrahat/grocery-store-server/middleware"
	"github.com/abdurrahmanrahat/grocery-store-server/repository"
	"github.com/abdurrahmanrahat/grocery-store-server/routes"
	"github.com/abdurrahmanrahat/grocery-store-server/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// --- 1. Stores ---

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	}

	// --- 2. Dependency injection ---

	userRepo := repository.NewUserRepository(database.DB)
	fishRepo := repository.NewFishRepository(database.DB)
	cartRepo := repository.NewCartRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure user indexes", zap.Error(err))
	}
	if err := cartRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure cart indexes", zap.Error(err))
	}
	indexCancel()

	var producer *kafka.Producer
	var orderEvents services.IEventProducer
	if cfg.KafkaBrokers != "" {
		producer = kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		orderEvents = producer
		defer producer.Close()
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	fishService := services.NewFishService(fishRepo, redisClient, cfg.CacheTTL)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, orderEvents)

	authController := controllers.NewAuthController(authService)
	fishController := controllers.NewFishController(fishService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	// Request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, authController, fishController, cartController, orderController)

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Grocery store server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	zap.L().Info("Server stopped gracefully")
}
