// Package main is the entry point for the paywave API server. It wires
// configuration, the wallet store, the Redis cache and the HTTP surface,
// then serves until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paywave/internal/config"
	"paywave/internal/handlers"
	"paywave/internal/repositories"
	"paywave/internal/repositories/cache"
	"paywave/internal/services/identity"
	"paywave/internal/services/transfer"
	"paywave/internal/services/user"
	"paywave/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	if config.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(level)
	}

	db, err := repositories.InitDB()
	if err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheSvc := cache.NewService(redisClient, config.GetDurationEnv("CACHE_TTL", time.Minute))
	if err := cacheSvc.HealthCheck(context.Background()); err != nil {
		logrus.Fatalf("failed to connect to redis: %v", err)
	}
	defer func() {
		if err := cacheSvc.Close(); err != nil {
			logrus.Warnf("failed to close redis connection: %v", err)
		}
	}()

	// Repositories and services.
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	verifier := identity.NewService(config.GetEnv("JWT_SECRET", "dev-secret"))
	walletSvc := wallet.NewService(walletRepo, cacheSvc, nil)
	userSvc := user.NewService(userRepo, startingBalance())
	transferSvc := transfer.NewService(
		userRepo,
		walletRepo,
		paymentRepo,
		walletSvc,
		cacheSvc,
		config.GetDurationEnv("STORE_TIMEOUT", transfer.DefaultStoreTimeout),
	)

	app := fiber.New(fiber.Config{
		AppName: "paywave",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/transfers", mutationLimiter())
	app.Use("/users", mutationLimiter())

	routes := &handlers.Routes{
		Transfer: handlers.NewTransferHandler(transferSvc, userSvc),
		User:     handlers.NewUserHandler(userSvc, walletSvc),
		Health:   handlers.NewHealthHandler(db, cacheSvc),
		Verifier: verifier,
	}
	routes.Setup(app)

	go func() {
		addr := ":" + config.GetEnv("PORT", "3000")
		if err := app.Listen(addr); err != nil {
			logrus.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logrus.Errorf("error during shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// mutationLimiter rate-limits state-changing endpoints per client IP.
func mutationLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 20),
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet
		},
	})
}

func startingBalance() decimal.Decimal {
	raw := config.GetEnv("STARTING_BALANCE", "")
	if raw == "" {
		return user.DefaultStartingBalance
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		logrus.Warnf("invalid STARTING_BALANCE %q, using default", raw)
		return user.DefaultStartingBalance
	}
	return d
}
