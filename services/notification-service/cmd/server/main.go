package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/config"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/events"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/handler"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/middleware"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/repository"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/seed"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("HOTEL_CONFIG_FILE")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Load the initial notification list
	notifications, err := loadSeed(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load seed notifications", zap.Error(err))
	}

	notificationRepo, err := repository.NewNotificationRepository(notifications, logger)
	if err != nil {
		logger.Fatal("Failed to initialize notification store", zap.Error(err))
	}

	// Initialize Redis client
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = setupRedis(cfg, logger)
		if err != nil {
			logger.Error("Failed to set up Redis", zap.Error(err))
			// Continue with the in-memory rate limiter
		}
	}

	// Initialize lifecycle event publisher
	publisher := setupPublisher(cfg, logger)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, publisher, cfg.Notifications.PublishTimeout, logger)
	dashboardService := service.NewDashboardService(notificationService, cfg.Notifications.RecentLimit, logger)

	// Initialize handlers
	notificationHandler := handler.NewNotificationHandler(notificationService, dashboardService, logger)

	// Set up HTTP server with Gin
	router := setupRouter(notificationHandler, cfg, logger, redisClient)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting notification service",
			zap.String("port", cfg.Server.Port),
			zap.Int("notifications", len(notifications)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := publisher.Close(); err != nil {
		logger.Error("Failed to close event publisher", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis client", zap.Error(err))
		}
	}

	logger.Info("Server exited properly")
}

// loadSeed reads the configured seed file or falls back to the built-in fixtures
func loadSeed(cfg *config.Config, logger *zap.Logger) ([]model.Notification, error) {
	now := time.Now()
	if cfg.Notifications.SeedFile == "" {
		logger.Info("Using built-in notification fixtures")
		return seed.DefaultNotifications(now), nil
	}

	notifications, err := seed.LoadFile(cfg.Notifications.SeedFile, now)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded seed file",
		zap.String("path", cfg.Notifications.SeedFile),
		zap.Int("count", len(notifications)))
	return notifications, nil
}

// setupRedis initializes the Redis client
func setupRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	redisOptions, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("Failed to parse Redis URL, using it as an address", zap.Error(err))
		redisOptions = &redis.Options{
			Addr: cfg.Redis.URL,
			DB:   cfg.Redis.DB,
		}
	}
	if cfg.Redis.Password != "" {
		redisOptions.Password = cfg.Redis.Password
	}

	client := redis.NewClient(redisOptions)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("Connected to Redis", zap.String("addr", redisOptions.Addr))
	return client, nil
}

// setupPublisher returns a Kafka producer when enabled, otherwise a no-op publisher
func setupPublisher(cfg *config.Config, logger *zap.Logger) events.Publisher {
	if !cfg.Kafka.Enabled {
		logger.Info("Kafka disabled, lifecycle events will not be published")
		return events.NopPublisher{}
	}

	producer := events.NewKafkaProducer(events.ProducerConfig{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		ClientID:      cfg.Kafka.ClientID,
		MaxRetries:    cfg.Kafka.MaxRetries,
		RetryInterval: cfg.Kafka.RetryInterval,
	}, logger)

	logger.Info("Initialized Kafka producer",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic))
	return producer
}

func setupRouter(
	notificationHandler *handler.NotificationHandler,
	cfg *config.Config,
	logger *zap.Logger,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	// Redis-based rate limiting (if Redis is available)
	if redisClient != nil && cfg.RateLimit.Enabled {
		router.Use(middleware.RedisRateLimit(redisClient, middleware.RedisRateLimitConfig{
			RequestsPerMinute:  cfg.RateLimit.RequestsPerMinute,
			ClientIPHeaderName: cfg.RateLimit.ClientIPHeaderName,
			KeyPrefix:          cfg.Redis.KeyPrefix,
		}, logger))
	} else if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.BurstSize,
		), cfg.RateLimit.ClientIPHeaderName))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"

		if redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
			defer cancel()

			if _, err := redisClient.Ping(ctx).Result(); err != nil {
				status = "degraded"
				logger.Warn("Redis health check failed", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"redis":  redisClient != nil,
			"kafka":  cfg.Kafka.Enabled,
		})
	})

	api := router.Group("/api/v1")
	notificationHandler.RegisterRoutes(api)

	return router
}

func createLogger(level, format string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if format == "console" {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
