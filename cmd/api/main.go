package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "boomstream/internal/domain/usecase/auth"
	commentUseCase "boomstream/internal/domain/usecase/comment"
	giftUseCase "boomstream/internal/domain/usecase/gift"
	purchaseUseCase "boomstream/internal/domain/usecase/purchase"
	videoUseCase "boomstream/internal/domain/usecase/video"
	walletUseCase "boomstream/internal/domain/usecase/wallet"

	coreport "boomstream/internal/domain/port/core"
	ratelimitPort "boomstream/internal/domain/port/ratelimit"
	"boomstream/internal/infrastructure/adapter/api/handler"
	"boomstream/internal/infrastructure/adapter/api/routes"
	"boomstream/internal/infrastructure/adapter/database"
	"boomstream/internal/infrastructure/adapter/logger"
	ratelimitStore "boomstream/internal/infrastructure/adapter/ratelimit"
	"boomstream/internal/infrastructure/adapter/repository"
	timeProvider "boomstream/internal/infrastructure/adapter/time"
	"boomstream/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Background work (rate-limit janitor) stops with this context
	appCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	videoRepo := repository.NewVideoRepository(dbManager.DB(), tp, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(dbManager.DB(), tp, appLogger)
	commentRepo := repository.NewCommentRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Comment rate limiter store
	limiter, err := buildRateLimiter(appCtx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize rate limiter", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	ledger, err := walletUseCase.NewLedger(uow, tp, appLogger, cfg.Wallet.RechargeCap)
	if err != nil {
		appLogger.Error("Invalid wallet configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	videos := videoUseCase.NewUseCase(videoRepo, purchaseRepo, tp, appLogger)
	purchases := purchaseUseCase.NewUseCase(uow, videoRepo, ledger, tp, appLogger)

	gifts, err := giftUseCase.NewUseCase(uow, videoRepo, ledger, tp, appLogger, cfg.Wallet.MinGiftAmount)
	if err != nil {
		appLogger.Error("Invalid gift configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	comments := commentUseCase.NewUseCase(commentRepo, videoRepo, limiter, tp, appLogger)
	authService := authUseCase.NewService(accountRepo, tp, appLogger, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Wallet.InitialBalance)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(ledger, videos, purchases, comments, appLogger)
	videoHandler := handler.NewVideoHandler(videos, purchases, gifts, comments, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, userHandler, videoHandler, authService, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Stop background goroutines
	stopBackground()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildRateLimiter selects the comment admission store from configuration:
// the in-memory window for single-instance deployments, Redis for scaled ones
func buildRateLimiter(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (ratelimitPort.Admitter, error) {
	switch strings.ToLower(cfg.RateLimit.Store) {
	case "memory", "":
		store := ratelimitStore.NewMemoryStore(
			cfg.RateLimit.WindowSize,
			cfg.RateLimit.MaxComments,
			ratelimitStore.WithIdleTTL(cfg.RateLimit.IdleTTL),
		)
		store.StartJanitor(ctx)
		appLogger.Info("Comment rate limiter using in-memory store", map[string]any{
			"window":       cfg.RateLimit.WindowSize.String(),
			"max_comments": cfg.RateLimit.MaxComments,
		})
		return store, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.Redis.Addr,
			Password: cfg.RateLimit.Redis.Password,
			DB:       cfg.RateLimit.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RateLimit.Redis.Addr, err)
		}
		appLogger.Info("Comment rate limiter using redis store", map[string]any{
			"addr":         cfg.RateLimit.Redis.Addr,
			"window":       cfg.RateLimit.WindowSize.String(),
			"max_comments": cfg.RateLimit.MaxComments,
		})
		return ratelimitStore.NewRedisStore(client, cfg.RateLimit.WindowSize, cfg.RateLimit.MaxComments), nil

	default:
		return nil, fmt.Errorf("unknown rate limit store: %s", cfg.RateLimit.Store)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("BOOM_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or BOOM_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("BOOM_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or BOOM_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("BOOM_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or BOOM_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("BOOM_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or BOOM_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Auth configuration: the token secret must never be defaulted
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or BOOM_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// Wallet configuration
	if cfg.Wallet.InitialBalance == "" {
		missingConfigs = append(missingConfigs, "wallet.initialBalance")
	}
	if cfg.Wallet.RechargeCap == "" {
		missingConfigs = append(missingConfigs, "wallet.rechargeCap")
	}
	if cfg.Wallet.MinGiftAmount == "" {
		missingConfigs = append(missingConfigs, "wallet.minGiftAmount")
	}

	// Rate limiter configuration
	if cfg.RateLimit.WindowSize == 0 {
		missingConfigs = append(missingConfigs, "ratelimit.windowSize")
	}
	if cfg.RateLimit.MaxComments == 0 {
		missingConfigs = append(missingConfigs, "ratelimit.maxComments")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
