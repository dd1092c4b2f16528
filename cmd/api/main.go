// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/brewline/stockroom-be/internal/adapters/db"
	redis_a "github.com/brewline/stockroom-be/internal/adapters/redis_adapter"
	"github.com/brewline/stockroom-be/internal/core/ports"
	"github.com/brewline/stockroom-be/internal/core/services"
	"github.com/brewline/stockroom-be/internal/handlers"
	"github.com/brewline/stockroom-be/internal/handlers/middleware"
	"github.com/brewline/stockroom-be/internal/pkg/config"
	"github.com/brewline/stockroom-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	appLogger := logger.SetupLogger("debug", "json")
	slogger := appLogger.Logger

	slogger.Info("starting stockroom inventory service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, appLogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	warehouseHandler *handlers.WarehouseHandler
	kitchenHandler   *handlers.KitchenHandler
	transferHandler  *handlers.TransferHandler
	posHandler       *handlers.POSHandler
	healthHandler    *handlers.HealthHandler
	dashboardHandler *handlers.DashboardHandler
	exportHandler    *handlers.ExportHandler
	importHandler    *handlers.ImportHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisOpts := &redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	}

	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	deps.asynqClient = asynqClient

	asynqInspector := asynq.NewInspector(asynqRedisOpt)
	deps.asynqInspector = asynqInspector

	// Repositories
	warehouseRepo := db.NewWarehouseRepository(database, logger)
	kitchenRepo := db.NewKitchenRepository(database, logger)
	transferRepo := db.NewTransferRepository(database, logger)
	recipeRepo := db.NewRecipeRepository(database, logger)
	reservationRepo := db.NewReservationRepository(database, logger)
	batchNums := db.NewBatchNumberSource(database)

	// Services
	warehouseService := services.NewWarehouseService(warehouseRepo, logger)
	transferService := services.NewTransferService(warehouseRepo, kitchenRepo, transferRepo, batchNums, deps.redisCache, logger)
	kitchenService := services.NewKitchenService(kitchenRepo, deps.redisCache, logger)
	availabilityService := services.NewAvailabilityService(recipeRepo, kitchenRepo, deps.redisCache, logger).
		WithCacheTTL(cfg.Stock.AvailabilityCacheTTL)
	reservationService := services.NewReservationService(recipeRepo, reservationRepo, deps.redisCache, logger)
	recipeService := services.NewRecipeService(recipeRepo, logger)

	// Handlers
	deps.warehouseHandler = handlers.NewWarehouseHandler(warehouseService, logger)
	deps.kitchenHandler = handlers.NewKitchenHandler(kitchenService, transferService, logger)
	deps.transferHandler = handlers.NewTransferHandler(transferService, logger)
	deps.posHandler = handlers.NewPOSHandler(availabilityService, reservationService, recipeService, logger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		asynqInspector,
		cfg,
		logger,
	)
	deps.dashboardHandler = handlers.NewDashboardHandler(database, deps.redisCache, logger)
	deps.exportHandler = handlers.NewExportHandler(database, deps.redisCache, logger)

	maxFileSize := int64(cfg.FileProcessing.ExcelMaxSizeMB * 1024 * 1024)
	deps.importHandler = handlers.NewImportHandler(asynqClient, logger, maxFileSize, cfg.FileProcessing.TempDir)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(appLogger)(handler)
		handler = middleware.Recovery(appLogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(appLogger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Warehouse ledger
	mux.HandleFunc("GET "+apiV1+"/warehouse/{id}", deps.warehouseHandler.Get)
	mux.HandleFunc("GET "+apiV1+"/warehouse", deps.warehouseHandler.List)
	mux.HandleFunc("POST "+apiV1+"/warehouse", deps.warehouseHandler.Receive)
	mux.HandleFunc("DELETE "+apiV1+"/warehouse/{id}", deps.warehouseHandler.Delete)

	// Kitchen ledger
	mux.HandleFunc("GET "+apiV1+"/kitchen/{id}", deps.kitchenHandler.Get)
	mux.HandleFunc("GET "+apiV1+"/kitchen", deps.kitchenHandler.List)
	mux.HandleFunc("PATCH "+apiV1+"/kitchen/{id}/status", deps.kitchenHandler.UpdateStatus)
	mux.HandleFunc("POST "+apiV1+"/kitchen/{id}/restock", deps.kitchenHandler.FastTrack)

	// Transfers
	mux.HandleFunc("POST "+apiV1+"/transfers", deps.transferHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/transfers/history", deps.transferHandler.History)

	// POS integration
	mux.HandleFunc("GET "+apiV1+"/pos/availability", deps.posHandler.CheckAvailability)
	mux.HandleFunc("GET "+apiV1+"/pos/availability/ingredients/{id}", deps.posHandler.IngredientAvailability)
	mux.HandleFunc("POST "+apiV1+"/pos/orders/{order_id}/reserve", deps.posHandler.ReserveOrder)
	mux.HandleFunc("POST "+apiV1+"/pos/orders/{order_id}/finalize", deps.posHandler.FinalizeOrder)
	mux.HandleFunc("POST "+apiV1+"/pos/orders/{order_id}/cancel", deps.posHandler.CancelOrder)

	// Recipes
	mux.HandleFunc("GET "+apiV1+"/recipes", deps.posHandler.ListRecipes)
	mux.HandleFunc("POST "+apiV1+"/recipes", deps.posHandler.SaveRecipeLine)
	mux.HandleFunc("DELETE "+apiV1+"/recipes/{id}", deps.posHandler.DeleteRecipeLine)

	// Import / export
	mux.HandleFunc("POST "+apiV1+"/import/intake", deps.importHandler.ImportIntake)
	mux.HandleFunc("GET "+apiV1+"/export/excel", deps.exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/export/json", deps.exportHandler.ExportJSON)

	// Dashboard
	mux.HandleFunc("GET "+apiV1+"/dashboard", deps.dashboardHandler.GetDashboard)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
