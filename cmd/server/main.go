package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ridehail/internal/app"
	"ridehail/internal/config"
	"ridehail/internal/handler"
	"ridehail/internal/logger"
	"ridehail/internal/repository/postgres"
	"ridehail/internal/service"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	cfg := config.Load(*envFile)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST so the logger and database can be instrumented.
	var nrApp *newrelic.Application
	var nrErr error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, nrErr = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
	}

	log := logger.New(cfg.Log, nrApp)
	defer log.Sync()

	if nrErr != nil {
		log.Warn("failed to initialize New Relic", zap.Error(nrErr))
		nrApp = nil
	} else if nrApp != nil {
		log.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
	}

	if err := app.ValidateStorage(cfg.Storage); err != nil {
		log.Fatal("invalid storage configuration", zap.Error(err))
	}

	var db *sql.DB
	var repos *app.Repositories
	if cfg.Storage.Driver == config.StorageDriverMemory {
		repos = app.NewMemoryRepositories()
		log.Info("Using in-memory storage")
	} else {
		var err error
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		log.Info("Connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

		if cfg.Storage.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				log.Fatal("failed to migrate database", zap.Error(err))
			}
			log.Info("Database schema up to date")
		}
		repos = app.NewPostgresRepositories(db)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		var err error
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	server := wireServer(repos, db, redisClient, nrApp, log, cfg)

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(cfg.Server.ShutdownTimeout)
	}

	log.Info("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(repos *app.Repositories, db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, log *zap.Logger, cfg *config.Config) *http.Server {
	userService := service.NewCrudService(repos.Users)
	driverService := service.NewCrudService(repos.Drivers)
	rideService := service.NewCrudService(repos.Rides)
	paymentService := service.NewCrudService(repos.Payments)

	var healthCheck func() error
	if db != nil {
		healthCheck = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		}
	}

	router := app.NewRouter(app.RouterDeps{
		UserHandler:    handler.NewUserHandler(userService),
		DriverHandler:  handler.NewDriverHandler(driverService),
		RideHandler:    handler.NewRideHandler(rideService),
		PaymentHandler: handler.NewPaymentHandler(paymentService),
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
		HealthCheck:    healthCheck,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
