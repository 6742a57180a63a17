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
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/core/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/events"
	"github.com/SscSPs/cashbook_app/internal/handlers"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/SscSPs/cashbook_app/internal/platform/config"
	"github.com/SscSPs/cashbook_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashbook_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/cashbook_app/internal/repositories/memory"
	"github.com/SscSPs/cashbook_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title Cashbook API
// @version 1.0
// @description Tenant-scoped cashbook ledger with monthly balances.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, err := newPublisher(cfg)
	if err != nil {
		logger.Error("Failed to initialize event publisher", slog.String("driver", cfg.EventsDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(cfg, repos, services.WithEventPublisher(publisher))

	if cfg.SeedDemoTenants {
		if err := serviceContainer.Tenant.SeedTenants(middleware.WithLogger(ctx, logger), dto.DemoTenants()); err != nil {
			logger.Error("Failed to seed demo tenants", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// CORS for the browser UI
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, handlers.TenantHeader, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// openStore builds the repositories for the configured driver, running
// migrations first when enabled. The returned func releases the store.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.RunMigrations {
			applied, err := database.RunPostgresMigrations(cfg.DatabaseURL)
			if err != nil {
				return repositories.RepositoryProvider{}, nil, err
			}
			logMigrations(logger, applied)
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.StoreSQLite:
		if cfg.RunMigrations {
			applied, err := database.RunSQLiteMigrations(cfg.SQLitePath)
			if err != nil {
				return repositories.RepositoryProvider{}, nil, err
			}
			logMigrations(logger, applied)
		}
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		return sqlite.NewRepositoryProvider(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}, nil

	default:
		logger.Info("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}
}

func logMigrations(logger *slog.Logger, applied bool) {
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	switch cfg.EventsDriver {
	case config.EventsAMQP:
		return events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	case config.EventsKafka:
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return events.NoopPublisher{}, nil
	}
}
