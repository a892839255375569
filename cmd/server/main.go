package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/cache"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/config"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/csvload"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/database"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/logging"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/repository"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/scheduler"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/version"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("connected to database", zap.String("path", cfg.Database.Path))

	if err := database.Migrate(db, logger); err != nil {
		return err
	}

	// Load the rate table once; it is read-only from here on
	rateService := service.NewRateService(
		repository.NewRateRepository(db),
		csvload.NewLoader(logger),
		logger,
	)
	table, err := rateService.LoadRateTable(ctx, cfg.Data.CSVPath)
	if err != nil {
		return err
	}

	viewCache := cache.NewViewCache(cfg.Cache.SizeMB*1024*1024, cfg.Cache.TTL)

	dashboardService, err := service.NewDashboardService(table, cfg.Data.ReferenceCurrency, viewCache, logger)
	if err != nil {
		return err
	}
	systemService := service.NewSystemService(db, table, rateService, logger)

	sched := scheduler.New(logger)
	if err := sched.RegisterCacheStats(cfg.Schedule.CacheStatsCron, viewCache); err != nil {
		return err
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(systemService, dashboardService, cfg, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", version.Version),
			zap.String("reference", cfg.Data.ReferenceCurrency),
			zap.Int("rows", table.Len()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sched.Start()
		<-gctx.Done()
		sched.Stop()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
