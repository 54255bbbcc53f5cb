package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eva-gallery/eva-nft/internal/adapter"
	"github.com/eva-gallery/eva-nft/internal/api/server"
	"github.com/eva-gallery/eva-nft/internal/api/shared/executor"
	"github.com/eva-gallery/eva-nft/internal/config"
	"github.com/eva-gallery/eva-nft/internal/logger"
	"github.com/eva-gallery/eva-nft/internal/minting"
	"github.com/eva-gallery/eva-nft/internal/reconcile"
	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/trialmint"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "eva-nft-api",
		Environment:     cfg.Environment,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting EVA NFT API", zap.String("environment", cfg.Environment))

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), store.GormConfig(cfg.Debug))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db, store.Config{SubscanURL: cfg.Links.SubscanURL})

	httpClient := adapter.NewHTTPClient(cfg.Minting.HTTPTimeout, adapter.DefaultRetryConfig())
	mintingClient := minting.NewClient(httpClient, minting.Config{
		URL:            cfg.Minting.URL,
		Timeout:        cfg.Minting.Timeout,
		MintsPerMinute: cfg.Minting.MintsPerMinute,
	})

	engine := reconcile.NewEngine(dataStore, reconcile.Config{KodadotURL: cfg.Links.KodadotURL})
	trialMint := trialmint.NewWorkflow(dataStore, engine, mintingClient, trialmint.Config{
		IPFSGateway:       cfg.URI.IPFSGateway,
		LookupConcurrency: cfg.Minting.LookupConcurrency,
	})
	defer trialMint.Close()

	srv := server.New(server.Config{
		Debug:            cfg.Debug,
		Host:             cfg.Server.Host,
		Port:             cfg.Server.Port,
		ReadTimeout:      time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:     time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:      time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
	}, executor.NewExecutor(dataStore, engine, trialMint))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// The mint timeout bounds the longest in-flight request
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Minting.Timeout+5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("API server stopped")
}
