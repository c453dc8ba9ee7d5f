// Nightmarket API server. Wires configuration, storage, the event
// system, services, background jobs, and the HTTP surface together,
// then runs until interrupted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lanternworks/nightmarket/internal/auth"
	"github.com/lanternworks/nightmarket/internal/bootstrap"
	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/config"
	"github.com/lanternworks/nightmarket/internal/database"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/merchant"
	"github.com/lanternworks/nightmarket/internal/player"
	"github.com/lanternworks/nightmarket/internal/scheduler"
	"github.com/lanternworks/nightmarket/internal/server"
	"github.com/lanternworks/nightmarket/internal/sse"
	"github.com/lanternworks/nightmarket/internal/trade"
	"github.com/lanternworks/nightmarket/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logging setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Connect to Postgres
	dbPool, err := database.NewPool(cfg.Database.ConnString(), cfg.Database.MaxConns, cfg.Database.MaxConnIdleTime, cfg.Database.MaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	// Event system
	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	// SSE hub plus the bus-to-stream bridge and metrics collector
	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bus, hub); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Position pings buffer here and flush into the player repository in
	// batches; the buffer runs its own flush loop.
	locationBuffer, err := bootstrap.InitializeLocationBuffer(cfg, repos.Player.UpdatePlayerPositions)
	if err != nil {
		slog.Error("Location buffer initialization failed", "error", err)
		os.Exit(1)
	}

	// Services share one lock manager so per-player locking holds across
	// trades, purchases, and license upgrades.
	locks := concurrency.NewLockManager()
	playerService := player.NewService(repos.Player, locks, publisher, locationBuffer, cfg.Game.StartingMoney)
	tradeService := trade.NewService(repos.Trade, locks, publisher)
	licenseService := license.NewService(repos.Player, locks, publisher, cfg.Game.UpgradeTrustIncrement)
	marketService := market.NewService(repos.Market, publisher)
	merchantService := merchant.NewService(repos.Merchant, repos.Market, publisher)

	sessions := auth.NewManager(cfg.Auth.SessionCacheSize, cfg.Auth.SessionTTL)

	// Background jobs: the price walk and merchant restocking
	pool := worker.NewPool(bootstrap.DefaultWorkerCount, bootstrap.DefaultWorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.Game.PriceRecomputeEvery, worker.NewRecomputeJob(marketService))
	sched.Schedule(cfg.Game.RestockEvery, worker.NewRestockJob(merchantService))

	srv := server.NewServer(
		cfg.Server.Port,
		cfg.Auth.APIKey,
		cfg.Server.TrustedProxies,
		dbPool,
		playerService,
		tradeService,
		licenseService,
		marketService,
		merchantService,
		repos.Catalog,
		sessions,
		hub,
	)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Scheduler:          sched,
		LocationBuffer:     locationBuffer,
		WorkerPool:         pool,
		Hub:                hub,
		Server:             srv,
		ResilientPublisher: publisher,
	})
}
