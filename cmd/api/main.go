package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/config"
	"github.com/paylink/backend/internal/db"
	apphttp "github.com/paylink/backend/internal/http"
	"github.com/paylink/backend/internal/http/handlers"
	"github.com/paylink/backend/internal/pricefeed"
	"github.com/paylink/backend/internal/repositories"
	"github.com/paylink/backend/internal/services"
	"github.com/paylink/backend/internal/solana"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Solana RPC (connectivity probe only; failures are not fatal)
	rpc := solana.NewClient(cfg.SolanaRPCURL, log)
	probeCtx, probeCancel := context.WithTimeout(ctx, 10*time.Second)
	if _, err := rpc.GetLatestBlockhash(probeCtx); err != nil {
		log.Warn("solana rpc endpoint unreachable", zap.String("endpoint", cfg.SolanaRPCURL), zap.Error(err))
	}
	probeCancel()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	linkRepo := repositories.NewLinkRepo(pool)
	presaleRepo := repositories.NewPresaleRepo(pool)

	// Services
	userService := services.NewUserService(userRepo, log)
	linkService := services.NewLinkService(linkRepo, rpc, cfg.PaymentVerifySignature, log)
	referralService := services.NewReferralService(userRepo, linkRepo, log)
	presaleService := services.NewPresaleService(presaleRepo, log)
	prices := pricefeed.New(cfg.PriceFeedURL, rdb, cfg.PriceCacheTTL, log)

	sched, err := prices.StartRefresher(ctx)
	if err != nil {
		log.Fatal("failed to start price refresher", zap.Error(err))
	}
	defer func() { _ = sched.Shutdown() }()

	// Handlers
	userHandler := handlers.NewUserHandler(userService, log)
	linkHandler := handlers.NewLinkHandler(linkService, log)
	referralHandler := handlers.NewReferralHandler(referralService, log)
	presaleHandler := handlers.NewPresaleHandler(presaleService, log)
	statsHandler := handlers.NewStatsHandler(userRepo, linkRepo, prices, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, rdb, userHandler, linkHandler, referralHandler, presaleHandler, statsHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
