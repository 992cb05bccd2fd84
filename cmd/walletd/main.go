package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boltcard-wallet/config"
	httpHandler "boltcard-wallet/internal/adapter/http/handler"
	nodeAdapter "boltcard-wallet/internal/adapter/node"
	pgStorage "boltcard-wallet/internal/adapter/storage/postgres"
	redisStorage "boltcard-wallet/internal/adapter/storage/redis"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/internal/service"
	"boltcard-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	processID, err := cfg.Process.ProcessID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("process", string(processID)).
		Int("port", cfg.Server.Port).
		Msg("Starting bolt card wallet daemon")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize core crypto services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	// Initialize storage adapters
	cardRepo := pgStorage.NewCardRepo(pool, encSvc)
	kvStore := pgStorage.NewKVStore(pool)
	ratesCache := redisStorage.NewRatesCache(rdb)
	eventFeed := redisStorage.NewEventFeed(rdb, logger.WithComponent(log, "events"))

	// Initialize node adapter
	invoiceChecker := nodeAdapter.NewInvoiceChecker(cfg.Node, logger.WithComponent(log, "node"))

	// Initialize pipeline services
	validator := service.NewCryptogramValidator(logger.WithComponent(log, "cryptogram"))
	limits := service.NewLimitEvaluator(cardRepo, ratesCache, logger.WithComponent(log, "limits"))
	invoiceGate := service.NewInvoiceGate(invoiceChecker, logger.WithComponent(log, "invoices"))
	readiness := service.NewReadinessWaiter(eventFeed, eventFeed, logger.WithComponent(log, "readiness"))
	settlement := service.NewSettlementCoordinator(kvStore, processID, logger.WithComponent(log, "settlement"))

	withdrawSvc := service.NewWithdrawService(
		cardRepo,
		validator,
		limits,
		invoiceGate,
		readiness,
		settlement,
		logger.WithComponent(log, "withdraw"),
	)

	responseSvc := service.NewResponseService(
		cfg.Response.Endpoint,
		cfg.Response.Secret,
		sigSvc,
		&http.Client{Timeout: 10 * time.Second},
		logger.WithComponent(log, "responses"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WithdrawSvc:    withdrawSvc,
		ResponsePoster: responseSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
