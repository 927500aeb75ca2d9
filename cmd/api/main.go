package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/miner1qaz-ops/Mochi/config"
	httpHandler "github.com/miner1qaz-ops/Mochi/internal/adapter/http/handler"
	pgStorage "github.com/miner1qaz-ops/Mochi/internal/adapter/storage/postgres"
	redisStorage "github.com/miner1qaz-ops/Mochi/internal/adapter/storage/redis"
	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/internal/service"
	"github.com/miner1qaz-ops/Mochi/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mochi Vault")

	programID, err := domain.ParseAddress(cfg.Program.Identity)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid program identity")
	}

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

	// Initialize repositories
	vaultRepo := pgStorage.NewVaultRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	sessionRepo := pgStorage.NewSessionRepo(pool)
	listingRepo := pgStorage.NewListingRepo(pool)
	paymentLedger := pgStorage.NewPaymentLedgerRepo(pool)
	custody := pgStorage.NewCustodyRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	viewCache := redisStorage.NewViewCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)

	// Initialize core services
	registry := service.NewAddressRegistry(programID)
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.SystemClock{}

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, hashSvc, tokenSvc)
	vaultSvc := service.NewVaultService(vaultRepo, cardRepo, paymentLedger, custody, registry, transactor, log)
	packSvc := service.NewPackService(vaultRepo, cardRepo, sessionRepo, paymentLedger, custody, registry, clock, transactor, viewCache, log)
	marketSvc := service.NewMarketService(vaultRepo, cardRepo, listingRepo, paymentLedger, custody, registry, transactor, viewCache, log)

	// Initialize rate limit store
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		VaultSvc:       vaultSvc,
		PackSvc:        packSvc,
		MarketSvc:      marketSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		BackendKeys:    cfg.Auth.BackendKeys,
		TimestampSkew:  cfg.Auth.TimestampSkew,
		NonceTTL:       cfg.Auth.NonceTTL,
		RateLimitStore: rateLimitStore,
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
