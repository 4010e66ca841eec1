package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osdatum/server/internal/config"
	"github.com/osdatum/server/internal/database"
	"github.com/osdatum/server/internal/exchange"
	"github.com/osdatum/server/internal/identity"
	"github.com/osdatum/server/internal/logger"
	"github.com/osdatum/server/internal/session"
	"github.com/osdatum/server/osdatum/users"
)

const (
	// bound on OIDC provider discovery at startup
	providerDiscoveryTimeout = 15 * time.Second

	// per-IP budget for the exchange endpoint
	exchangeRateLimit = "20-M"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	discoveryCtx, cancel := context.WithTimeout(ctx, providerDiscoveryTimeout)
	defer cancel()

	verifier, err := identity.NewOIDCVerifier(discoveryCtx, cfg.IdentityIssuerURL, cfg.IdentityAudience)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize identity verifier: %w", err)
	}

	tokens, err := session.NewTokenService(cfg.JWTSecret, session.DefaultTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	userRepo := users.NewRepository(db)
	exchangeSvc := exchange.NewService(verifier, userRepo, tokens, logger.Default())

	rateLimit, err := newRateLimiter(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    userRepo,
		exchangeSvc: exchangeSvc,
		tokens:      tokens,
		rateLimit:   rateLimit,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// builds the per-IP rate limit middleware for the exchange endpoint.
// Uses Redis when configured so the budget is shared across instances,
// falling back to an in-process store.
func newRateLimiter(cfg *config.Config) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(exchangeRateLimit)
	if err != nil {
		return nil, err
	}

	var store limiter.Store

	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}

		client := goredis.NewClient(opts)

		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "osdatum:ratelimit",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}

		logger.Info("rate limiter using redis store")
	} else {
		store = memory.NewStore()
		logger.Info("rate limiter using in-process store")
	}

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}
