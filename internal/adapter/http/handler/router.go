package handler

import (
	"time"

	"github.com/miner1qaz-ops/Mochi/internal/adapter/http/middleware"
	redisStore "github.com/miner1qaz-ops/Mochi/internal/adapter/storage/redis"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	VaultSvc       ports.VaultService
	PackSvc        ports.PackService
	MarketSvc      ports.MarketService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	BackendKeys    map[string]string // access key -> secret for HMAC clients
	TimestampSkew  time.Duration
	NonceTTL       time.Duration
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (game backend API) ---
	hmacAuth := middleware.HMACAuth(deps.BackendKeys, deps.SigSvc, deps.NonceStore, deps.TimestampSkew, deps.NonceTTL, deps.Logger)
	packHandler := NewPackHandler(deps.PackSvc)
	marketHandler := NewMarketHandler(deps.MarketSvc)
	vaultHandler := NewVaultHandler(deps.VaultSvc)

	packs := v1.Group("/packs", hmacAuth)
	{
		packs.POST("/open", rl("packs_open"), packHandler.OpenPack)
		packs.POST("/claim", rl("packs_settle"), packHandler.ClaimPack)
		packs.POST("/sellback", rl("packs_settle"), packHandler.SellbackPack)
		packs.POST("/expire", rl("packs_settle"), packHandler.ExpireSession)

		legacy := packs.Group("/legacy")
		{
			legacy.POST("/open", rl("packs_open"), packHandler.OpenPackLegacy)
			legacy.POST("/claim", rl("packs_settle"), packHandler.ClaimPackLegacy)
			legacy.POST("/claim-batch", rl("packs_settle"), packHandler.ClaimPackBatch)
			legacy.POST("/claim-batch3", rl("packs_settle"), packHandler.ClaimPackBatch3)
			legacy.POST("/finalize", rl("packs_settle"), packHandler.FinalizeClaim)
			legacy.POST("/sellback", rl("packs_settle"), packHandler.SellbackPackLegacy)
			legacy.POST("/expire", rl("packs_settle"), packHandler.ExpireSessionLegacy)
			legacy.POST("/reset", rl("packs_settle"), packHandler.UserResetSession)
		}
	}

	market := v1.Group("/market", hmacAuth)
	{
		market.POST("/listings", rl("market"), marketHandler.ListCard)
		market.POST("/listings/cancel", rl("market"), marketHandler.CancelListing)
		market.POST("/listings/fill", rl("market"), marketHandler.FillListing)
		market.POST("/redeem-burn", rl("market"), marketHandler.RedeemBurn)
	}

	vaults := v1.Group("/vaults", hmacAuth)
	{
		vaults.GET("/:vault", rl("views"), vaultHandler.GetVault)
		vaults.GET("/:vault/sessions/:user", rl("views"), packHandler.GetSession)
		vaults.GET("/:vault/sessions-lite/:user", rl("views"), packHandler.GetSessionLite)
		vaults.GET("/:vault/cards/:asset", rl("views"), packHandler.GetCard)
		vaults.GET("/:vault/listings/:asset", rl("views"), marketHandler.GetListing)
	}

	// --- JWT-authenticated routes (operator console) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	admin := v1.Group("/admin", jwtAuth)
	{
		adminVaults := admin.Group("/vaults")
		{
			adminVaults.POST("", rl("admin"), vaultHandler.InitializeVault)
			adminVaults.POST("/marketplace", rl("admin"), vaultHandler.InitializeMarketplaceVault)
			adminVaults.POST("/reward-config", rl("admin"), vaultHandler.SetRewardConfig)
			adminVaults.POST("/migrate", rl("admin"), vaultHandler.MigrateVaultState)
			adminVaults.POST("/cards", rl("admin"), vaultHandler.DepositCard)
			adminVaults.POST("/cards/deprecate", rl("admin"), vaultHandler.DeprecateCard)
		}

		adminPacks := admin.Group("/packs")
		{
			adminPacks.POST("/force-close", rl("admin"), packHandler.AdminForceClose)
			adminPacks.POST("/force-expire", rl("admin"), packHandler.AdminForceExpire)
			adminPacks.POST("/reset-cards", rl("admin"), packHandler.AdminResetCards)
			adminPacks.POST("/legacy/force-close", rl("admin"), packHandler.AdminForceCloseLegacy)
			adminPacks.POST("/legacy/reset-session", rl("admin"), packHandler.AdminResetSession)
		}

		adminMarket := admin.Group("/market")
		{
			adminMarket.POST("/migrate-asset", rl("admin"), marketHandler.AdminMigrateAsset)
			adminMarket.POST("/prune-listing", rl("admin"), marketHandler.AdminPruneListing)
			adminMarket.POST("/force-cancel", rl("admin"), marketHandler.AdminForceCancelListing)
			adminMarket.POST("/emergency-return", rl("admin"), marketHandler.EmergencyReturnAsset)
			adminMarket.POST("/rescue-legacy", rl("admin"), marketHandler.AdminRescueLegacyListing)
		}
	}

	return r
}
