package ports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// --- Collaborator Ports (Driven) ---

// Clock is the wall-clock time oracle. Every operation reads it exactly once.
type Clock interface {
	Now() int64
}

// AddressRegistry derives deterministic sub-record addresses from seed bytes
// and the program identity. Derived authorities hold no signing key of their
// own; only the service may move value on their behalf.
type AddressRegistry interface {
	// Derive finds the first valid (address, bump) pair for the seeds,
	// searching bumps from 255 downward.
	Derive(seeds ...[]byte) (domain.Address, uint8, error)
	// DeriveWithBump recomputes the address for a known bump and reports
	// whether the bump yields a valid address.
	DeriveWithBump(bump uint8, seeds ...[]byte) (domain.Address, error)
	// MinimumReserve returns the reserve balance a record of the given packed
	// size must hold.
	MinimumReserve(size int) int64
}

// PaymentLedger moves native-currency and fungible-balance amounts between
// identified accounts. Methods accepting pgx.Tx run inside the caller's
// transaction so a failed operation rolls the payment back too.
type PaymentLedger interface {
	TransferNative(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount uint64) error
	TransferFungible(ctx context.Context, tx pgx.Tx, mint, from, to domain.Address, amount uint64) error
	MintFungible(ctx context.Context, tx pgx.Tx, mint, authority, to domain.Address, amount uint64) error
	GetMint(ctx context.Context, tx pgx.Tx, mint domain.Address) (*domain.FungibleMint, error)
	GetTokenAccount(ctx context.Context, tx pgx.Tx, mint, owner domain.Address) (*domain.TokenAccount, error)
}

// CustodyService transfers or burns non-fungible collectible assets between
// holders under a vault-controlled derived authority.
type CustodyService interface {
	Transfer(ctx context.Context, tx pgx.Tx, asset, from, to domain.Address) error
	Burn(ctx context.Context, tx pgx.Tx, asset, holder domain.Address) error
	Holder(ctx context.Context, tx pgx.Tx, asset domain.Address) (domain.Address, error)
}

// SignatureService handles HMAC-SHA256 signing and verification for backend
// request authentication.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles admin JWT token operations.
type TokenService interface {
	Generate(username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Username string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if the nonce exists, sets it if not.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, clientID string, nonce string, ttl time.Duration) (bool, error)
}

// ViewCache is the best-effort read cache for session/listing views.
// Failures are logged and ignored; the store remains the source of truth.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil when absent
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// --- Service Ports (Business Logic) ---

// VaultService covers vault configuration lifecycle and card deposits.
type VaultService interface {
	InitializeVault(ctx context.Context, req InitializeVaultRequest) (*VaultCreated, error)
	InitializeMarketplaceVault(ctx context.Context, req InitializeVaultRequest) (*VaultCreated, error)
	SetRewardConfig(ctx context.Context, req SetRewardConfigRequest) error
	MigrateVaultState(ctx context.Context, admin, vault domain.Address) error
	DepositCard(ctx context.Context, req DepositCardRequest) (domain.Address, error)
	DeprecateCard(ctx context.Context, admin, vault, asset domain.Address) error
	GetVault(ctx context.Context, vault domain.Address) (*domain.VaultConfig, error)
}

// InitializeVaultRequest holds validated input for vault creation.
type InitializeVaultRequest struct {
	Admin              domain.Address
	PackPriceNative    uint64
	PackPriceToken     uint64
	BuybackBps         uint16
	MarketFeeBps       uint16
	ClaimWindowSeconds int64
	Collection         *domain.Address
	PaymentTokenMint   *domain.Address
}

// VaultCreated is the initialization result.
type VaultCreated struct {
	Vault            domain.Address
	CustodyAuthority domain.Address
	AuthorityBump    uint8
}

// SetRewardConfigRequest holds validated input for reward configuration.
type SetRewardConfigRequest struct {
	Admin         domain.Address
	Vault         domain.Address
	RewardMint    domain.Address
	RewardPerPack uint64
}

// DepositCardRequest holds validated input for an admin card deposit.
type DepositCardRequest struct {
	Admin      domain.Address
	Vault      domain.Address
	Asset      domain.Address
	TemplateID uint32
	Rarity     domain.Rarity
}

// PackService is the reservation/settlement state machine over pack sessions.
type PackService interface {
	// Lightweight sessions (rare-or-above reservations only).
	OpenPack(ctx context.Context, req OpenPackRequest) (*domain.PackSessionLite, error)
	ClaimPackLite(ctx context.Context, vault, user domain.Address) (*domain.PackSessionLite, error)
	SellbackPackLite(ctx context.Context, vault, user domain.Address) (*SellbackResult, error)
	ExpireSessionLite(ctx context.Context, vault, user domain.Address) error
	AdminForceClose(ctx context.Context, admin, vault, user domain.Address, cards []domain.Address) ([]domain.RepairResult, error)
	AdminForceExpire(ctx context.Context, admin, vault, user domain.Address) error

	// Legacy full-pack sessions (fixed 11-slot shape).
	OpenPackLegacy(ctx context.Context, req OpenPackLegacyRequest) (*domain.PackSession, error)
	ClaimPack(ctx context.Context, vault, user domain.Address) error
	ClaimPackBatch(ctx context.Context, vault, user domain.Address, cards []domain.Address) error
	ClaimPackBatch3(ctx context.Context, vault, user domain.Address, cards []domain.Address) error
	FinalizeClaim(ctx context.Context, vault, user domain.Address) error
	SellbackPack(ctx context.Context, vault, user domain.Address) (*SellbackResult, error)
	ExpireSession(ctx context.Context, vault, user domain.Address) error
	AdminForceCloseSession(ctx context.Context, admin, vault, user domain.Address) error
	AdminResetSession(ctx context.Context, admin, vault, user domain.Address, cards []domain.Address) ([]domain.RepairResult, error)
	UserResetSession(ctx context.Context, vault, user domain.Address) error
	AdminResetCards(ctx context.Context, admin, vault domain.Address, cards []domain.Address) ([]domain.RepairResult, error)

	// Read surface.
	GetSession(ctx context.Context, vault, user domain.Address) (*domain.PackSession, error)
	GetSessionLite(ctx context.Context, vault, user domain.Address) (*domain.PackSessionLite, error)
	GetCard(ctx context.Context, vault, asset domain.Address) (*domain.CardRecord, error)
}

// RareCardRef declares one rare-or-above reservation for a lightweight open.
type RareCardRef struct {
	Asset      domain.Address
	TemplateID uint32
}

// OpenPackRequest holds validated input for a lightweight pack open.
type OpenPackRequest struct {
	Vault          domain.Address
	User           domain.Address
	Currency       domain.Currency
	CommitmentHash [32]byte
	RareCards      []RareCardRef // at most domain.MaxRareCards
}

// LegacySlotRef is one slot of a legacy full-pack open: the asset reference
// plus its face price used for sellback payouts.
type LegacySlotRef struct {
	Asset domain.Address
	Price uint64
}

// OpenPackLegacyRequest holds validated input for a legacy full-pack open.
// Slots must contain exactly domain.PackSlotCount entries.
type OpenPackLegacyRequest struct {
	Vault          domain.Address
	User           domain.Address
	Currency       domain.Currency
	CommitmentHash [32]byte
	Slots          []LegacySlotRef
}

// SellbackResult reports the refund leg of a sellback settlement.
type SellbackResult struct {
	Payout   uint64
	Currency domain.Currency
}

// MarketService covers marketplace listings and the custody repair tooling.
type MarketService interface {
	ListCard(ctx context.Context, req ListCardRequest) (*domain.Listing, error)
	CancelListing(ctx context.Context, vault, seller, asset domain.Address) error
	FillListing(ctx context.Context, vault, buyer, asset domain.Address) (*FillResult, error)
	RedeemBurn(ctx context.Context, vault, owner, asset domain.Address) error
	GetListing(ctx context.Context, vault, asset domain.Address) (*domain.Listing, error)

	// Admin repair surface.
	AdminMigrateAsset(ctx context.Context, admin, vault, oldAsset, newAsset domain.Address) error
	AdminPruneListing(ctx context.Context, admin, vault, asset domain.Address) error
	AdminForceCancelListing(ctx context.Context, req RescueRequest) error
	EmergencyReturnAsset(ctx context.Context, req RescueRequest) error
	AdminRescueLegacyListing(ctx context.Context, req RescueRequest) error
}

// ListCardRequest holds validated input for listing (or re-listing) a card.
type ListCardRequest struct {
	Vault       domain.Address
	Seller      domain.Address
	Asset       domain.Address
	Price       uint64
	TemplateID  uint32
	Rarity      domain.Rarity
	PaymentMint *domain.Address
}

// FillResult reports the payment split of a filled listing.
type FillResult struct {
	Price         uint64
	Fee           uint64
	SellerProceed uint64
}

// RescueRequest holds input for the custody repair operations. Authority is
// the caller-supplied custody authority; it must match one of the known
// derivation schemes for the vault.
type RescueRequest struct {
	Admin     domain.Address
	Vault     domain.Address
	Asset     domain.Address
	Authority domain.Address
	Recipient domain.Address
}

// AuthService defines admin authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
