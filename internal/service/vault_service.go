package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// VaultServiceImpl implements ports.VaultService.
type VaultServiceImpl struct {
	vaultRepo  ports.VaultRepository
	cardRepo   ports.CardRepository
	payments   ports.PaymentLedger
	custody    ports.CustodyService
	registry   ports.AddressRegistry
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl.
func NewVaultService(
	vaultRepo ports.VaultRepository,
	cardRepo ports.CardRepository,
	payments ports.PaymentLedger,
	custody ports.CustodyService,
	registry ports.AddressRegistry,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		vaultRepo:  vaultRepo,
		cardRepo:   cardRepo,
		payments:   payments,
		custody:    custody,
		registry:   registry,
		transactor: transactor,
		log:        log,
	}
}

func requireAdmin(cfg *domain.VaultConfig, caller domain.Address) error {
	if !cfg.Admin.Equal(caller) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// InitializeVault creates the primary vault configuration record.
func (s *VaultServiceImpl) InitializeVault(ctx context.Context, req ports.InitializeVaultRequest) (*ports.VaultCreated, error) {
	return s.initialize(ctx, req, SeedVaultState, SeedVaultAuthority)
}

// InitializeMarketplaceVault creates the marketplace vault configuration
// record under its own derivation seeds.
func (s *VaultServiceImpl) InitializeMarketplaceVault(ctx context.Context, req ports.InitializeVaultRequest) (*ports.VaultCreated, error) {
	return s.initialize(ctx, req, SeedMarketVaultState, SeedMarketVaultAuthority)
}

func (s *VaultServiceImpl) initialize(ctx context.Context, req ports.InitializeVaultRequest, stateSeed, authoritySeed string) (*ports.VaultCreated, error) {
	if req.ClaimWindowSeconds <= 0 {
		return nil, apperror.Validation("claim window must be positive")
	}
	if req.BuybackBps > domain.BpsDenominator {
		s.log.Warn().Uint16("buyback_bps", req.BuybackBps).Msg("buyback rate above 100%")
	}
	if req.MarketFeeBps > domain.BpsDenominator {
		s.log.Warn().Uint16("market_fee_bps", req.MarketFeeBps).Msg("marketplace fee above 100%")
	}

	vaultAddr, _, err := s.registry.Derive([]byte(stateSeed))
	if err != nil {
		return nil, err
	}
	authority, bump, err := s.registry.Derive([]byte(authoritySeed), vaultAddr.Bytes())
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := s.vaultRepo.GetForUpdate(ctx, dbTx, vaultAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check vault: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists("vault")
	}

	cfg := &domain.VaultConfig{
		Admin:              req.Admin,
		CustodyAuthority:   authority,
		PackPriceNative:    req.PackPriceNative,
		PackPriceToken:     req.PackPriceToken,
		BuybackBps:         req.BuybackBps,
		ClaimWindowSeconds: req.ClaimWindowSeconds,
		MarketFeeBps:       req.MarketFeeBps,
		Collection:         req.Collection,
		PaymentTokenMint:   req.PaymentTokenMint,
		AuthorityBump:      bump,
	}
	reserve := s.registry.MinimumReserve(domain.VaultConfigPackedSize)
	if err := s.vaultRepo.Create(ctx, dbTx, vaultAddr, cfg, reserve); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create vault: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("vault", vaultAddr.String()).
		Str("authority", authority.String()).
		Str("admin", req.Admin.String()).
		Msg("vault initialized")

	return &ports.VaultCreated{Vault: vaultAddr, CustodyAuthority: authority, AuthorityBump: bump}, nil
}

// SetRewardConfig updates the reward mint settings. The mint's authority must
// already be the vault's custody authority, otherwise open_pack could never
// mint on it.
func (s *VaultServiceImpl) SetRewardConfig(ctx context.Context, req ports.SetRewardConfigRequest) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.vaultRepo.GetForUpdate(ctx, dbTx, req.Vault)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if cfg == nil {
		return apperror.ErrNotFound("vault")
	}
	if err := requireAdmin(cfg, req.Admin); err != nil {
		return err
	}

	mint, err := s.payments.GetMint(ctx, dbTx, req.RewardMint)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get reward mint: %w", err))
	}
	if mint == nil {
		return apperror.ErrNotFound("reward mint")
	}
	if !mint.Authority.Equal(cfg.CustodyAuthority) {
		return apperror.ErrMintMismatch()
	}

	rewardMint := req.RewardMint
	cfg.RewardMint = &rewardMint
	cfg.RewardPerPack = req.RewardPerPack
	if err := s.vaultRepo.Update(ctx, dbTx, req.Vault, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("update vault: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("reward_mint", req.RewardMint.String()).
		Uint64("reward_per_pack", req.RewardPerPack).
		Msg("reward config updated")
	return nil
}

// MigrateVaultState rewrites a vault record stored under the pre-reward
// layout into the current one: the payload is zero-filled, every field is
// re-written at its fixed offset, and the reserve is topped up for the larger
// size. Running it on an already-migrated record is a no-op rewrite.
func (s *VaultServiceImpl) MigrateVaultState(ctx context.Context, admin, vault domain.Address) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	raw, err := s.vaultRepo.GetRawForUpdate(ctx, dbTx, vault)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if raw == nil {
		return apperror.ErrNotFound("vault")
	}

	cfg, err := domain.UnpackVaultConfig(raw.Data)
	if err != nil {
		cfg, err = domain.UnpackVaultConfigLegacy(raw.Data)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("decode vault record: %w", err))
		}
	}
	if err := requireAdmin(cfg, admin); err != nil {
		return err
	}

	reserve := raw.Reserve
	if min := s.registry.MinimumReserve(domain.VaultConfigPackedSize); reserve < min {
		reserve = min
	}
	if err := s.vaultRepo.Rewrite(ctx, dbTx, vault, cfg.Pack(), reserve); err != nil {
		return apperror.InternalError(fmt.Errorf("rewrite vault: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("vault", vault.String()).
		Int("old_size", len(raw.Data)).
		Int("new_size", domain.VaultConfigPackedSize).
		Int64("reserve", reserve).
		Msg("vault record migrated")
	return nil
}

// DepositCard moves an admin-held asset into vault custody and creates its
// card record.
func (s *VaultServiceImpl) DepositCard(ctx context.Context, req ports.DepositCardRequest) (domain.Address, error) {
	if !req.Rarity.IsValid() {
		return domain.ZeroAddress, apperror.Validation("unknown rarity")
	}

	recordAddr, err := deriveCardRecord(s.registry, req.Vault, req.Asset)
	if err != nil {
		return domain.ZeroAddress, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.vaultRepo.Get(ctx, req.Vault)
	if err != nil {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if cfg == nil {
		return domain.ZeroAddress, apperror.ErrNotFound("vault")
	}
	if err := requireAdmin(cfg, req.Admin); err != nil {
		return domain.ZeroAddress, err
	}

	existing, err := s.cardRepo.GetForUpdate(ctx, dbTx, recordAddr)
	if err != nil && !errors.Is(err, domain.ErrBadRecord) {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("check card record: %w", err))
	}
	if existing != nil || errors.Is(err, domain.ErrBadRecord) {
		return domain.ZeroAddress, apperror.ErrAlreadyExists("card record")
	}

	if err := s.custody.Transfer(ctx, dbTx, req.Asset, req.Admin, cfg.CustodyAuthority); err != nil {
		return domain.ZeroAddress, apperror.ErrCustodyFailure(err)
	}

	card := &domain.CardRecord{
		Vault:      req.Vault,
		Asset:      req.Asset,
		TemplateID: req.TemplateID,
		Rarity:     req.Rarity,
		Status:     domain.CardStatusAvailable,
		Owner:      cfg.CustodyAuthority,
	}
	if err := s.cardRepo.Create(ctx, dbTx, recordAddr, card); err != nil {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("create card record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("asset", req.Asset.String()).
		Uint32("template", req.TemplateID).
		Str("rarity", req.Rarity.String()).
		Msg("card deposited")
	return recordAddr, nil
}

// DeprecateCard retires a card record. Reserved cards cannot be deprecated;
// the session holding them must settle first.
func (s *VaultServiceImpl) DeprecateCard(ctx context.Context, admin, vault, asset domain.Address) error {
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.vaultRepo.Get(ctx, vault)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if cfg == nil {
		return apperror.ErrNotFound("vault")
	}
	if err := requireAdmin(cfg, admin); err != nil {
		return err
	}

	card, err := s.cardRepo.GetForUpdate(ctx, dbTx, recordAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}
	if card == nil {
		return apperror.ErrNotFound("card record")
	}
	if !card.Vault.Equal(vault) {
		return apperror.ErrVaultMismatch()
	}
	if card.Status == domain.CardStatusReserved {
		return apperror.ErrCardNotAvailable()
	}

	card.Status = domain.CardStatusDeprecated
	if err := s.cardRepo.Update(ctx, dbTx, recordAddr, card); err != nil {
		return apperror.InternalError(fmt.Errorf("update card record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("vault", vault.String()).Str("asset", asset.String()).Msg("card deprecated")
	return nil
}

// GetVault returns the vault configuration.
func (s *VaultServiceImpl) GetVault(ctx context.Context, vault domain.Address) (*domain.VaultConfig, error) {
	cfg, err := s.vaultRepo.Get(ctx, vault)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if cfg == nil {
		return nil, apperror.ErrNotFound("vault")
	}
	return cfg, nil
}
