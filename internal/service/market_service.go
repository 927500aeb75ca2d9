package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

func listingCacheKey(vault, asset domain.Address) string {
	return fmt.Sprintf("listing:%s:%s", vault, asset)
}

// MarketServiceImpl implements ports.MarketService: marketplace listings over
// the same card custody model as pack sessions, plus the admin repair
// surface for records created under superseded derivation schemes.
type MarketServiceImpl struct {
	vaultRepo   ports.VaultRepository
	cardRepo    ports.CardRepository
	listingRepo ports.ListingRepository
	payments    ports.PaymentLedger
	custody     ports.CustodyService
	registry    ports.AddressRegistry
	transactor  ports.DBTransactor
	cache       ports.ViewCache
	log         zerolog.Logger
}

// NewMarketService creates a new MarketServiceImpl.
func NewMarketService(
	vaultRepo ports.VaultRepository,
	cardRepo ports.CardRepository,
	listingRepo ports.ListingRepository,
	payments ports.PaymentLedger,
	custody ports.CustodyService,
	registry ports.AddressRegistry,
	transactor ports.DBTransactor,
	cache ports.ViewCache,
	log zerolog.Logger,
) *MarketServiceImpl {
	return &MarketServiceImpl{
		vaultRepo:   vaultRepo,
		cardRepo:    cardRepo,
		listingRepo: listingRepo,
		payments:    payments,
		custody:     custody,
		registry:    registry,
		transactor:  transactor,
		cache:       cache,
		log:         log,
	}
}

func (s *MarketServiceImpl) lockVault(ctx context.Context, tx pgx.Tx, vault domain.Address) (*domain.VaultConfig, error) {
	cfg, err := s.vaultRepo.GetForUpdate(ctx, tx, vault)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if cfg == nil {
		return nil, apperror.ErrNotFound("vault")
	}
	return cfg, nil
}

func (s *MarketServiceImpl) invalidateViews(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate view cache")
	}
}

// verifyAuthority accepts a caller-supplied custody authority only when it
// matches the canonical derivation or the superseded marketplace one.
// Records created under an old vault keep working through rescue operations
// without trusting arbitrary authorities.
func (s *MarketServiceImpl) verifyAuthority(vault, supplied domain.Address) error {
	current, _, err := deriveVaultAuthority(s.registry, vault)
	if err != nil {
		return err
	}
	if supplied.Equal(current) {
		return nil
	}
	legacy, _, err := deriveLegacyVaultAuthority(s.registry, vault)
	if err != nil {
		return err
	}
	if supplied.Equal(legacy) {
		return nil
	}
	return apperror.ErrVaultMismatch()
}

// moveIntoCustody transfers a seller-held asset into vault custody, skipping
// the transfer when the asset is already vault-held so re-listing is
// idempotent.
func (s *MarketServiceImpl) moveIntoCustody(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, asset, seller domain.Address) error {
	holder, err := s.custody.Holder(ctx, tx, asset)
	if err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	switch {
	case holder.Equal(cfg.CustodyAuthority):
		return nil
	case holder.Equal(seller):
		if err := s.custody.Transfer(ctx, tx, asset, seller, cfg.CustodyAuthority); err != nil {
			return apperror.ErrCustodyFailure(err)
		}
		return nil
	default:
		return apperror.ErrUnauthorized()
	}
}

// ListCard creates a listing for a user-held asset, or re-validates and
// refreshes an existing one. The caller's declared template and rarity must
// match the stored record, defending against record spoofing on re-list.
func (s *MarketServiceImpl) ListCard(ctx context.Context, req ports.ListCardRequest) (*domain.Listing, error) {
	if req.Price == 0 {
		return nil, apperror.ErrInvalidPrice()
	}
	if !req.Rarity.IsValid() {
		return nil, apperror.Validation("unknown rarity")
	}

	listingAddr, err := deriveListing(s.registry, req.Vault, req.Asset)
	if err != nil {
		return nil, err
	}
	recordAddr, err := deriveCardRecord(s.registry, req.Vault, req.Asset)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, req.Vault)
	if err != nil {
		return nil, err
	}

	existing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if existing != nil && existing.Status == domain.ListingStatusActive && !existing.Seller.Equal(req.Seller) {
		return nil, apperror.ErrUnauthorized()
	}

	card, err := s.cardRepo.GetForUpdate(ctx, dbTx, recordAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}

	if card == nil {
		// First listing of a user-held asset: the record is created from the
		// caller's declaration once the custody move proves possession.
		holder, err := s.custody.Holder(ctx, dbTx, req.Asset)
		if err != nil {
			return nil, apperror.ErrCustodyFailure(err)
		}
		if !holder.Equal(req.Seller) {
			return nil, apperror.ErrUnauthorized()
		}
		if err := s.custody.Transfer(ctx, dbTx, req.Asset, req.Seller, cfg.CustodyAuthority); err != nil {
			return nil, apperror.ErrCustodyFailure(err)
		}
		card = &domain.CardRecord{
			Vault:      req.Vault,
			Asset:      req.Asset,
			TemplateID: req.TemplateID,
			Rarity:     req.Rarity,
			Status:     domain.CardStatusReserved,
			Owner:      req.Seller,
		}
		if err := s.cardRepo.Create(ctx, dbTx, recordAddr, card); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create card record: %w", err))
		}
	} else {
		if !card.Vault.Equal(req.Vault) {
			return nil, apperror.ErrVaultMismatch()
		}
		if card.TemplateID != req.TemplateID {
			return nil, apperror.ErrTemplateMismatch()
		}
		if card.Rarity != req.Rarity {
			return nil, apperror.ErrRarityMismatch()
		}
		relisting := existing != nil && existing.Status == domain.ListingStatusActive &&
			card.Status == domain.CardStatusReserved && card.Owner.Equal(req.Seller)
		owned := card.Status == domain.CardStatusUserOwned && card.Owner.Equal(req.Seller)
		if !relisting && !owned {
			return nil, apperror.ErrCardNotAvailable()
		}
		if err := s.moveIntoCustody(ctx, dbTx, cfg, req.Asset, req.Seller); err != nil {
			return nil, err
		}
		card.Status = domain.CardStatusReserved
		card.Owner = req.Seller
		if err := s.cardRepo.Update(ctx, dbTx, recordAddr, card); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update card record: %w", err))
		}
	}

	listing := &domain.Listing{
		Vault:       req.Vault,
		Seller:      req.Seller,
		Asset:       req.Asset,
		Price:       req.Price,
		PaymentMint: req.PaymentMint,
		Status:      domain.ListingStatusActive,
	}
	if existing == nil {
		err = s.listingRepo.Create(ctx, dbTx, listingAddr, listing)
	} else {
		err = s.listingRepo.Update(ctx, dbTx, listingAddr, listing)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(req.Vault, req.Asset), cardCacheKey(recordAddr))

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("asset", req.Asset.String()).
		Str("seller", req.Seller.String()).
		Uint64("price", req.Price).
		Msg("card listed")
	return listing, nil
}

// loadCardForRepair reads a card record, substituting a reconstructed default
// when the stored bytes fail strict validation. The rebuild is logged; it is
// an explicit repair path, not silent data loss.
func (s *MarketServiceImpl) loadCardForRepair(ctx context.Context, tx pgx.Tx, recordAddr domain.Address, fallback domain.CardRecord) (*domain.CardRecord, bool, error) {
	card, err := s.cardRepo.GetForUpdate(ctx, tx, recordAddr)
	if err != nil {
		if !errors.Is(err, domain.ErrBadRecord) {
			return nil, false, apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		s.log.Warn().Str("card", recordAddr.String()).Msg("substituting rebuilt card record for malformed bytes")
		rebuilt := fallback
		return &rebuilt, true, nil
	}
	if card == nil {
		return nil, false, apperror.ErrNotFound("card record")
	}
	return card, false, nil
}

func (s *MarketServiceImpl) persistCard(ctx context.Context, tx pgx.Tx, recordAddr domain.Address, card *domain.CardRecord, rebuilt bool) error {
	var err error
	if rebuilt {
		err = s.cardRepo.Rewrite(ctx, tx, recordAddr, card)
	} else {
		err = s.cardRepo.Update(ctx, tx, recordAddr, card)
	}
	if err != nil {
		return apperror.InternalError(fmt.Errorf("write card record: %w", err))
	}
	return nil
}

// CancelListing returns a listed asset to its seller and closes the listing.
func (s *MarketServiceImpl) CancelListing(ctx context.Context, vault, seller, asset domain.Address) error {
	listingAddr, err := deriveListing(s.registry, vault, asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return err
	}
	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return apperror.ErrNotFound("listing")
	}
	if listing.Status != domain.ListingStatusActive {
		return apperror.ErrInvalidListingState()
	}
	if !listing.Seller.Equal(seller) {
		return apperror.ErrUnauthorized()
	}

	card, rebuilt, err := s.loadCardForRepair(ctx, dbTx, recordAddr, domain.CardRecord{
		Vault: vault,
		Asset: asset,
		Owner: seller,
	})
	if err != nil {
		return err
	}

	if err := s.custody.Transfer(ctx, dbTx, asset, cfg.CustodyAuthority, seller); err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusUserOwned
	card.Owner = seller
	if err := s.persistCard(ctx, dbTx, recordAddr, card, rebuilt); err != nil {
		return err
	}

	listing.Status = domain.ListingStatusCancelled
	if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
		return apperror.InternalError(fmt.Errorf("update listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(vault, asset), cardCacheKey(recordAddr))

	s.log.Info().Str("vault", vault.String()).Str("asset", asset.String()).Msg("listing cancelled")
	return nil
}

// FillListing settles a purchase: the fee and the seller proceeds transfer as
// two independent legs within the one call, then the asset moves to the
// buyer.
func (s *MarketServiceImpl) FillListing(ctx context.Context, vault, buyer, asset domain.Address) (*ports.FillResult, error) {
	listingAddr, err := deriveListing(s.registry, vault, asset)
	if err != nil {
		return nil, err
	}
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return nil, err
	}
	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrNotFound("listing")
	}
	if listing.Status != domain.ListingStatusActive {
		return nil, apperror.ErrInvalidListingState()
	}

	fee, err := applyBps(listing.Price, cfg.MarketFeeBps)
	if err != nil {
		return nil, err
	}
	sellerAmount, err := subChecked(listing.Price, fee)
	if err != nil {
		return nil, err
	}

	if listing.PaymentMint != nil {
		mint := *listing.PaymentMint
		if fee > 0 {
			if err := s.payments.TransferFungible(ctx, dbTx, mint, buyer, cfg.CustodyAuthority, fee); err != nil {
				return nil, err
			}
		}
		if err := s.payments.TransferFungible(ctx, dbTx, mint, buyer, listing.Seller, sellerAmount); err != nil {
			return nil, err
		}
	} else {
		if fee > 0 {
			if err := s.payments.TransferNative(ctx, dbTx, buyer, cfg.CustodyAuthority, fee); err != nil {
				return nil, err
			}
		}
		if err := s.payments.TransferNative(ctx, dbTx, buyer, listing.Seller, sellerAmount); err != nil {
			return nil, err
		}
	}

	card, err := s.cardRepo.GetForUpdate(ctx, dbTx, recordAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrNotFound("card record")
	}
	if !card.Vault.Equal(vault) {
		return nil, apperror.ErrVaultMismatch()
	}
	if card.Status != domain.CardStatusReserved {
		return nil, apperror.ErrCardNotAvailable()
	}

	if err := s.custody.Transfer(ctx, dbTx, asset, cfg.CustodyAuthority, buyer); err != nil {
		return nil, apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusUserOwned
	card.Owner = buyer
	if err := s.cardRepo.Update(ctx, dbTx, recordAddr, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update card record: %w", err))
	}

	listing.Status = domain.ListingStatusFilled
	if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(vault, asset), cardCacheKey(recordAddr))

	s.log.Info().
		Str("vault", vault.String()).
		Str("asset", asset.String()).
		Str("buyer", buyer.String()).
		Uint64("price", listing.Price).
		Uint64("fee", fee).
		Msg("listing filled")
	return &ports.FillResult{Price: listing.Price, Fee: fee, SellerProceed: sellerAmount}, nil
}

// RedeemBurn permanently burns a user-owned card, e.g. when redeeming the
// physical collectible. Any listing for the asset closes as Burned.
func (s *MarketServiceImpl) RedeemBurn(ctx context.Context, vault, owner, asset domain.Address) error {
	listingAddr, err := deriveListing(s.registry, vault, asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := s.lockVault(ctx, dbTx, vault); err != nil {
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
	if card.Status != domain.CardStatusUserOwned || !card.Owner.Equal(owner) {
		return apperror.ErrUnauthorized()
	}

	if err := s.custody.Burn(ctx, dbTx, asset, owner); err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusBurned
	if err := s.cardRepo.Update(ctx, dbTx, recordAddr, card); err != nil {
		return apperror.InternalError(fmt.Errorf("update card record: %w", err))
	}

	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing != nil && listing.Status == domain.ListingStatusActive {
		listing.Status = domain.ListingStatusBurned
		if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
			return apperror.InternalError(fmt.Errorf("update listing: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(vault, asset), cardCacheKey(recordAddr))

	s.log.Info().Str("vault", vault.String()).Str("asset", asset.String()).Msg("card burned on redemption")
	return nil
}

// GetListing returns the listing view for a vault asset.
func (s *MarketServiceImpl) GetListing(ctx context.Context, vault, asset domain.Address) (*domain.Listing, error) {
	listingAddr, err := deriveListing(s.registry, vault, asset)
	if err != nil {
		return nil, err
	}
	var listing domain.Listing
	err = loadCachedView(ctx, s.cache, s.log, listingCacheKey(vault, asset), &listing, func() (any, error) {
		found, err := s.listingRepo.Get(ctx, listingAddr)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get listing: %w", err))
		}
		if found == nil {
			return nil, apperror.ErrNotFound("listing")
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// --- Admin repair surface ---

// AdminMigrateAsset re-keys a card record onto a new underlying asset
// identifier, deprecating the old record. Used when the collectible standard
// behind an asset changes.
func (s *MarketServiceImpl) AdminMigrateAsset(ctx context.Context, admin, vault, oldAsset, newAsset domain.Address) error {
	oldAddr, err := deriveCardRecord(s.registry, vault, oldAsset)
	if err != nil {
		return err
	}
	newAddr, err := deriveCardRecord(s.registry, vault, newAsset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, admin); err != nil {
		return err
	}

	oldCard, err := s.cardRepo.GetForUpdate(ctx, dbTx, oldAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}
	if oldCard == nil {
		return apperror.ErrNotFound("card record")
	}
	if !oldCard.Vault.Equal(vault) {
		return apperror.ErrVaultMismatch()
	}

	existing, err := s.cardRepo.GetForUpdate(ctx, dbTx, newAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check card record: %w", err))
	}
	if existing != nil {
		return apperror.ErrAlreadyExists("card record")
	}

	migrated := *oldCard
	migrated.Asset = newAsset
	if err := s.cardRepo.Create(ctx, dbTx, newAddr, &migrated); err != nil {
		return apperror.InternalError(fmt.Errorf("create card record: %w", err))
	}

	oldCard.Status = domain.CardStatusDeprecated
	if err := s.cardRepo.Update(ctx, dbTx, oldAddr, oldCard); err != nil {
		return apperror.InternalError(fmt.Errorf("update card record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, cardCacheKey(oldAddr), cardCacheKey(newAddr))

	s.log.Info().
		Str("vault", vault.String()).
		Str("old_asset", oldAsset.String()).
		Str("new_asset", newAsset.String()).
		Msg("asset migrated")
	return nil
}

// AdminPruneListing deletes a stale listing record whose card is gone or
// terminal. Active listings over live cards cannot be pruned.
func (s *MarketServiceImpl) AdminPruneListing(ctx context.Context, admin, vault, asset domain.Address) error {
	listingAddr, err := deriveListing(s.registry, vault, asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, admin); err != nil {
		return err
	}

	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return apperror.ErrNotFound("listing")
	}

	if listing.Status == domain.ListingStatusActive {
		card, err := s.cardRepo.GetForUpdate(ctx, dbTx, recordAddr)
		if err != nil && !errors.Is(err, domain.ErrBadRecord) {
			return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		if err == nil && card != nil && !card.Status.IsTerminal() {
			return apperror.ErrInvalidListingState()
		}
	}

	if err := s.listingRepo.Delete(ctx, dbTx, listingAddr); err != nil {
		return apperror.InternalError(fmt.Errorf("delete listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(vault, asset))

	s.log.Info().Str("vault", vault.String()).Str("asset", asset.String()).Msg("listing pruned")
	return nil
}

// AdminForceCancelListing cancels a listing whose custody authority may no
// longer match the canonical derivation, returning the asset to the seller
// under the caller-supplied (verified) authority.
func (s *MarketServiceImpl) AdminForceCancelListing(ctx context.Context, req ports.RescueRequest) error {
	listingAddr, err := deriveListing(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, req.Vault)
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, req.Admin); err != nil {
		return err
	}
	if err := s.verifyAuthority(req.Vault, req.Authority); err != nil {
		return err
	}

	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return apperror.ErrNotFound("listing")
	}
	if listing.Status != domain.ListingStatusActive {
		return apperror.ErrInvalidListingState()
	}

	card, rebuilt, err := s.loadCardForRepair(ctx, dbTx, recordAddr, domain.CardRecord{
		Vault: req.Vault,
		Asset: req.Asset,
		Owner: listing.Seller,
	})
	if err != nil {
		return err
	}

	if err := s.custody.Transfer(ctx, dbTx, req.Asset, req.Authority, listing.Seller); err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusUserOwned
	card.Owner = listing.Seller
	if err := s.persistCard(ctx, dbTx, recordAddr, card, rebuilt); err != nil {
		return err
	}

	listing.Status = domain.ListingStatusCancelled
	if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
		return apperror.InternalError(fmt.Errorf("update listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(req.Vault, req.Asset), cardCacheKey(recordAddr))

	s.log.Info().Str("vault", req.Vault.String()).Str("asset", req.Asset.String()).Msg("listing force-cancelled")
	return nil
}

// EmergencyReturnAsset sends a vault-held asset back to a recipient under a
// verified authority, deprecating any active listing for it.
func (s *MarketServiceImpl) EmergencyReturnAsset(ctx context.Context, req ports.RescueRequest) error {
	listingAddr, err := deriveListing(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, req.Vault)
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, req.Admin); err != nil {
		return err
	}
	if err := s.verifyAuthority(req.Vault, req.Authority); err != nil {
		return err
	}

	card, rebuilt, err := s.loadCardForRepair(ctx, dbTx, recordAddr, domain.CardRecord{
		Vault: req.Vault,
		Asset: req.Asset,
		Owner: req.Recipient,
	})
	if err != nil {
		return err
	}

	if err := s.custody.Transfer(ctx, dbTx, req.Asset, req.Authority, req.Recipient); err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusUserOwned
	card.Owner = req.Recipient
	if err := s.persistCard(ctx, dbTx, recordAddr, card, rebuilt); err != nil {
		return err
	}

	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing != nil && listing.Status == domain.ListingStatusActive {
		listing.Status = domain.ListingStatusDeprecated
		if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
			return apperror.InternalError(fmt.Errorf("update listing: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(req.Vault, req.Asset), cardCacheKey(recordAddr))

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("asset", req.Asset.String()).
		Str("recipient", req.Recipient.String()).
		Msg("asset emergency-returned")
	return nil
}

// AdminRescueLegacyListing repairs a listing created under a superseded vault
// derivation: the record rebuilds around the seller and the asset transfers
// back only if it was still vault-held. The prior custody state is captured
// before the rebuild so the transfer decision never reads overwritten
// fields.
func (s *MarketServiceImpl) AdminRescueLegacyListing(ctx context.Context, req ports.RescueRequest) error {
	listingAddr, err := deriveListing(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}
	recordAddr, err := deriveCardRecord(s.registry, req.Vault, req.Asset)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, req.Vault)
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, req.Admin); err != nil {
		return err
	}
	if err := s.verifyAuthority(req.Vault, req.Authority); err != nil {
		return err
	}

	listing, err := s.listingRepo.GetForUpdate(ctx, dbTx, listingAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return apperror.ErrNotFound("listing")
	}

	card, rebuilt, err := s.loadCardForRepair(ctx, dbTx, recordAddr, domain.CardRecord{
		Vault: req.Vault,
		Asset: req.Asset,
		Owner: listing.Seller,
	})
	if err != nil {
		return err
	}

	// Decide the transfer before mutating the record.
	var shouldTransfer bool
	if rebuilt {
		holder, herr := s.custody.Holder(ctx, dbTx, req.Asset)
		if herr != nil {
			return apperror.ErrCustodyFailure(herr)
		}
		shouldTransfer = holder.Equal(req.Authority)
	} else {
		shouldTransfer = card.Status == domain.CardStatusReserved || card.Status == domain.CardStatusAvailable
	}

	if shouldTransfer {
		if err := s.custody.Transfer(ctx, dbTx, req.Asset, req.Authority, listing.Seller); err != nil {
			return apperror.ErrCustodyFailure(err)
		}
	}

	card.Status = domain.CardStatusUserOwned
	card.Owner = listing.Seller
	if err := s.persistCard(ctx, dbTx, recordAddr, card, rebuilt); err != nil {
		return err
	}

	listing.Status = domain.ListingStatusCancelled
	if err := s.listingRepo.Update(ctx, dbTx, listingAddr, listing); err != nil {
		return apperror.InternalError(fmt.Errorf("update listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, listingCacheKey(req.Vault, req.Asset), cardCacheKey(recordAddr))

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("asset", req.Asset.String()).
		Bool("transferred", shouldTransfer).
		Msg("legacy listing rescued")
	return nil
}
