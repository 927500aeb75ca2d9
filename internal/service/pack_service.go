package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

const (
	viewCacheTTL = 30 * time.Second

	claimBatchMax = 2
	claimBatch3   = 3
)

func sessionCacheKey(vault, user domain.Address) string {
	return fmt.Sprintf("session:%s:%s", vault, user)
}

func sessionLiteCacheKey(vault, user domain.Address) string {
	return fmt.Sprintf("session_v2:%s:%s", vault, user)
}

// Card views key on the record address so every settlement path can
// invalidate them without re-deriving assets.
func cardCacheKey(record domain.Address) string {
	return fmt.Sprintf("card:%s", record)
}

// settlementViewKeys is the invalidation set for a session mutation: the
// session view plus every card record view the settlement touched.
func settlementViewKeys(sessionKey string, cards []domain.Address) []string {
	keys := make([]string, 0, len(cards)+1)
	keys = append(keys, sessionKey)
	for _, c := range cards {
		keys = append(keys, cardCacheKey(c))
	}
	return keys
}

// PackServiceImpl implements ports.PackService: the reservation/settlement
// state machine. Every operation runs as one database transaction; a failed
// step rolls back the whole call.
type PackServiceImpl struct {
	vaultRepo   ports.VaultRepository
	cardRepo    ports.CardRepository
	sessionRepo ports.SessionRepository
	payments    ports.PaymentLedger
	custody     ports.CustodyService
	registry    ports.AddressRegistry
	clock       ports.Clock
	transactor  ports.DBTransactor
	cache       ports.ViewCache
	log         zerolog.Logger
}

// NewPackService creates a new PackServiceImpl.
func NewPackService(
	vaultRepo ports.VaultRepository,
	cardRepo ports.CardRepository,
	sessionRepo ports.SessionRepository,
	payments ports.PaymentLedger,
	custody ports.CustodyService,
	registry ports.AddressRegistry,
	clock ports.Clock,
	transactor ports.DBTransactor,
	cache ports.ViewCache,
	log zerolog.Logger,
) *PackServiceImpl {
	return &PackServiceImpl{
		vaultRepo:   vaultRepo,
		cardRepo:    cardRepo,
		sessionRepo: sessionRepo,
		payments:    payments,
		custody:     custody,
		registry:    registry,
		clock:       clock,
		transactor:  transactor,
		cache:       cache,
		log:         log,
	}
}

func (s *PackServiceImpl) lockVault(ctx context.Context, tx pgx.Tx, vault domain.Address) (*domain.VaultConfig, error) {
	cfg, err := s.vaultRepo.GetForUpdate(ctx, tx, vault)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if cfg == nil {
		return nil, apperror.ErrNotFound("vault")
	}
	return cfg, nil
}

// chargePackPrice moves the configured pack price from the user to the vault
// custody authority in the requested currency.
func (s *PackServiceImpl) chargePackPrice(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, user domain.Address, currency domain.Currency) (uint64, error) {
	amount := cfg.PackPrice(currency)
	if amount == 0 {
		return 0, apperror.ErrInvalidPrice()
	}
	switch currency {
	case domain.CurrencyNative:
		if err := s.payments.TransferNative(ctx, tx, user, cfg.CustodyAuthority, amount); err != nil {
			return 0, err
		}
	case domain.CurrencyToken:
		if cfg.PaymentTokenMint == nil {
			return 0, apperror.ErrMissingTokenAccount()
		}
		if err := s.payments.TransferFungible(ctx, tx, *cfg.PaymentTokenMint, user, cfg.CustodyAuthority, amount); err != nil {
			return 0, err
		}
	default:
		return 0, apperror.Validation("unknown currency")
	}
	return amount, nil
}

// payOut moves a payout from the vault custody authority to the user in the
// session's original currency. Zero payouts are valid and skip the transfer.
func (s *PackServiceImpl) payOut(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, user domain.Address, currency domain.Currency, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if currency == domain.CurrencyToken {
		if cfg.PaymentTokenMint == nil {
			return apperror.ErrMissingTokenAccount()
		}
		return s.payments.TransferFungible(ctx, tx, *cfg.PaymentTokenMint, cfg.CustodyAuthority, user, amount)
	}
	return s.payments.TransferNative(ctx, tx, cfg.CustodyAuthority, user, amount)
}

// mintReward mints the configured per-pack reward to the user, if the vault
// has reward settings. A nonzero reward amount without a reward mint is a
// configuration error, and the mint authority must be the vault custody
// authority.
func (s *PackServiceImpl) mintReward(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, user domain.Address) error {
	if cfg.RewardPerPack == 0 {
		return nil
	}
	if cfg.RewardMint == nil {
		return apperror.ErrMintMismatch()
	}
	mint, err := s.payments.GetMint(ctx, tx, *cfg.RewardMint)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get reward mint: %w", err))
	}
	if mint == nil {
		return apperror.ErrNotFound("reward mint")
	}
	if !mint.Authority.Equal(cfg.CustodyAuthority) {
		return apperror.ErrMintMismatch()
	}
	return s.payments.MintFungible(ctx, tx, *cfg.RewardMint, cfg.CustodyAuthority, user, cfg.RewardPerPack)
}

func (s *PackServiceImpl) invalidateViews(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate view cache")
	}
}

// reserveCard validates and reserves one card record for a session open.
func (s *PackServiceImpl) reserveCard(ctx context.Context, tx pgx.Tx, vault, user, recordAddr domain.Address) (*domain.CardRecord, error) {
	card, err := s.cardRepo.GetForUpdate(ctx, tx, recordAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrNotFound("card record")
	}
	if !card.Vault.Equal(vault) {
		return nil, apperror.ErrVaultMismatch()
	}
	if card.Status != domain.CardStatusAvailable {
		return nil, apperror.ErrCardNotAvailable()
	}
	card.Status = domain.CardStatusReserved
	card.Owner = user
	if err := s.cardRepo.Update(ctx, tx, recordAddr, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve card: %w", err))
	}
	return card, nil
}

// releaseCard reverts a reserved card to Available under vault custody.
func (s *PackServiceImpl) releaseCard(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, recordAddr domain.Address, card *domain.CardRecord) error {
	card.Status = domain.CardStatusAvailable
	card.Owner = cfg.CustodyAuthority
	if err := s.cardRepo.Update(ctx, tx, recordAddr, card); err != nil {
		return apperror.InternalError(fmt.Errorf("release card: %w", err))
	}
	return nil
}

// --- Lightweight sessions ---

// OpenPack opens a lightweight pack session: the pack price is charged, the
// declared rare-or-above cards are reserved, and the session enters
// PendingDecision. A pending, unexpired session blocks the open; an expired
// pending session is overwritten in place.
func (s *PackServiceImpl) OpenPack(ctx context.Context, req ports.OpenPackRequest) (*domain.PackSessionLite, error) {
	if len(req.RareCards) > domain.MaxRareCards {
		return nil, apperror.ErrTooManyRareCards()
	}
	if !req.Currency.IsValid() {
		return nil, apperror.Validation("unknown currency")
	}

	sessAddr, bump, err := deriveSessionLite(s.registry, req.Vault, req.User)
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

	sess, err := s.sessionRepo.GetLiteForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}

	now := s.clock.Now()
	if sess != nil && sess.State == domain.PackStatePendingDecision && sess.InWindow(now) {
		return nil, apperror.ErrSessionExists()
	}

	paid, err := s.chargePackPrice(ctx, dbTx, cfg, req.User, req.Currency)
	if err != nil {
		return nil, err
	}

	rareKeys := make([]domain.Address, 0, len(req.RareCards))
	rareTemplates := make([]uint32, 0, len(req.RareCards))
	for _, ref := range req.RareCards {
		recordAddr, err := deriveCardRecord(s.registry, req.Vault, ref.Asset)
		if err != nil {
			return nil, err
		}
		card, err := s.reserveCard(ctx, dbTx, req.Vault, req.User, recordAddr)
		if err != nil {
			return nil, err
		}
		if !card.Rarity.IsRareOrAbove() {
			return nil, apperror.ErrCardTooCommon()
		}
		if card.TemplateID != ref.TemplateID {
			return nil, apperror.ErrTemplateMismatch()
		}
		rareKeys = append(rareKeys, recordAddr)
		rareTemplates = append(rareTemplates, ref.TemplateID)
	}

	next := &domain.PackSessionLite{
		User:           req.User,
		Currency:       req.Currency,
		PaidAmount:     paid,
		CreatedAt:      now,
		ExpiresAt:      now + cfg.ClaimWindowSeconds,
		RareCardKeys:   rareKeys,
		RareTemplates:  rareTemplates,
		State:          domain.PackStatePendingDecision,
		CommitmentHash: req.CommitmentHash,
		TotalSlots:     domain.PackSlotCount,
		Bump:           bump,
	}
	if sess == nil {
		err = s.sessionRepo.CreateLite(ctx, dbTx, sessAddr, next)
	} else {
		err = s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, next)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write session: %w", err))
	}

	if err := s.mintReward(ctx, dbTx, cfg, req.User); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(req.Vault, req.User), rareKeys)...)

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("user", req.User.String()).
		Uint64("paid", paid).
		Int("rare_cards", len(rareKeys)).
		Int64("expires_at", next.ExpiresAt).
		Msg("pack opened")
	return next, nil
}

// loadPendingLite locks the lightweight session and validates the common
// claim/sellback preconditions: owned by user, pending, inside the window.
func (s *PackServiceImpl) loadPendingLite(ctx context.Context, tx pgx.Tx, vault, user domain.Address) (domain.Address, *domain.PackSessionLite, error) {
	sessAddr, _, err := deriveSessionLite(s.registry, vault, user)
	if err != nil {
		return domain.ZeroAddress, nil, err
	}
	sess, err := s.sessionRepo.GetLiteForUpdate(ctx, tx, sessAddr)
	if err != nil {
		return domain.ZeroAddress, nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return domain.ZeroAddress, nil, apperror.ErrNotFound("pack session")
	}
	if !sess.User.Equal(user) {
		return domain.ZeroAddress, nil, apperror.ErrUnauthorized()
	}
	if sess.State != domain.PackStatePendingDecision {
		return domain.ZeroAddress, nil, apperror.ErrInvalidSessionState()
	}
	return sessAddr, sess, nil
}

// ClaimPackLite keeps the pack: every rare reservation transfers from vault
// custody to the user and the session settles Accepted.
func (s *PackServiceImpl) ClaimPackLite(ctx context.Context, vault, user domain.Address) (*domain.PackSessionLite, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return nil, err
	}
	sessAddr, sess, err := s.loadPendingLite(ctx, dbTx, vault, user)
	if err != nil {
		return nil, err
	}
	if !sess.InWindow(s.clock.Now()) {
		return nil, apperror.ErrSessionExpired()
	}

	for _, key := range sess.RareCardKeys {
		card, err := s.cardRepo.GetForUpdate(ctx, dbTx, key)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		if card == nil {
			return nil, apperror.ErrNotFound("card record")
		}
		if card.Status != domain.CardStatusReserved || !card.Owner.Equal(user) {
			return nil, apperror.ErrCardNotReserved()
		}
		if err := s.custody.Transfer(ctx, dbTx, card.Asset, cfg.CustodyAuthority, user); err != nil {
			return nil, apperror.ErrCustodyFailure(err)
		}
		card.Status = domain.CardStatusUserOwned
		if err := s.cardRepo.Update(ctx, dbTx, key, card); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update card record: %w", err))
		}
	}

	sess.State = domain.PackStateAccepted
	if err := s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, sess); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(vault, user), sess.RareCardKeys)...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Int("rare_cards", len(sess.RareCardKeys)).
		Msg("pack claimed")
	return sess, nil
}

// SellbackPackLite rejects the pack: reservations revert to vault custody and
// floor(paid * buyback_bps / 10000) refunds in the original currency.
func (s *PackServiceImpl) SellbackPackLite(ctx context.Context, vault, user domain.Address) (*ports.SellbackResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return nil, err
	}
	sessAddr, sess, err := s.loadPendingLite(ctx, dbTx, vault, user)
	if err != nil {
		return nil, err
	}
	if !sess.InWindow(s.clock.Now()) {
		return nil, apperror.ErrSessionExpired()
	}

	payout, err := applyBps(sess.PaidAmount, cfg.BuybackBps)
	if err != nil {
		return nil, err
	}

	if err := s.releaseSessionCards(ctx, dbTx, cfg, user, sess.RareCardKeys); err != nil {
		return nil, err
	}
	if err := s.payOut(ctx, dbTx, cfg, user, sess.Currency, payout); err != nil {
		return nil, err
	}

	sess.State = domain.PackStateRejected
	if err := s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, sess); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(vault, user), sess.RareCardKeys)...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Uint64("payout", payout).
		Msg("pack sold back")
	return &ports.SellbackResult{Payout: payout, Currency: sess.Currency}, nil
}

// releaseSessionCards reverts every reserved session card that still belongs
// to the user. Cards in other states are an error: a settled slot cannot be
// silently re-pooled.
func (s *PackServiceImpl) releaseSessionCards(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, user domain.Address, keys []domain.Address) error {
	for _, key := range keys {
		card, err := s.cardRepo.GetForUpdate(ctx, tx, key)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		if card == nil {
			return apperror.ErrNotFound("card record")
		}
		if card.Status != domain.CardStatusReserved || !card.Owner.Equal(user) {
			return apperror.ErrCardNotReserved()
		}
		if err := s.releaseCard(ctx, tx, cfg, key, card); err != nil {
			return err
		}
	}
	return nil
}

// ExpireSessionLite lapses an abandoned session. Permissionless: anyone may
// call it once the window has strictly passed. Reservations release with no
// payout.
func (s *PackServiceImpl) ExpireSessionLite(ctx context.Context, vault, user domain.Address) error {
	sessAddr, _, err := deriveSessionLite(s.registry, vault, user)
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
	sess, err := s.sessionRepo.GetLiteForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return apperror.ErrNotFound("pack session")
	}
	if sess.State != domain.PackStatePendingDecision {
		return apperror.ErrInvalidSessionState()
	}
	if sess.InWindow(s.clock.Now()) {
		return apperror.ErrSessionNotExpired()
	}

	if err := s.releaseSessionCards(ctx, dbTx, cfg, sess.User, sess.RareCardKeys); err != nil {
		return err
	}

	sess.State = domain.PackStateExpired
	if err := s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(vault, user), sess.RareCardKeys)...)

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("session expired")
	return nil
}

// repairCard best-effort releases one admin-supplied card record back to
// vault custody. Stored bytes that fail strict decoding are rebuilt from a
// default record rather than aborting the batch.
func (s *PackServiceImpl) repairCard(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, vault, recordAddr domain.Address) domain.RepairResult {
	result := domain.RepairResult{Card: recordAddr}

	card, err := s.cardRepo.GetForUpdate(ctx, tx, recordAddr)
	if err != nil {
		if !errors.Is(err, domain.ErrBadRecord) {
			result.Reason = "read failed"
			return result
		}
		// Rebuild: the stored bytes are unusable, so reconstruct a vault-held
		// default in place.
		rebuilt := &domain.CardRecord{
			Vault:  vault,
			Status: domain.CardStatusAvailable,
			Owner:  cfg.CustodyAuthority,
		}
		if err := s.cardRepo.Rewrite(ctx, tx, recordAddr, rebuilt); err != nil {
			result.Reason = "rebuild failed"
			return result
		}
		s.log.Warn().Str("card", recordAddr.String()).Msg("rebuilt malformed card record")
		result.Released = true
		result.Reason = "rebuilt"
		return result
	}
	if card == nil {
		result.Reason = "not found"
		return result
	}
	if !card.Vault.Equal(vault) {
		result.Reason = "vault mismatch"
		return result
	}
	if card.Status.IsTerminal() {
		result.Reason = "terminal status"
		return result
	}
	card.Status = domain.CardStatusAvailable
	card.Owner = cfg.CustodyAuthority
	if err := s.cardRepo.Update(ctx, tx, recordAddr, card); err != nil {
		result.Reason = "write failed"
		return result
	}
	result.Released = true
	return result
}

// AdminForceClose resets a lightweight session to its default reusable shape,
// bypassing state and time preconditions, and best-effort releases the
// supplied card records. Entries failing the vault check are skipped with a
// per-item reason, not an error.
func (s *PackServiceImpl) AdminForceClose(ctx context.Context, admin, vault, user domain.Address, cards []domain.Address) ([]domain.RepairResult, error) {
	sessAddr, _, err := deriveSessionLite(s.registry, vault, user)
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
	if err := requireAdmin(cfg, admin); err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetLiteForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return nil, apperror.ErrNotFound("pack session")
	}

	results := make([]domain.RepairResult, 0, len(cards))
	for _, recordAddr := range cards {
		results = append(results, s.repairCard(ctx, dbTx, cfg, vault, recordAddr))
	}

	sess.Reset()
	if err := s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, sess); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(vault, user), cards)...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Int("cards", len(cards)).
		Msg("session force-closed")
	return results, nil
}

// AdminForceExpire marks a pending lightweight session Expired without the
// time check, releasing its reservations. Cards failing the vault check are
// skipped with a warning.
func (s *PackServiceImpl) AdminForceExpire(ctx context.Context, admin, vault, user domain.Address) error {
	sessAddr, _, err := deriveSessionLite(s.registry, vault, user)
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

	sess, err := s.sessionRepo.GetLiteForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return apperror.ErrNotFound("pack session")
	}
	if sess.State != domain.PackStatePendingDecision {
		return apperror.ErrInvalidSessionState()
	}

	for _, key := range sess.RareCardKeys {
		res := s.repairCard(ctx, dbTx, cfg, vault, key)
		if !res.Released {
			s.log.Warn().
				Str("card", key.String()).
				Str("reason", res.Reason).
				Msg("skipped card during force expire")
		}
	}

	sess.State = domain.PackStateExpired
	if err := s.sessionRepo.UpdateLite(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionLiteCacheKey(vault, user), sess.RareCardKeys)...)

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("session force-expired")
	return nil
}

// --- Legacy full-pack sessions ---

// OpenPackLegacy opens a full-pack session: all slots are reserved with their
// face prices recorded for sellback. Unlike the lightweight open, the session
// must be terminal or uninitialized outright; an expired pending session is
// not overwritten.
func (s *PackServiceImpl) OpenPackLegacy(ctx context.Context, req ports.OpenPackLegacyRequest) (*domain.PackSession, error) {
	if len(req.Slots) != domain.PackSlotCount {
		return nil, apperror.ErrInvalidCardCount()
	}
	if !req.Currency.IsValid() {
		return nil, apperror.Validation("unknown currency")
	}

	sessAddr, err := deriveSession(s.registry, req.Vault, req.User)
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

	sess, err := s.sessionRepo.GetFullForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess != nil && !sess.State.IsSettled() && sess.State != domain.PackStateUninitialized {
		return nil, apperror.ErrSessionExists()
	}

	now := s.clock.Now()
	paid, err := s.chargePackPrice(ctx, dbTx, cfg, req.User, req.Currency)
	if err != nil {
		return nil, err
	}

	next := &domain.PackSession{
		User:           req.User,
		Currency:       req.Currency,
		PaidAmount:     paid,
		CreatedAt:      now,
		ExpiresAt:      now + cfg.ClaimWindowSeconds,
		State:          domain.PackStatePendingDecision,
		CommitmentHash: req.CommitmentHash,
		SlotPrices:     make([]uint64, 0, domain.PackSlotCount),
	}
	for i, slot := range req.Slots {
		recordAddr, err := deriveCardRecord(s.registry, req.Vault, slot.Asset)
		if err != nil {
			return nil, err
		}
		if _, err := s.reserveCard(ctx, dbTx, req.Vault, req.User, recordAddr); err != nil {
			return nil, err
		}
		next.CardKeys[i] = recordAddr
		next.SlotPrices = append(next.SlotPrices, slot.Price)
	}

	if sess == nil {
		err = s.sessionRepo.CreateFull(ctx, dbTx, sessAddr, next)
	} else {
		err = s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, next)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(req.Vault, req.User), next.CardKeys[:])...)

	s.log.Info().
		Str("vault", req.Vault.String()).
		Str("user", req.User.String()).
		Uint64("paid", paid).
		Int64("expires_at", next.ExpiresAt).
		Msg("legacy pack opened")
	return next, nil
}

// loadPendingFull locks the full session and validates the common
// preconditions.
func (s *PackServiceImpl) loadPendingFull(ctx context.Context, tx pgx.Tx, vault, user domain.Address) (domain.Address, *domain.PackSession, error) {
	sessAddr, err := deriveSession(s.registry, vault, user)
	if err != nil {
		return domain.ZeroAddress, nil, err
	}
	sess, err := s.sessionRepo.GetFullForUpdate(ctx, tx, sessAddr)
	if err != nil {
		return domain.ZeroAddress, nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return domain.ZeroAddress, nil, apperror.ErrNotFound("pack session")
	}
	if !sess.User.Equal(user) {
		return domain.ZeroAddress, nil, apperror.ErrUnauthorized()
	}
	if sess.State != domain.PackStatePendingDecision {
		return domain.ZeroAddress, nil, apperror.ErrInvalidSessionState()
	}
	return sessAddr, sess, nil
}

// claimCard transfers one reserved slot to the user.
func (s *PackServiceImpl) claimCard(ctx context.Context, tx pgx.Tx, cfg *domain.VaultConfig, user, key domain.Address) error {
	card, err := s.cardRepo.GetForUpdate(ctx, tx, key)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
	}
	if card == nil {
		return apperror.ErrNotFound("card record")
	}
	if card.Status != domain.CardStatusReserved || !card.Owner.Equal(user) {
		return apperror.ErrCardNotReserved()
	}
	if err := s.custody.Transfer(ctx, tx, card.Asset, cfg.CustodyAuthority, user); err != nil {
		return apperror.ErrCustodyFailure(err)
	}
	card.Status = domain.CardStatusUserOwned
	if err := s.cardRepo.Update(ctx, tx, key, card); err != nil {
		return apperror.InternalError(fmt.Errorf("update card record: %w", err))
	}
	return nil
}

// ClaimPack settles a whole legacy pack in one call: every slot transfers and
// the session becomes Accepted.
func (s *PackServiceImpl) ClaimPack(ctx context.Context, vault, user domain.Address) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return err
	}
	sessAddr, sess, err := s.loadPendingFull(ctx, dbTx, vault, user)
	if err != nil {
		return err
	}
	if !sess.InWindow(s.clock.Now()) {
		return apperror.ErrSessionExpired()
	}

	for _, key := range sess.CardKeys {
		if err := s.claimCard(ctx, dbTx, cfg, user, key); err != nil {
			return err
		}
	}

	sess.State = domain.PackStateAccepted
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), sess.CardKeys[:])...)

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("legacy pack claimed")
	return nil
}

// claimBatch transfers a bounded subset of slots. The session stays
// PendingDecision; finalize confirms completeness later.
func (s *PackServiceImpl) claimBatch(ctx context.Context, vault, user domain.Address, cards []domain.Address) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return err
	}
	_, sess, err := s.loadPendingFull(ctx, dbTx, vault, user)
	if err != nil {
		return err
	}
	if !sess.InWindow(s.clock.Now()) {
		return apperror.ErrSessionExpired()
	}

	slots := make(map[domain.Address]bool, len(sess.CardKeys))
	for _, key := range sess.CardKeys {
		slots[key] = true
	}
	for _, key := range cards {
		if !slots[key] {
			return apperror.ErrCardKeyMismatch()
		}
		if err := s.claimCard(ctx, dbTx, cfg, user, key); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), cards)...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Int("batch", len(cards)).
		Msg("claim batch settled")
	return nil
}

// ClaimPackBatch claims one or two slots per call.
func (s *PackServiceImpl) ClaimPackBatch(ctx context.Context, vault, user domain.Address, cards []domain.Address) error {
	if len(cards) == 0 || len(cards) > claimBatchMax {
		return apperror.ErrInvalidCardCount()
	}
	return s.claimBatch(ctx, vault, user, cards)
}

// ClaimPackBatch3 claims exactly three slots per call.
func (s *PackServiceImpl) ClaimPackBatch3(ctx context.Context, vault, user domain.Address, cards []domain.Address) error {
	if len(cards) != claimBatch3 {
		return apperror.ErrInvalidCardCount()
	}
	return s.claimBatch(ctx, vault, user, cards)
}

// FinalizeClaim verifies every slot reached UserOwned and marks the session
// Accepted. Batched claims split one logical settlement across calls, so
// finalize re-verifies terminal status instead of trusting prior-call
// success.
func (s *PackServiceImpl) FinalizeClaim(ctx context.Context, vault, user domain.Address) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := s.lockVault(ctx, dbTx, vault); err != nil {
		return err
	}
	sessAddr, sess, err := s.loadPendingFull(ctx, dbTx, vault, user)
	if err != nil {
		return err
	}
	if !sess.InWindow(s.clock.Now()) {
		return apperror.ErrSessionExpired()
	}

	for _, key := range sess.CardKeys {
		card, err := s.cardRepo.GetForUpdate(ctx, dbTx, key)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		if card == nil {
			return apperror.ErrNotFound("card record")
		}
		if card.Status != domain.CardStatusUserOwned || !card.Owner.Equal(user) {
			return apperror.ErrCardNotReserved()
		}
	}

	sess.State = domain.PackStateAccepted
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), sess.CardKeys[:])...)

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("claim finalized")
	return nil
}

// SellbackPack rejects a legacy pack: payout is
// floor(sum(slot prices) * buyback_bps / 10000), every slot reverts to vault
// custody, session settles Rejected.
func (s *PackServiceImpl) SellbackPack(ctx context.Context, vault, user domain.Address) (*ports.SellbackResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return nil, err
	}
	sessAddr, sess, err := s.loadPendingFull(ctx, dbTx, vault, user)
	if err != nil {
		return nil, err
	}
	if !sess.InWindow(s.clock.Now()) {
		return nil, apperror.ErrSessionExpired()
	}

	faceValue, err := sumChecked(sess.SlotPrices)
	if err != nil {
		return nil, err
	}
	payout, err := applyBps(faceValue, cfg.BuybackBps)
	if err != nil {
		return nil, err
	}

	if err := s.releaseSessionCards(ctx, dbTx, cfg, user, sess.CardKeys[:]); err != nil {
		return nil, err
	}
	if err := s.payOut(ctx, dbTx, cfg, user, sess.Currency, payout); err != nil {
		return nil, err
	}

	sess.State = domain.PackStateRejected
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), sess.CardKeys[:])...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Uint64("face_value", faceValue).
		Uint64("payout", payout).
		Msg("legacy pack sold back")
	return &ports.SellbackResult{Payout: payout, Currency: sess.Currency}, nil
}

// ExpireSession lapses a legacy session after the window strictly passes.
// Slots already claimed through batches stay with the user; only reserved
// ones release.
func (s *PackServiceImpl) ExpireSession(ctx context.Context, vault, user domain.Address) error {
	sessAddr, err := deriveSession(s.registry, vault, user)
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
	sess, err := s.sessionRepo.GetFullForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return apperror.ErrNotFound("pack session")
	}
	if sess.State != domain.PackStatePendingDecision {
		return apperror.ErrInvalidSessionState()
	}
	if sess.InWindow(s.clock.Now()) {
		return apperror.ErrSessionNotExpired()
	}

	for _, key := range sess.CardKeys {
		card, err := s.cardRepo.GetForUpdate(ctx, dbTx, key)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock card record: %w", err))
		}
		if card == nil || card.Status != domain.CardStatusReserved || !card.Owner.Equal(sess.User) {
			continue
		}
		if err := s.releaseCard(ctx, dbTx, cfg, key, card); err != nil {
			return err
		}
	}

	sess.State = domain.PackStateExpired
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), sess.CardKeys[:])...)

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("legacy session expired")
	return nil
}

// AdminForceCloseSession zeroes a legacy session back to defaults, bypassing
// state and time preconditions. Card repair is a separate call
// (AdminResetSession or AdminResetCards).
func (s *PackServiceImpl) AdminForceCloseSession(ctx context.Context, admin, vault, user domain.Address) error {
	sessAddr, err := deriveSession(s.registry, vault, user)
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

	sess, err := s.sessionRepo.GetFullForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return apperror.ErrNotFound("pack session")
	}

	resetFullSession(sess)
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, sessionCacheKey(vault, user))

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("legacy session force-closed")
	return nil
}

func resetFullSession(sess *domain.PackSession) {
	sess.State = domain.PackStateUninitialized
	sess.Currency = domain.CurrencyNative
	sess.PaidAmount = 0
	sess.CreatedAt = 0
	sess.ExpiresAt = 0
	sess.CardKeys = [domain.PackSlotCount]domain.Address{}
	sess.SlotPrices = nil
	sess.CommitmentHash = [32]byte{}
}

// AdminResetSession zeroes a legacy session and best-effort releases the
// supplied card records, returning a per-item outcome list.
func (s *PackServiceImpl) AdminResetSession(ctx context.Context, admin, vault, user domain.Address, cards []domain.Address) ([]domain.RepairResult, error) {
	sessAddr, err := deriveSession(s.registry, vault, user)
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
	if err := requireAdmin(cfg, admin); err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetFullForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return nil, apperror.ErrNotFound("pack session")
	}

	results := make([]domain.RepairResult, 0, len(cards))
	for _, recordAddr := range cards {
		results = append(results, s.repairCard(ctx, dbTx, cfg, vault, recordAddr))
	}

	resetFullSession(sess)
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, settlementViewKeys(sessionCacheKey(vault, user), cards)...)

	s.log.Info().
		Str("vault", vault.String()).
		Str("user", user.String()).
		Int("cards", len(cards)).
		Msg("legacy session reset")
	return results, nil
}

// UserResetSession lets a user reclaim their own settled session slot for
// reuse. Pending sessions must settle through claim/sellback/expire first.
func (s *PackServiceImpl) UserResetSession(ctx context.Context, vault, user domain.Address) error {
	sessAddr, err := deriveSession(s.registry, vault, user)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	sess, err := s.sessionRepo.GetFullForUpdate(ctx, dbTx, sessAddr)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if sess == nil {
		return apperror.ErrNotFound("pack session")
	}
	if !sess.User.Equal(user) {
		return apperror.ErrUnauthorized()
	}
	if !sess.State.IsSettled() {
		return apperror.ErrInvalidSessionState()
	}

	resetFullSession(sess)
	if err := s.sessionRepo.UpdateFull(ctx, dbTx, sessAddr, sess); err != nil {
		return apperror.InternalError(fmt.Errorf("update session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.invalidateViews(ctx, sessionCacheKey(vault, user))

	s.log.Info().Str("vault", vault.String()).Str("user", user.String()).Msg("session reset by user")
	return nil
}

// AdminResetCards best-effort releases a batch of card records with no
// session involved, returning a per-item outcome list.
func (s *PackServiceImpl) AdminResetCards(ctx context.Context, admin, vault domain.Address, cards []domain.Address) ([]domain.RepairResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	cfg, err := s.lockVault(ctx, dbTx, vault)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(cfg, admin); err != nil {
		return nil, err
	}

	results := make([]domain.RepairResult, 0, len(cards))
	for _, recordAddr := range cards {
		results = append(results, s.repairCard(ctx, dbTx, cfg, vault, recordAddr))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	keys := make([]string, 0, len(cards))
	for _, recordAddr := range cards {
		keys = append(keys, cardCacheKey(recordAddr))
	}
	s.invalidateViews(ctx, keys...)

	s.log.Info().Str("vault", vault.String()).Int("cards", len(cards)).Msg("card batch reset")
	return results, nil
}

// --- Read surface ---

func (s *PackServiceImpl) cachedView(ctx context.Context, key string, out any, load func() (any, error)) error {
	return loadCachedView(ctx, s.cache, s.log, key, out, load)
}

// GetSession returns the legacy full-pack session view.
func (s *PackServiceImpl) GetSession(ctx context.Context, vault, user domain.Address) (*domain.PackSession, error) {
	sessAddr, err := deriveSession(s.registry, vault, user)
	if err != nil {
		return nil, err
	}
	var sess domain.PackSession
	err = s.cachedView(ctx, sessionCacheKey(vault, user), &sess, func() (any, error) {
		found, err := s.sessionRepo.GetFull(ctx, sessAddr)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
		}
		if found == nil {
			return nil, apperror.ErrNotFound("pack session")
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetSessionLite returns the lightweight session view.
func (s *PackServiceImpl) GetSessionLite(ctx context.Context, vault, user domain.Address) (*domain.PackSessionLite, error) {
	sessAddr, _, err := deriveSessionLite(s.registry, vault, user)
	if err != nil {
		return nil, err
	}
	var sess domain.PackSessionLite
	err = s.cachedView(ctx, sessionLiteCacheKey(vault, user), &sess, func() (any, error) {
		found, err := s.sessionRepo.GetLite(ctx, sessAddr)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
		}
		if found == nil {
			return nil, apperror.ErrNotFound("pack session")
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetCard returns the card record view for a vault asset.
func (s *PackServiceImpl) GetCard(ctx context.Context, vault, asset domain.Address) (*domain.CardRecord, error) {
	recordAddr, err := deriveCardRecord(s.registry, vault, asset)
	if err != nil {
		return nil, err
	}
	var card domain.CardRecord
	err = s.cachedView(ctx, cardCacheKey(recordAddr), &card, func() (any, error) {
		found, err := s.cardRepo.Get(ctx, recordAddr)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get card record: %w", err))
		}
		if found == nil {
			return nil, apperror.ErrNotFound("card record")
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}
