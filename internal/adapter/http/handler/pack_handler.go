package handler

import (
	"context"

	"github.com/miner1qaz-ops/Mochi/internal/adapter/http/dto"
	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
	"github.com/miner1qaz-ops/Mochi/pkg/response"

	"github.com/gin-gonic/gin"
)

// PackHandler handles pack session endpoints, both the lightweight shape and
// the legacy 11-slot shape.
type PackHandler struct {
	packSvc ports.PackService
}

// NewPackHandler creates a new PackHandler.
func NewPackHandler(packSvc ports.PackService) *PackHandler {
	return &PackHandler{packSvc: packSvc}
}

// OpenPack handles POST /api/v1/packs/open.
func (h *PackHandler) OpenPack(c *gin.Context) {
	var req dto.OpenPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq, err := toOpenPackRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.packSvc.OpenPack(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSessionLiteResponse(session))
}

// ClaimPack handles POST /api/v1/packs/claim.
func (h *PackHandler) ClaimPack(c *gin.Context) {
	vault, user, ok := bindSettle(c)
	if !ok {
		return
	}

	session, err := h.packSvc.ClaimPackLite(c.Request.Context(), vault, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSessionLiteResponse(session))
}

// SellbackPack handles POST /api/v1/packs/sellback.
func (h *PackHandler) SellbackPack(c *gin.Context) {
	vault, user, ok := bindSettle(c)
	if !ok {
		return
	}

	result, err := h.packSvc.SellbackPackLite(c.Request.Context(), vault, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSellbackResponse(result))
}

// ExpireSession handles POST /api/v1/packs/expire.
func (h *PackHandler) ExpireSession(c *gin.Context) {
	vault, user, ok := bindSettle(c)
	if !ok {
		return
	}

	if err := h.packSvc.ExpireSessionLite(c.Request.Context(), vault, user); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"user": user.String()})
}

// OpenPackLegacy handles POST /api/v1/packs/legacy/open.
func (h *PackHandler) OpenPackLegacy(c *gin.Context) {
	var req dto.OpenPackLegacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq, err := toOpenPackLegacyRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.packSvc.OpenPackLegacy(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSessionResponse(session))
}

// ClaimPackLegacy handles POST /api/v1/packs/legacy/claim.
func (h *PackHandler) ClaimPackLegacy(c *gin.Context) {
	h.settle(c, h.packSvc.ClaimPack)
}

// ClaimPackBatch handles POST /api/v1/packs/legacy/claim-batch.
func (h *PackHandler) ClaimPackBatch(c *gin.Context) {
	h.settleBatch(c, h.packSvc.ClaimPackBatch)
}

// ClaimPackBatch3 handles POST /api/v1/packs/legacy/claim-batch3.
func (h *PackHandler) ClaimPackBatch3(c *gin.Context) {
	h.settleBatch(c, h.packSvc.ClaimPackBatch3)
}

// FinalizeClaim handles POST /api/v1/packs/legacy/finalize.
func (h *PackHandler) FinalizeClaim(c *gin.Context) {
	h.settle(c, h.packSvc.FinalizeClaim)
}

// SellbackPackLegacy handles POST /api/v1/packs/legacy/sellback.
func (h *PackHandler) SellbackPackLegacy(c *gin.Context) {
	vault, user, ok := bindSettle(c)
	if !ok {
		return
	}

	result, err := h.packSvc.SellbackPack(c.Request.Context(), vault, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSellbackResponse(result))
}

// ExpireSessionLegacy handles POST /api/v1/packs/legacy/expire.
func (h *PackHandler) ExpireSessionLegacy(c *gin.Context) {
	h.settle(c, h.packSvc.ExpireSession)
}

// UserResetSession handles POST /api/v1/packs/legacy/reset.
func (h *PackHandler) UserResetSession(c *gin.Context) {
	h.settle(c, h.packSvc.UserResetSession)
}

// AdminForceClose handles POST /api/v1/admin/packs/force-close.
func (h *PackHandler) AdminForceClose(c *gin.Context) {
	var req dto.AdminForceCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := dto.Addrs(req.Cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.packSvc.AdminForceClose(c.Request.Context(), admin, vault, user, cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRepairResponses(results))
}

// AdminForceExpire handles POST /api/v1/admin/packs/force-expire.
func (h *PackHandler) AdminForceExpire(c *gin.Context) {
	var req dto.AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.packSvc.AdminForceExpire(c.Request.Context(), admin, vault, user); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"user": user.String()})
}

// AdminForceCloseLegacy handles POST /api/v1/admin/packs/legacy/force-close.
func (h *PackHandler) AdminForceCloseLegacy(c *gin.Context) {
	var req dto.AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.packSvc.AdminForceCloseSession(c.Request.Context(), admin, vault, user); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"user": user.String()})
}

// AdminResetSession handles POST /api/v1/admin/packs/legacy/reset-session.
func (h *PackHandler) AdminResetSession(c *gin.Context) {
	var req dto.AdminForceCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := dto.Addrs(req.Cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.packSvc.AdminResetSession(c.Request.Context(), admin, vault, user, cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRepairResponses(results))
}

// AdminResetCards handles POST /api/v1/admin/packs/reset-cards.
func (h *PackHandler) AdminResetCards(c *gin.Context) {
	var req dto.AdminResetCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := dto.Addrs(req.Cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.packSvc.AdminResetCards(c.Request.Context(), admin, vault, cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRepairResponses(results))
}

// GetSession handles GET /api/v1/vaults/:vault/sessions/:user.
func (h *PackHandler) GetSession(c *gin.Context) {
	vault, err := dto.Addr(c.Param("vault"))
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(c.Param("user"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.packSvc.GetSession(c.Request.Context(), vault, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSessionResponse(session))
}

// GetSessionLite handles GET /api/v1/vaults/:vault/sessions-lite/:user.
func (h *PackHandler) GetSessionLite(c *gin.Context) {
	vault, err := dto.Addr(c.Param("vault"))
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(c.Param("user"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.packSvc.GetSessionLite(c.Request.Context(), vault, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSessionLiteResponse(session))
}

// GetCard handles GET /api/v1/vaults/:vault/cards/:asset.
func (h *PackHandler) GetCard(c *gin.Context) {
	vault, err := dto.Addr(c.Param("vault"))
	if err != nil {
		response.Error(c, err)
		return
	}
	asset, err := dto.Addr(c.Param("asset"))
	if err != nil {
		response.Error(c, err)
		return
	}

	card, err := h.packSvc.GetCard(c.Request.Context(), vault, asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CardResponse{
		Vault:      card.Vault.String(),
		Asset:      card.Asset.String(),
		TemplateID: card.TemplateID,
		Rarity:     card.Rarity.String(),
		Status:     card.Status.String(),
		Owner:      card.Owner.String(),
	})
}

// settle binds a vault/user pair and runs a settlement operation with no
// result body beyond the acknowledged user.
func (h *PackHandler) settle(c *gin.Context, op func(ctx context.Context, vault, user domain.Address) error) {
	vault, user, ok := bindSettle(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), vault, user); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"user": user.String()})
}

func (h *PackHandler) settleBatch(c *gin.Context, op func(ctx context.Context, vault, user domain.Address, cards []domain.Address) error) {
	var req dto.CardBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return
	}
	cards, err := dto.Addrs(req.Cards)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := op(c.Request.Context(), vault, user, cards); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"user": user.String(), "claimed": len(cards)})
}

func bindSettle(c *gin.Context) (domain.Address, domain.Address, bool) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return domain.Address{}, domain.Address{}, false
	}

	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return domain.Address{}, domain.Address{}, false
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		response.Error(c, err)
		return domain.Address{}, domain.Address{}, false
	}

	return vault, user, true
}

func adminVault(adminHex, vaultHex string) (domain.Address, domain.Address, error) {
	admin, err := dto.Addr(adminHex)
	if err != nil {
		return domain.Address{}, domain.Address{}, err
	}
	vault, err := dto.Addr(vaultHex)
	if err != nil {
		return domain.Address{}, domain.Address{}, err
	}
	return admin, vault, nil
}

func toOpenPackRequest(req dto.OpenPackRequest) (ports.OpenPackRequest, error) {
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		return ports.OpenPackRequest{}, err
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		return ports.OpenPackRequest{}, err
	}
	currency, err := dto.ParseCurrency(req.Currency)
	if err != nil {
		return ports.OpenPackRequest{}, err
	}
	hash, err := dto.Hash32(req.CommitmentHash)
	if err != nil {
		return ports.OpenPackRequest{}, err
	}

	rares := make([]ports.RareCardRef, len(req.RareCards))
	for i, rc := range req.RareCards {
		asset, err := dto.Addr(rc.Asset)
		if err != nil {
			return ports.OpenPackRequest{}, err
		}
		rares[i] = ports.RareCardRef{Asset: asset, TemplateID: rc.TemplateID}
	}

	return ports.OpenPackRequest{
		Vault:          vault,
		User:           user,
		Currency:       currency,
		CommitmentHash: hash,
		RareCards:      rares,
	}, nil
}

func toOpenPackLegacyRequest(req dto.OpenPackLegacyRequest) (ports.OpenPackLegacyRequest, error) {
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		return ports.OpenPackLegacyRequest{}, err
	}
	user, err := dto.Addr(req.User)
	if err != nil {
		return ports.OpenPackLegacyRequest{}, err
	}
	currency, err := dto.ParseCurrency(req.Currency)
	if err != nil {
		return ports.OpenPackLegacyRequest{}, err
	}
	hash, err := dto.Hash32(req.CommitmentHash)
	if err != nil {
		return ports.OpenPackLegacyRequest{}, err
	}

	slots := make([]ports.LegacySlotRef, len(req.Slots))
	for i, s := range req.Slots {
		asset, err := dto.Addr(s.Asset)
		if err != nil {
			return ports.OpenPackLegacyRequest{}, err
		}
		slots[i] = ports.LegacySlotRef{Asset: asset, Price: s.Price}
	}

	return ports.OpenPackLegacyRequest{
		Vault:          vault,
		User:           user,
		Currency:       currency,
		CommitmentHash: hash,
		Slots:          slots,
	}, nil
}

func toSessionLiteResponse(s *domain.PackSessionLite) dto.SessionLiteResponse {
	keys := make([]string, len(s.RareCardKeys))
	for i, k := range s.RareCardKeys {
		keys[i] = k.String()
	}

	return dto.SessionLiteResponse{
		User:          s.User.String(),
		Currency:      s.Currency.String(),
		PaidAmount:    s.PaidAmount,
		CreatedAt:     s.CreatedAt,
		ExpiresAt:     s.ExpiresAt,
		RareCardKeys:  keys,
		RareTemplates: s.RareTemplates,
		State:         s.State.String(),
		TotalSlots:    s.TotalSlots,
	}
}

func toSessionResponse(s *domain.PackSession) dto.SessionResponse {
	keys := make([]string, len(s.CardKeys))
	for i, k := range s.CardKeys {
		keys[i] = k.String()
	}

	return dto.SessionResponse{
		User:       s.User.String(),
		Currency:   s.Currency.String(),
		PaidAmount: s.PaidAmount,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
		CardKeys:   keys,
		State:      s.State.String(),
		SlotPrices: s.SlotPrices,
	}
}

func toSellbackResponse(r *ports.SellbackResult) dto.SellbackResponse {
	return dto.SellbackResponse{
		Payout:   r.Payout,
		Currency: r.Currency.String(),
	}
}

func toRepairResponses(results []domain.RepairResult) []dto.RepairResponse {
	out := make([]dto.RepairResponse, len(results))
	for i, r := range results {
		out[i] = dto.RepairResponse{
			Card:     r.Card.String(),
			Released: r.Released,
			Reason:   r.Reason,
		}
	}
	return out
}
