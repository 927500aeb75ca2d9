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

// VaultHandler handles vault configuration and card deposit endpoints.
type VaultHandler struct {
	vaultSvc ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService) *VaultHandler {
	return &VaultHandler{vaultSvc: vaultSvc}
}

// InitializeVault handles POST /api/v1/admin/vaults.
func (h *VaultHandler) InitializeVault(c *gin.Context) {
	h.initialize(c, h.vaultSvc.InitializeVault)
}

// InitializeMarketplaceVault handles POST /api/v1/admin/vaults/marketplace.
func (h *VaultHandler) InitializeMarketplaceVault(c *gin.Context) {
	h.initialize(c, h.vaultSvc.InitializeMarketplaceVault)
}

func (h *VaultHandler) initialize(c *gin.Context, init func(ctx context.Context, req ports.InitializeVaultRequest) (*ports.VaultCreated, error)) {
	var req dto.InitVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq, err := toInitRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := init(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.VaultCreatedResponse{
		Vault:            created.Vault.String(),
		CustodyAuthority: created.CustodyAuthority.String(),
		AuthorityBump:    created.AuthorityBump,
	})
}

// SetRewardConfig handles POST /api/v1/admin/vaults/reward-config.
func (h *VaultHandler) SetRewardConfig(c *gin.Context) {
	var req dto.SetRewardConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := dto.Addr(req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	mint, err := dto.Addr(req.RewardMint)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.vaultSvc.SetRewardConfig(c.Request.Context(), ports.SetRewardConfigRequest{
		Admin:         admin,
		Vault:         vault,
		RewardMint:    mint,
		RewardPerPack: req.RewardPerPack,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"vault": vault.String()})
}

// MigrateVaultState handles POST /api/v1/admin/vaults/migrate.
func (h *VaultHandler) MigrateVaultState(c *gin.Context) {
	var req dto.MigrateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := dto.Addr(req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.vaultSvc.MigrateVaultState(c.Request.Context(), admin, vault); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"vault": vault.String()})
}

// DepositCard handles POST /api/v1/admin/vaults/cards.
func (h *VaultHandler) DepositCard(c *gin.Context) {
	var req dto.DepositCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := dto.Addr(req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	asset, err := dto.Addr(req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	card, err := h.vaultSvc.DepositCard(c.Request.Context(), ports.DepositCardRequest{
		Admin:      admin,
		Vault:      vault,
		Asset:      asset,
		TemplateID: req.TemplateID,
		Rarity:     domain.Rarity(req.Rarity),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositCardResponse{Card: card.String()})
}

// DeprecateCard handles POST /api/v1/admin/vaults/cards/deprecate.
func (h *VaultHandler) DeprecateCard(c *gin.Context) {
	var req dto.DeprecateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := dto.Addr(req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	vault, err := dto.Addr(req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	asset, err := dto.Addr(req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.vaultSvc.DeprecateCard(c.Request.Context(), admin, vault, asset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"asset": asset.String()})
}

// GetVault handles GET /api/v1/vaults/:vault.
func (h *VaultHandler) GetVault(c *gin.Context) {
	vault, err := dto.Addr(c.Param("vault"))
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.vaultSvc.GetVault(c.Request.Context(), vault)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(cfg))
}

func toInitRequest(req dto.InitVaultRequest) (ports.InitializeVaultRequest, error) {
	admin, err := dto.Addr(req.Admin)
	if err != nil {
		return ports.InitializeVaultRequest{}, err
	}
	collection, err := dto.OptAddr(req.Collection)
	if err != nil {
		return ports.InitializeVaultRequest{}, err
	}
	mint, err := dto.OptAddr(req.PaymentTokenMint)
	if err != nil {
		return ports.InitializeVaultRequest{}, err
	}

	return ports.InitializeVaultRequest{
		Admin:              admin,
		PackPriceNative:    req.PackPriceNative,
		PackPriceToken:     req.PackPriceToken,
		BuybackBps:         req.BuybackBps,
		MarketFeeBps:       req.MarketFeeBps,
		ClaimWindowSeconds: req.ClaimWindowSeconds,
		Collection:         collection,
		PaymentTokenMint:   mint,
	}, nil
}

func toVaultResponse(cfg *domain.VaultConfig) dto.VaultResponse {
	return dto.VaultResponse{
		Admin:              cfg.Admin.String(),
		CustodyAuthority:   cfg.CustodyAuthority.String(),
		PackPriceNative:    cfg.PackPriceNative,
		PackPriceToken:     cfg.PackPriceToken,
		BuybackBps:         cfg.BuybackBps,
		MarketFeeBps:       cfg.MarketFeeBps,
		ClaimWindowSeconds: cfg.ClaimWindowSeconds,
		Collection:         dto.AddrString(cfg.Collection),
		PaymentTokenMint:   dto.AddrString(cfg.PaymentTokenMint),
		RewardMint:         dto.AddrString(cfg.RewardMint),
		RewardPerPack:      cfg.RewardPerPack,
		AuthorityBump:      cfg.AuthorityBump,
	}
}
