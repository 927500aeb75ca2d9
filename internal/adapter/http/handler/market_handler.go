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

// MarketHandler handles marketplace listing endpoints.
type MarketHandler struct {
	marketSvc ports.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc ports.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// ListCard handles POST /api/v1/market/listings.
func (h *MarketHandler) ListCard(c *gin.Context) {
	var req dto.ListCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq, err := toListCardRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	listing, err := h.marketSvc.ListCard(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toListingResponse(listing))
}

// CancelListing handles POST /api/v1/market/listings/cancel.
func (h *MarketHandler) CancelListing(c *gin.Context) {
	var req dto.CancelListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, actor, asset, err := marketTriple(req.Vault, req.Seller, req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.marketSvc.CancelListing(c.Request.Context(), vault, actor, asset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"asset": asset.String()})
}

// FillListing handles POST /api/v1/market/listings/fill.
func (h *MarketHandler) FillListing(c *gin.Context) {
	var req dto.FillListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, buyer, asset, err := marketTriple(req.Vault, req.Buyer, req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.marketSvc.FillListing(c.Request.Context(), vault, buyer, asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FillResponse{
		Price:         result.Price,
		Fee:           result.Fee,
		SellerProceed: result.SellerProceed,
	})
}

// RedeemBurn handles POST /api/v1/market/redeem-burn.
func (h *MarketHandler) RedeemBurn(c *gin.Context) {
	var req dto.RedeemBurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, owner, asset, err := marketTriple(req.Vault, req.Owner, req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.marketSvc.RedeemBurn(c.Request.Context(), vault, owner, asset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"asset": asset.String()})
}

// GetListing handles GET /api/v1/vaults/:vault/listings/:asset.
func (h *MarketHandler) GetListing(c *gin.Context) {
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

	listing, err := h.marketSvc.GetListing(c.Request.Context(), vault, asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toListingResponse(listing))
}

// AdminMigrateAsset handles POST /api/v1/admin/market/migrate-asset.
func (h *MarketHandler) AdminMigrateAsset(c *gin.Context) {
	var req dto.MigrateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	oldAsset, err := dto.Addr(req.OldAsset)
	if err != nil {
		response.Error(c, err)
		return
	}
	newAsset, err := dto.Addr(req.NewAsset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.marketSvc.AdminMigrateAsset(c.Request.Context(), admin, vault, oldAsset, newAsset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"old_asset": oldAsset.String(), "new_asset": newAsset.String()})
}

// AdminPruneListing handles POST /api/v1/admin/market/prune-listing.
func (h *MarketHandler) AdminPruneListing(c *gin.Context) {
	var req dto.PruneListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		response.Error(c, err)
		return
	}
	asset, err := dto.Addr(req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.marketSvc.AdminPruneListing(c.Request.Context(), admin, vault, asset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"asset": asset.String()})
}

// AdminForceCancelListing handles POST /api/v1/admin/market/force-cancel.
func (h *MarketHandler) AdminForceCancelListing(c *gin.Context) {
	h.rescue(c, h.marketSvc.AdminForceCancelListing)
}

// EmergencyReturnAsset handles POST /api/v1/admin/market/emergency-return.
func (h *MarketHandler) EmergencyReturnAsset(c *gin.Context) {
	h.rescue(c, h.marketSvc.EmergencyReturnAsset)
}

// AdminRescueLegacyListing handles POST /api/v1/admin/market/rescue-legacy.
func (h *MarketHandler) AdminRescueLegacyListing(c *gin.Context) {
	h.rescue(c, h.marketSvc.AdminRescueLegacyListing)
}

func (h *MarketHandler) rescue(c *gin.Context, op func(ctx context.Context, req ports.RescueRequest) error) {
	var req dto.RescueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq, err := toRescueRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := op(c.Request.Context(), svcReq); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"asset": svcReq.Asset.String()})
}

func marketTriple(vaultHex, actorHex, assetHex string) (domain.Address, domain.Address, domain.Address, error) {
	vault, err := dto.Addr(vaultHex)
	if err != nil {
		return domain.Address{}, domain.Address{}, domain.Address{}, err
	}
	actor, err := dto.Addr(actorHex)
	if err != nil {
		return domain.Address{}, domain.Address{}, domain.Address{}, err
	}
	asset, err := dto.Addr(assetHex)
	if err != nil {
		return domain.Address{}, domain.Address{}, domain.Address{}, err
	}
	return vault, actor, asset, nil
}

func toListCardRequest(req dto.ListCardRequest) (ports.ListCardRequest, error) {
	vault, seller, asset, err := marketTriple(req.Vault, req.Seller, req.Asset)
	if err != nil {
		return ports.ListCardRequest{}, err
	}
	mint, err := dto.OptAddr(req.PaymentMint)
	if err != nil {
		return ports.ListCardRequest{}, err
	}

	return ports.ListCardRequest{
		Vault:       vault,
		Seller:      seller,
		Asset:       asset,
		Price:       req.Price,
		TemplateID:  req.TemplateID,
		Rarity:      domain.Rarity(req.Rarity),
		PaymentMint: mint,
	}, nil
}

func toRescueRequest(req dto.RescueRequest) (ports.RescueRequest, error) {
	admin, vault, err := adminVault(req.Admin, req.Vault)
	if err != nil {
		return ports.RescueRequest{}, err
	}
	asset, err := dto.Addr(req.Asset)
	if err != nil {
		return ports.RescueRequest{}, err
	}
	authority, err := dto.Addr(req.Authority)
	if err != nil {
		return ports.RescueRequest{}, err
	}
	recipient, err := dto.Addr(req.Recipient)
	if err != nil {
		return ports.RescueRequest{}, err
	}

	return ports.RescueRequest{
		Admin:     admin,
		Vault:     vault,
		Asset:     asset,
		Authority: authority,
		Recipient: recipient,
	}, nil
}

func toListingResponse(l *domain.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		Vault:       l.Vault.String(),
		Seller:      l.Seller.String(),
		Asset:       l.Asset.String(),
		Price:       l.Price,
		PaymentMint: dto.AddrString(l.PaymentMint),
		Status:      l.Status.String(),
	}
}
