package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/miner1qaz-ops/Mochi/internal/adapter/http/dto"
	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports/mocks"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func hexAddr(b byte) string {
	var a domain.Address
	a[0] = b
	return a.String()
}

func mustAddr(t *testing.T, s string) domain.Address {
	t.Helper()
	a, err := domain.ParseAddress(s)
	require.NoError(t, err)
	return a
}

func postJSON(t *testing.T, body interface{}, path string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "admin", "password123").Return("jwt_token", expiry, nil)

	w, c := postJSON(t, dto.LoginRequest{Username: "admin", Password: "password123"}, "/api/v1/auth/login")
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt_token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "admin", "wrong").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w, c := postJSON(t, dto.LoginRequest{Username: "admin", Password: "wrong"}, "/api/v1/auth/login")
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w, c := postJSON(t, map[string]string{"username": "admin"}, "/api/v1/auth/login")
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Vault Handler Tests ---

func TestInitializeVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	admin := hexAddr(0xA1)
	created := &ports.VaultCreated{
		Vault:            mustAddr(t, hexAddr(0x10)),
		CustodyAuthority: mustAddr(t, hexAddr(0x0D)),
		AuthorityBump:    254,
	}
	mockVault.EXPECT().InitializeVault(gomock.Any(), ports.InitializeVaultRequest{
		Admin:              mustAddr(t, admin),
		PackPriceNative:    1_000_000,
		PackPriceToken:     2_000_000,
		BuybackBps:         5000,
		MarketFeeBps:       250,
		ClaimWindowSeconds: 86400,
	}).Return(created, nil)

	w, c := postJSON(t, dto.InitVaultRequest{
		Admin:              admin,
		PackPriceNative:    1_000_000,
		PackPriceToken:     2_000_000,
		BuybackBps:         5000,
		MarketFeeBps:       250,
		ClaimWindowSeconds: 86400,
	}, "/api/v1/admin/vaults")
	h.InitializeVault(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, hexAddr(0x10), data["vault"])
	assert.Equal(t, hexAddr(0x0D), data["custody_authority"])
	assert.Equal(t, float64(254), data["authority_bump"])
}

func TestInitializeVault_BadAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	w, c := postJSON(t, map[string]interface{}{
		"admin":                "not-hex",
		"claim_window_seconds": 86400,
	}, "/api/v1/admin/vaults")
	h.InitializeVault(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositCard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	card := mustAddr(t, hexAddr(0xC1))
	mockVault.EXPECT().DepositCard(gomock.Any(), ports.DepositCardRequest{
		Admin:      mustAddr(t, hexAddr(0xA1)),
		Vault:      mustAddr(t, hexAddr(0x10)),
		Asset:      mustAddr(t, hexAddr(0x55)),
		TemplateID: 7,
		Rarity:     domain.RarityUltraRare,
	}).Return(card, nil)

	w, c := postJSON(t, dto.DepositCardRequest{
		Admin:      hexAddr(0xA1),
		Vault:      hexAddr(0x10),
		Asset:      hexAddr(0x55),
		TemplateID: 7,
		Rarity:     uint8(domain.RarityUltraRare),
	}, "/api/v1/admin/vaults/cards")
	h.DepositCard(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, hexAddr(0xC1), data["card"])
}

func TestGetVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	vault := mustAddr(t, hexAddr(0x10))
	mockVault.EXPECT().GetVault(gomock.Any(), vault).Return(&domain.VaultConfig{
		Admin:              mustAddr(t, hexAddr(0xA1)),
		CustodyAuthority:   mustAddr(t, hexAddr(0x0D)),
		PackPriceNative:    1_000_000,
		BuybackBps:         5000,
		MarketFeeBps:       250,
		ClaimWindowSeconds: 86400,
		AuthorityBump:      254,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/vaults/"+hexAddr(0x10), nil)
	c.Params = gin.Params{{Key: "vault", Value: hexAddr(0x10)}}
	h.GetVault(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, hexAddr(0xA1), data["admin"])
	assert.Equal(t, float64(1_000_000), data["pack_price_native"])
}

func TestGetVault_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().GetVault(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotFound("vault"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/vaults/"+hexAddr(0x99), nil)
	c.Params = gin.Params{{Key: "vault", Value: hexAddr(0x99)}}
	h.GetVault(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Pack Handler Tests ---

func TestOpenPack_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	user := mustAddr(t, hexAddr(0x22))
	mockPack.EXPECT().OpenPack(gomock.Any(), ports.OpenPackRequest{
		Vault:          mustAddr(t, hexAddr(0x10)),
		User:           user,
		Currency:       domain.CurrencyNative,
		CommitmentHash: [32]byte(mustAddr(t, strings.Repeat("ee", 32))),
		RareCards: []ports.RareCardRef{
			{Asset: mustAddr(t, hexAddr(0x55)), TemplateID: 7},
		},
	}).Return(&domain.PackSessionLite{
		User:         user,
		Currency:     domain.CurrencyNative,
		PaidAmount:   1_000_000,
		CreatedAt:    1_700_000_000,
		ExpiresAt:    1_700_086_400,
		RareCardKeys: []domain.Address{mustAddr(t, hexAddr(0xC1))},
		RareTemplates: []uint32{7},
		State:        domain.PackStatePendingDecision,
		TotalSlots:   domain.PackSlotCount,
	}, nil)

	w, c := postJSON(t, dto.OpenPackRequest{
		Vault:          hexAddr(0x10),
		User:           hexAddr(0x22),
		Currency:       "NATIVE",
		CommitmentHash: strings.Repeat("ee", 32),
		RareCards:      []dto.RareCardRef{{Asset: hexAddr(0x55), TemplateID: 7}},
	}, "/api/v1/packs/open")
	h.OpenPack(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "PENDING_DECISION", data["state"])
	assert.Equal(t, float64(1_000_000), data["paid_amount"])
}

func TestOpenPack_TooManyRares(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	rares := make([]dto.RareCardRef, 4)
	for i := range rares {
		rares[i] = dto.RareCardRef{Asset: hexAddr(byte(0x50 + i)), TemplateID: uint32(i + 1)}
	}

	w, c := postJSON(t, dto.OpenPackRequest{
		Vault:          hexAddr(0x10),
		User:           hexAddr(0x22),
		Currency:       "NATIVE",
		CommitmentHash: strings.Repeat("ee", 32),
		RareCards:      rares,
	}, "/api/v1/packs/open")
	h.OpenPack(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenPack_BadCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	w, c := postJSON(t, dto.OpenPackRequest{
		Vault:          hexAddr(0x10),
		User:           hexAddr(0x22),
		Currency:       "GOLD",
		CommitmentHash: strings.Repeat("ee", 32),
	}, "/api/v1/packs/open")
	h.OpenPack(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimPack_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	vault := mustAddr(t, hexAddr(0x10))
	user := mustAddr(t, hexAddr(0x22))
	mockPack.EXPECT().ClaimPackLite(gomock.Any(), vault, user).Return(&domain.PackSessionLite{
		User:       user,
		State:      domain.PackStateAccepted,
		TotalSlots: domain.PackSlotCount,
	}, nil)

	w, c := postJSON(t, dto.SettleRequest{Vault: hexAddr(0x10), User: hexAddr(0x22)}, "/api/v1/packs/claim")
	h.ClaimPack(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "ACCEPTED", data["state"])
}

func TestSellbackPack_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	mockPack.EXPECT().SellbackPackLite(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.SellbackResult{Payout: 500_000, Currency: domain.CurrencyNative}, nil)

	w, c := postJSON(t, dto.SettleRequest{Vault: hexAddr(0x10), User: hexAddr(0x22)}, "/api/v1/packs/sellback")
	h.SellbackPack(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(500_000), data["payout"])
	assert.Equal(t, "NATIVE", data["currency"])
}

func TestExpireSession_WindowStillOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	mockPack.EXPECT().ExpireSessionLite(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperror.ErrSessionNotExpired())

	w, c := postJSON(t, dto.SettleRequest{Vault: hexAddr(0x10), User: hexAddr(0x22)}, "/api/v1/packs/expire")
	h.ExpireSession(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimPackBatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	cards := []domain.Address{mustAddr(t, hexAddr(0xC1)), mustAddr(t, hexAddr(0xC2))}
	mockPack.EXPECT().ClaimPackBatch(gomock.Any(), mustAddr(t, hexAddr(0x10)), mustAddr(t, hexAddr(0x22)), cards).Return(nil)

	w, c := postJSON(t, dto.CardBatchRequest{
		Vault: hexAddr(0x10),
		User:  hexAddr(0x22),
		Cards: []string{hexAddr(0xC1), hexAddr(0xC2)},
	}, "/api/v1/packs/legacy/claim-batch")
	h.ClaimPackBatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(2), data["claimed"])
}

func TestAdminForceClose_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPack := mocks.NewMockPackService(ctrl)
	h := NewPackHandler(mockPack)

	mockPack.EXPECT().AdminForceClose(gomock.Any(),
		mustAddr(t, hexAddr(0xA1)), mustAddr(t, hexAddr(0x10)), mustAddr(t, hexAddr(0x22)),
		[]domain.Address{mustAddr(t, hexAddr(0xC1))},
	).Return([]domain.RepairResult{
		{Card: mustAddr(t, hexAddr(0xC1)), Released: true},
	}, nil)

	w, c := postJSON(t, dto.AdminForceCloseRequest{
		Admin: hexAddr(0xA1),
		Vault: hexAddr(0x10),
		User:  hexAddr(0x22),
		Cards: []string{hexAddr(0xC1)},
	}, "/api/v1/admin/packs/force-close")
	h.AdminForceClose(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items, ok := resp["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, hexAddr(0xC1), first["card"])
	assert.Equal(t, true, first["released"])
}

// --- Market Handler Tests ---

func TestListCard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().ListCard(gomock.Any(), ports.ListCardRequest{
		Vault:      mustAddr(t, hexAddr(0x10)),
		Seller:     mustAddr(t, hexAddr(0x22)),
		Asset:      mustAddr(t, hexAddr(0x55)),
		Price:      1000,
		TemplateID: 7,
		Rarity:     domain.RarityUltraRare,
	}).Return(&domain.Listing{
		Vault:  mustAddr(t, hexAddr(0x10)),
		Seller: mustAddr(t, hexAddr(0x22)),
		Asset:  mustAddr(t, hexAddr(0x55)),
		Price:  1000,
		Status: domain.ListingStatusActive,
	}, nil)

	w, c := postJSON(t, dto.ListCardRequest{
		Vault:      hexAddr(0x10),
		Seller:     hexAddr(0x22),
		Asset:      hexAddr(0x55),
		Price:      1000,
		TemplateID: 7,
		Rarity:     uint8(domain.RarityUltraRare),
	}, "/api/v1/market/listings")
	h.ListCard(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "ACTIVE", data["status"])
	assert.Equal(t, float64(1000), data["price"])
}

func TestListCard_ZeroPriceRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().ListCard(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidPrice())

	w, c := postJSON(t, dto.ListCardRequest{
		Vault:      hexAddr(0x10),
		Seller:     hexAddr(0x22),
		Asset:      hexAddr(0x55),
		Price:      0,
		TemplateID: 7,
		Rarity:     uint8(domain.RarityUltraRare),
	}, "/api/v1/market/listings")
	h.ListCard(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFillListing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().FillListing(gomock.Any(),
		mustAddr(t, hexAddr(0x10)), mustAddr(t, hexAddr(0x33)), mustAddr(t, hexAddr(0x55)),
	).Return(&ports.FillResult{Price: 1000, Fee: 25, SellerProceed: 975}, nil)

	w, c := postJSON(t, dto.FillListingRequest{
		Vault: hexAddr(0x10),
		Buyer: hexAddr(0x33),
		Asset: hexAddr(0x55),
	}, "/api/v1/market/listings/fill")
	h.FillListing(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(25), data["fee"])
	assert.Equal(t, float64(975), data["seller_proceed"])
}

func TestFillListing_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().FillListing(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds())

	w, c := postJSON(t, dto.FillListingRequest{
		Vault: hexAddr(0x10),
		Buyer: hexAddr(0x33),
		Asset: hexAddr(0x55),
	}, "/api/v1/market/listings/fill")
	h.FillListing(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestGetListing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().GetListing(gomock.Any(), mustAddr(t, hexAddr(0x10)), mustAddr(t, hexAddr(0x55))).
		Return(&domain.Listing{
			Vault:  mustAddr(t, hexAddr(0x10)),
			Seller: mustAddr(t, hexAddr(0x22)),
			Asset:  mustAddr(t, hexAddr(0x55)),
			Price:  1000,
			Status: domain.ListingStatusFilled,
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/vaults/x/listings/y", nil)
	c.Params = gin.Params{
		{Key: "vault", Value: hexAddr(0x10)},
		{Key: "asset", Value: hexAddr(0x55)},
	}
	h.GetListing(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "FILLED", data["status"])
}

func TestAdminRescueLegacyListing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMarket := mocks.NewMockMarketService(ctrl)
	h := NewMarketHandler(mockMarket)

	mockMarket.EXPECT().AdminRescueLegacyListing(gomock.Any(), ports.RescueRequest{
		Admin:     mustAddr(t, hexAddr(0xA1)),
		Vault:     mustAddr(t, hexAddr(0x10)),
		Asset:     mustAddr(t, hexAddr(0x55)),
		Authority: mustAddr(t, hexAddr(0x0D)),
		Recipient: mustAddr(t, hexAddr(0x22)),
	}).Return(nil)

	w, c := postJSON(t, dto.RescueRequest{
		Admin:     hexAddr(0xA1),
		Vault:     hexAddr(0x10),
		Asset:     hexAddr(0x55),
		Authority: hexAddr(0x0D),
		Recipient: hexAddr(0x22),
	}, "/api/v1/admin/market/rescue-legacy")
	h.AdminRescueLegacyListing(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, hexAddr(0x55), data["asset"])
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: assert.AnError},
	))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
