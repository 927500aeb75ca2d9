package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports/mocks"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func addr(b byte) domain.Address {
	var a domain.Address
	a[0] = b
	return a
}

type vaultTestDeps struct {
	svc        *VaultServiceImpl
	vaultRepo  *mocks.MockVaultRepository
	cardRepo   *mocks.MockCardRepository
	payments   *mocks.MockPaymentLedger
	custody    *mocks.MockCustodyService
	registry   *AddressRegistryImpl
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupVaultService(t *testing.T) *vaultTestDeps {
	ctrl := gomock.NewController(t)
	d := &vaultTestDeps{
		vaultRepo:  mocks.NewMockVaultRepository(ctrl),
		cardRepo:   mocks.NewMockCardRepository(ctrl),
		payments:   mocks.NewMockPaymentLedger(ctrl),
		custody:    mocks.NewMockCustodyService(ctrl),
		registry:   testRegistry(),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewVaultService(
		d.vaultRepo, d.cardRepo, d.payments, d.custody,
		d.registry, d.transactor, zerolog.Nop(),
	)
	return d
}

// ==================== InitializeVault Tests ====================

func TestVaultService_InitializeVault_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)

	vaultAddr, _, err := d.registry.Derive([]byte(SeedVaultState))
	require.NoError(t, err)
	wantReserve := d.registry.MinimumReserve(domain.VaultConfigPackedSize)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, vaultAddr).Return(nil, nil)
	d.vaultRepo.EXPECT().Create(ctx, tx, vaultAddr, gomock.Any(), wantReserve).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ domain.Address, cfg *domain.VaultConfig, _ int64) error {
			assert.Equal(t, admin, cfg.Admin)
			assert.Equal(t, uint64(1_000_000), cfg.PackPriceNative)
			assert.Equal(t, uint16(5000), cfg.BuybackBps)
			assert.Equal(t, int64(86400), cfg.ClaimWindowSeconds)
			assert.False(t, cfg.CustodyAuthority.IsZero())
			return nil
		})

	created, err := d.svc.InitializeVault(ctx, ports.InitializeVaultRequest{
		Admin:              admin,
		PackPriceNative:    1_000_000,
		BuybackBps:         5000,
		MarketFeeBps:       250,
		ClaimWindowSeconds: 86400,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, vaultAddr, created.Vault)
	assert.False(t, created.CustodyAuthority.IsZero())

	// The custody authority matches the canonical derivation for the vault.
	wantAuthority, wantBump, err := deriveVaultAuthority(d.registry, vaultAddr)
	require.NoError(t, err)
	assert.Equal(t, wantAuthority, created.CustodyAuthority)
	assert.Equal(t, wantBump, created.AuthorityBump)
}

func TestVaultService_InitializeVault_AlreadyExists(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, gomock.Any()).Return(&domain.VaultConfig{}, nil)

	_, err := d.svc.InitializeVault(ctx, ports.InitializeVaultRequest{
		Admin:              addr(0xA1),
		ClaimWindowSeconds: 3600,
	})
	assertAppError(t, err, "RES_002")
}

func TestVaultService_InitializeVault_RejectsNonPositiveWindow(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.InitializeVault(context.Background(), ports.InitializeVaultRequest{
		Admin: addr(0xA1),
	})
	assertAppError(t, err, "VAL_001")
}

func TestVaultService_InitializeMarketplaceVault_DistinctAddress(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	vaultAddr, _, err := d.registry.Derive([]byte(SeedVaultState))
	require.NoError(t, err)
	marketAddr, _, err := d.registry.Derive([]byte(SeedMarketVaultState))
	require.NoError(t, err)
	require.NotEqual(t, vaultAddr, marketAddr)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, marketAddr).Return(nil, nil)
	d.vaultRepo.EXPECT().Create(ctx, tx, marketAddr, gomock.Any(), gomock.Any()).Return(nil)

	created, err := d.svc.InitializeMarketplaceVault(ctx, ports.InitializeVaultRequest{
		Admin:              addr(0xA1),
		ClaimWindowSeconds: 3600,
	})
	require.NoError(t, err)
	assert.Equal(t, marketAddr, created.Vault)
}

// ==================== SetRewardConfig Tests ====================

func TestVaultService_SetRewardConfig_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)
	vault := addr(0x0B)
	mint := addr(0x0C)
	authority := addr(0x0D)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, vault).Return(&domain.VaultConfig{
		Admin:            admin,
		CustodyAuthority: authority,
	}, nil)
	d.payments.EXPECT().GetMint(ctx, tx, mint).Return(&domain.FungibleMint{
		Authority: authority,
	}, nil)
	d.vaultRepo.EXPECT().Update(ctx, tx, vault, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ domain.Address, cfg *domain.VaultConfig) error {
			require.NotNil(t, cfg.RewardMint)
			assert.Equal(t, mint, *cfg.RewardMint)
			assert.Equal(t, uint64(500), cfg.RewardPerPack)
			return nil
		})

	err := d.svc.SetRewardConfig(ctx, ports.SetRewardConfigRequest{
		Admin:         admin,
		Vault:         vault,
		RewardMint:    mint,
		RewardPerPack: 500,
	})
	require.NoError(t, err)
}

func TestVaultService_SetRewardConfig_MintAuthorityMismatch(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, gomock.Any()).Return(&domain.VaultConfig{
		Admin:            admin,
		CustodyAuthority: addr(0x0D),
	}, nil)
	d.payments.EXPECT().GetMint(ctx, tx, gomock.Any()).Return(&domain.FungibleMint{
		Authority: addr(0xEE), // not the custody authority
	}, nil)

	err := d.svc.SetRewardConfig(ctx, ports.SetRewardConfigRequest{
		Admin:      admin,
		Vault:      addr(0x0B),
		RewardMint: addr(0x0C),
	})
	assertAppError(t, err, "REF_005")
}

func TestVaultService_SetRewardConfig_NotAdmin(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetForUpdate(ctx, tx, gomock.Any()).Return(&domain.VaultConfig{
		Admin: addr(0xA1),
	}, nil)

	err := d.svc.SetRewardConfig(ctx, ports.SetRewardConfigRequest{
		Admin: addr(0xBB),
		Vault: addr(0x0B),
	})
	assertAppError(t, err, "AUTH_001")
}

// ==================== MigrateVaultState Tests ====================

func TestVaultService_MigrateVaultState_TopsUpReserve(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)
	vault := addr(0x0B)

	cfg := &domain.VaultConfig{
		Admin:              admin,
		CustodyAuthority:   addr(0x0D),
		PackPriceNative:    1_000_000,
		BuybackBps:         5000,
		ClaimWindowSeconds: 3600,
	}
	wantReserve := d.registry.MinimumReserve(domain.VaultConfigPackedSize)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetRawForUpdate(ctx, tx, vault).Return(&domain.StoredRecord{
		Address: vault,
		Data:    cfg.Pack(),
		Reserve: wantReserve - 1, // short by one unit
	}, nil)
	d.vaultRepo.EXPECT().Rewrite(ctx, tx, vault, gomock.Any(), wantReserve).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ domain.Address, data []byte, _ int64) error {
			decoded, err := domain.UnpackVaultConfig(data)
			require.NoError(t, err)
			assert.Equal(t, cfg.PackPriceNative, decoded.PackPriceNative)
			assert.Equal(t, cfg.BuybackBps, decoded.BuybackBps)
			return nil
		})

	err := d.svc.MigrateVaultState(ctx, admin, vault)
	require.NoError(t, err)
}

func TestVaultService_MigrateVaultState_NotAdmin(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cfg := &domain.VaultConfig{Admin: addr(0xA1), ClaimWindowSeconds: 3600}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetRawForUpdate(ctx, tx, gomock.Any()).Return(&domain.StoredRecord{
		Data: cfg.Pack(),
	}, nil)

	err := d.svc.MigrateVaultState(ctx, addr(0xBB), addr(0x0B))
	assertAppError(t, err, "AUTH_001")
}

func TestVaultService_MigrateVaultState_NotFound(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetRawForUpdate(ctx, tx, gomock.Any()).Return(nil, nil)

	err := d.svc.MigrateVaultState(ctx, addr(0xA1), addr(0x0B))
	assertAppError(t, err, "RES_001")
}

// ==================== DepositCard Tests ====================

func TestVaultService_DepositCard_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)
	vault := addr(0x0B)
	asset := addr(0x0E)
	authority := addr(0x0D)

	recordAddr, err := deriveCardRecord(d.registry, vault, asset)
	require.NoError(t, err)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().Get(ctx, vault).Return(&domain.VaultConfig{
		Admin:            admin,
		CustodyAuthority: authority,
	}, nil)
	d.cardRepo.EXPECT().GetForUpdate(ctx, tx, recordAddr).Return(nil, nil)
	d.custody.EXPECT().Transfer(ctx, tx, asset, admin, authority).Return(nil)
	d.cardRepo.EXPECT().Create(ctx, tx, recordAddr, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ domain.Address, card *domain.CardRecord) error {
			assert.Equal(t, vault, card.Vault)
			assert.Equal(t, asset, card.Asset)
			assert.Equal(t, domain.CardStatusAvailable, card.Status)
			assert.Equal(t, authority, card.Owner)
			assert.Equal(t, domain.RarityUltraRare, card.Rarity)
			return nil
		})

	got, err := d.svc.DepositCard(ctx, ports.DepositCardRequest{
		Admin:      admin,
		Vault:      vault,
		Asset:      asset,
		TemplateID: 42,
		Rarity:     domain.RarityUltraRare,
	})
	require.NoError(t, err)
	assert.Equal(t, recordAddr, got)
}

func TestVaultService_DepositCard_AlreadyExists(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().Get(ctx, gomock.Any()).Return(&domain.VaultConfig{Admin: admin}, nil)
	d.cardRepo.EXPECT().GetForUpdate(ctx, tx, gomock.Any()).Return(&domain.CardRecord{}, nil)

	_, err := d.svc.DepositCard(ctx, ports.DepositCardRequest{
		Admin:  admin,
		Vault:  addr(0x0B),
		Asset:  addr(0x0E),
		Rarity: domain.RarityCommon,
	})
	assertAppError(t, err, "RES_002")
}

func TestVaultService_DepositCard_NotAdmin(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().Get(ctx, gomock.Any()).Return(&domain.VaultConfig{Admin: addr(0xA1)}, nil)

	_, err := d.svc.DepositCard(ctx, ports.DepositCardRequest{
		Admin:  addr(0xBB),
		Vault:  addr(0x0B),
		Asset:  addr(0x0E),
		Rarity: domain.RarityCommon,
	})
	assertAppError(t, err, "AUTH_001")
}

// ==================== DeprecateCard Tests ====================

func TestVaultService_DeprecateCard_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)
	vault := addr(0x0B)
	asset := addr(0x0E)

	recordAddr, err := deriveCardRecord(d.registry, vault, asset)
	require.NoError(t, err)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().Get(ctx, vault).Return(&domain.VaultConfig{Admin: admin}, nil)
	d.cardRepo.EXPECT().GetForUpdate(ctx, tx, recordAddr).Return(&domain.CardRecord{
		Vault:  vault,
		Asset:  asset,
		Status: domain.CardStatusAvailable,
	}, nil)
	d.cardRepo.EXPECT().Update(ctx, tx, recordAddr, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ domain.Address, card *domain.CardRecord) error {
			assert.Equal(t, domain.CardStatusDeprecated, card.Status)
			return nil
		})

	err = d.svc.DeprecateCard(ctx, admin, vault, asset)
	require.NoError(t, err)
}

func TestVaultService_DeprecateCard_ReservedRefused(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	admin := addr(0xA1)
	vault := addr(0x0B)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().Get(ctx, vault).Return(&domain.VaultConfig{Admin: admin}, nil)
	d.cardRepo.EXPECT().GetForUpdate(ctx, tx, gomock.Any()).Return(&domain.CardRecord{
		Vault:  vault,
		Status: domain.CardStatusReserved,
	}, nil)

	err := d.svc.DeprecateCard(ctx, admin, vault, addr(0x0E))
	assertAppError(t, err, "CRD_001")
}

// ==================== GetVault Tests ====================

func TestVaultService_GetVault_NotFound(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	d.vaultRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := d.svc.GetVault(context.Background(), addr(0x0B))
	assertAppError(t, err, "RES_001")
}
