package dto

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// InitVaultRequest is the request body for vault initialization.
// All addresses are 64-character hex strings.
type InitVaultRequest struct {
	Admin              string  `json:"admin" binding:"required,hexaddr"`
	PackPriceNative    uint64  `json:"pack_price_native"`
	PackPriceToken     uint64  `json:"pack_price_token"`
	BuybackBps         uint16  `json:"buyback_bps"`
	MarketFeeBps       uint16  `json:"market_fee_bps"`
	ClaimWindowSeconds int64   `json:"claim_window_seconds" binding:"required,gt=0"`
	Collection         *string `json:"collection,omitempty" binding:"omitempty,hexaddr"`
	PaymentTokenMint   *string `json:"payment_token_mint,omitempty" binding:"omitempty,hexaddr"`
}

// VaultCreatedResponse is the response body for a freshly initialized vault.
type VaultCreatedResponse struct {
	Vault            string `json:"vault"`
	CustodyAuthority string `json:"custody_authority"`
	AuthorityBump    uint8  `json:"authority_bump"`
}

// SetRewardConfigRequest is the request body for configuring the reward mint.
type SetRewardConfigRequest struct {
	Admin         string `json:"admin" binding:"required,hexaddr"`
	Vault         string `json:"vault" binding:"required,hexaddr"`
	RewardMint    string `json:"reward_mint" binding:"required,hexaddr"`
	RewardPerPack uint64 `json:"reward_per_pack"`
}

// MigrateVaultRequest is the request body for a vault record migration.
type MigrateVaultRequest struct {
	Admin string `json:"admin" binding:"required,hexaddr"`
	Vault string `json:"vault" binding:"required,hexaddr"`
}

// DepositCardRequest is the request body for depositing a card into custody.
type DepositCardRequest struct {
	Admin      string `json:"admin" binding:"required,hexaddr"`
	Vault      string `json:"vault" binding:"required,hexaddr"`
	Asset      string `json:"asset" binding:"required,hexaddr"`
	TemplateID uint32 `json:"template_id" binding:"required"`
	Rarity     uint8  `json:"rarity" binding:"lte=8"`
}

// DepositCardResponse carries the derived card record address.
type DepositCardResponse struct {
	Card string `json:"card"`
}

// DeprecateCardRequest is the request body for retiring a card record.
type DeprecateCardRequest struct {
	Admin string `json:"admin" binding:"required,hexaddr"`
	Vault string `json:"vault" binding:"required,hexaddr"`
	Asset string `json:"asset" binding:"required,hexaddr"`
}

// VaultResponse is the read view of a vault configuration.
type VaultResponse struct {
	Admin              string  `json:"admin"`
	CustodyAuthority   string  `json:"custody_authority"`
	PackPriceNative    uint64  `json:"pack_price_native"`
	PackPriceToken     uint64  `json:"pack_price_token"`
	BuybackBps         uint16  `json:"buyback_bps"`
	MarketFeeBps       uint16  `json:"market_fee_bps"`
	ClaimWindowSeconds int64   `json:"claim_window_seconds"`
	Collection         *string `json:"collection,omitempty"`
	PaymentTokenMint   *string `json:"payment_token_mint,omitempty"`
	RewardMint         *string `json:"reward_mint,omitempty"`
	RewardPerPack      uint64  `json:"reward_per_pack"`
	AuthorityBump      uint8   `json:"authority_bump"`
}

// RareCardRef names one rare-slot reservation in an open-pack request.
type RareCardRef struct {
	Asset      string `json:"asset" binding:"required,hexaddr"`
	TemplateID uint32 `json:"template_id" binding:"required"`
}

// OpenPackRequest is the request body for opening a lightweight pack session.
type OpenPackRequest struct {
	Vault          string        `json:"vault" binding:"required,hexaddr"`
	User           string        `json:"user" binding:"required,hexaddr"`
	Currency       string        `json:"currency" binding:"required"`
	CommitmentHash string        `json:"commitment_hash" binding:"required,hexaddr"`
	RareCards      []RareCardRef `json:"rare_cards" binding:"max=3,dive"`
}

// LegacySlot names one slot of a legacy 11-slot pack.
type LegacySlot struct {
	Asset string `json:"asset" binding:"required,hexaddr"`
	Price uint64 `json:"price"`
}

// OpenPackLegacyRequest is the request body for opening a legacy full session.
type OpenPackLegacyRequest struct {
	Vault          string       `json:"vault" binding:"required,hexaddr"`
	User           string       `json:"user" binding:"required,hexaddr"`
	Currency       string       `json:"currency" binding:"required"`
	CommitmentHash string       `json:"commitment_hash" binding:"required,hexaddr"`
	Slots          []LegacySlot `json:"slots" binding:"required,len=11,dive"`
}

// SettleRequest identifies a pending session for claim, sellback or expiry.
type SettleRequest struct {
	Vault string `json:"vault" binding:"required,hexaddr"`
	User  string `json:"user" binding:"required,hexaddr"`
}

// CardBatchRequest identifies a session plus an explicit card subset, used by
// the legacy batched claim endpoints.
type CardBatchRequest struct {
	Vault string   `json:"vault" binding:"required,hexaddr"`
	User  string   `json:"user" binding:"required,hexaddr"`
	Cards []string `json:"cards" binding:"required,min=1,dive,hexaddr"`
}

// AdminSessionRequest is the request body for admin session operations.
type AdminSessionRequest struct {
	Admin string `json:"admin" binding:"required,hexaddr"`
	Vault string `json:"vault" binding:"required,hexaddr"`
	User  string `json:"user" binding:"required,hexaddr"`
}

// AdminForceCloseRequest closes a stuck session, releasing the named cards.
type AdminForceCloseRequest struct {
	Admin string   `json:"admin" binding:"required,hexaddr"`
	Vault string   `json:"vault" binding:"required,hexaddr"`
	User  string   `json:"user" binding:"required,hexaddr"`
	Cards []string `json:"cards" binding:"dive,hexaddr"`
}

// AdminResetCardsRequest releases stuck card reservations with no session.
type AdminResetCardsRequest struct {
	Admin string   `json:"admin" binding:"required,hexaddr"`
	Vault string   `json:"vault" binding:"required,hexaddr"`
	Cards []string `json:"cards" binding:"required,min=1,dive,hexaddr"`
}

// SessionLiteResponse is the read view of a lightweight pack session.
type SessionLiteResponse struct {
	User          string   `json:"user"`
	Currency      string   `json:"currency"`
	PaidAmount    uint64   `json:"paid_amount"`
	CreatedAt     int64    `json:"created_at"`
	ExpiresAt     int64    `json:"expires_at"`
	RareCardKeys  []string `json:"rare_card_keys"`
	RareTemplates []uint32 `json:"rare_templates"`
	State         string   `json:"state"`
	TotalSlots    uint8    `json:"total_slots"`
}

// SessionResponse is the read view of a legacy full pack session.
type SessionResponse struct {
	User       string   `json:"user"`
	Currency   string   `json:"currency"`
	PaidAmount uint64   `json:"paid_amount"`
	CreatedAt  int64    `json:"created_at"`
	ExpiresAt  int64    `json:"expires_at"`
	CardKeys   []string `json:"card_keys"`
	State      string   `json:"state"`
	SlotPrices []uint64 `json:"slot_prices"`
}

// SellbackResponse reports the payout of a sellback settlement.
type SellbackResponse struct {
	Payout   uint64 `json:"payout"`
	Currency string `json:"currency"`
}

// RepairResponse reports the outcome for one card of an admin repair.
type RepairResponse struct {
	Card     string `json:"card"`
	Released bool   `json:"released"`
	Reason   string `json:"reason,omitempty"`
}

// CardResponse is the read view of a card custody record.
type CardResponse struct {
	Vault      string `json:"vault"`
	Asset      string `json:"asset"`
	TemplateID uint32 `json:"template_id"`
	Rarity     string `json:"rarity"`
	Status     string `json:"status"`
	Owner      string `json:"owner"`
}

// ListCardRequest is the request body for creating a marketplace listing.
type ListCardRequest struct {
	Vault       string  `json:"vault" binding:"required,hexaddr"`
	Seller      string  `json:"seller" binding:"required,hexaddr"`
	Asset       string  `json:"asset" binding:"required,hexaddr"`
	Price       uint64  `json:"price"`
	TemplateID  uint32  `json:"template_id" binding:"required"`
	Rarity      uint8   `json:"rarity" binding:"lte=8"`
	PaymentMint *string `json:"payment_mint,omitempty" binding:"omitempty,hexaddr"`
}

// CancelListingRequest is the request body for cancelling a listing.
type CancelListingRequest struct {
	Vault  string `json:"vault" binding:"required,hexaddr"`
	Seller string `json:"seller" binding:"required,hexaddr"`
	Asset  string `json:"asset" binding:"required,hexaddr"`
}

// FillListingRequest is the request body for buying a listed card.
type FillListingRequest struct {
	Vault string `json:"vault" binding:"required,hexaddr"`
	Buyer string `json:"buyer" binding:"required,hexaddr"`
	Asset string `json:"asset" binding:"required,hexaddr"`
}

// RedeemBurnRequest is the request body for burning an owned card.
type RedeemBurnRequest struct {
	Vault string `json:"vault" binding:"required,hexaddr"`
	Owner string `json:"owner" binding:"required,hexaddr"`
	Asset string `json:"asset" binding:"required,hexaddr"`
}

// ListingResponse is the read view of a marketplace listing.
type ListingResponse struct {
	Vault       string  `json:"vault"`
	Seller      string  `json:"seller"`
	Asset       string  `json:"asset"`
	Price       uint64  `json:"price"`
	PaymentMint *string `json:"payment_mint,omitempty"`
	Status      string  `json:"status"`
}

// FillResponse reports the settlement split of a filled listing.
type FillResponse struct {
	Price         uint64 `json:"price"`
	Fee           uint64 `json:"fee"`
	SellerProceed uint64 `json:"seller_proceed"`
}

// MigrateAssetRequest re-points a card record at a replacement asset.
type MigrateAssetRequest struct {
	Admin    string `json:"admin" binding:"required,hexaddr"`
	Vault    string `json:"vault" binding:"required,hexaddr"`
	OldAsset string `json:"old_asset" binding:"required,hexaddr"`
	NewAsset string `json:"new_asset" binding:"required,hexaddr"`
}

// PruneListingRequest is the request body for deleting a dead listing record.
type PruneListingRequest struct {
	Admin string `json:"admin" binding:"required,hexaddr"`
	Vault string `json:"vault" binding:"required,hexaddr"`
	Asset string `json:"asset" binding:"required,hexaddr"`
}

// RescueRequest is the request body for the admin asset-rescue operations.
type RescueRequest struct {
	Admin     string `json:"admin" binding:"required,hexaddr"`
	Vault     string `json:"vault" binding:"required,hexaddr"`
	Asset     string `json:"asset" binding:"required,hexaddr"`
	Authority string `json:"authority" binding:"required,hexaddr"`
	Recipient string `json:"recipient" binding:"required,hexaddr"`
}
