package domain

// Currency selects the payment leg of a pack purchase.
type Currency uint8

const (
	// CurrencyNative pays in the ledger's native currency.
	CurrencyNative Currency = iota
	// CurrencyToken pays in the configured fungible payment token.
	CurrencyToken
)

// IsValid reports whether the currency is one of the known legs.
func (c Currency) IsValid() bool {
	return c == CurrencyNative || c == CurrencyToken
}

func (c Currency) String() string {
	switch c {
	case CurrencyNative:
		return "NATIVE"
	case CurrencyToken:
		return "TOKEN"
	default:
		return "UNKNOWN"
	}
}

// BpsDenominator is the basis-point denominator for all rate arithmetic.
const BpsDenominator = 10_000

// VaultConfig is the admin-owned configuration record for one vault.
// The settlement engine threads it into every operation call; there is no
// ambient/global configuration state.
type VaultConfig struct {
	Admin              Address  `json:"admin"`
	CustodyAuthority   Address  `json:"custody_authority"`
	PackPriceNative    uint64   `json:"pack_price_native"`
	PackPriceToken     uint64   `json:"pack_price_token"`
	BuybackBps         uint16   `json:"buyback_bps"`
	ClaimWindowSeconds int64    `json:"claim_window_seconds"`
	MarketFeeBps       uint16   `json:"market_fee_bps"`
	Collection         *Address `json:"collection,omitempty"`
	PaymentTokenMint   *Address `json:"payment_token_mint,omitempty"`
	RewardMint         *Address `json:"reward_mint,omitempty"`
	RewardPerPack      uint64   `json:"reward_per_pack"`
	AuthorityBump      uint8    `json:"authority_bump"`
}

// PackPrice returns the configured pack price for the given currency.
func (v *VaultConfig) PackPrice(c Currency) uint64 {
	if c == CurrencyToken {
		return v.PackPriceToken
	}
	return v.PackPriceNative
}

// StoredRecord is the raw persisted form of a ledger record: the packed bytes
// plus the reserve balance backing the record's storage.
type StoredRecord struct {
	Address Address
	Data    []byte
	Reserve int64
}
