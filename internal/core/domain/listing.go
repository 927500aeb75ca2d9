package domain

// ListingStatus is the lifecycle state of a marketplace sale offer.
type ListingStatus uint8

const (
	ListingStatusActive ListingStatus = iota
	ListingStatusFilled
	ListingStatusCancelled
	ListingStatusBurned
	ListingStatusDeprecated
)

// IsValid reports whether the status is one of the known states.
func (s ListingStatus) IsValid() bool {
	return s <= ListingStatusDeprecated
}

func (s ListingStatus) String() string {
	switch s {
	case ListingStatusActive:
		return "ACTIVE"
	case ListingStatusFilled:
		return "FILLED"
	case ListingStatusCancelled:
		return "CANCELLED"
	case ListingStatusBurned:
		return "BURNED"
	case ListingStatusDeprecated:
		return "DEPRECATED"
	default:
		return "UNKNOWN"
	}
}

// Listing is a marketplace sale offer keyed by (vault, asset).
type Listing struct {
	Vault       Address       `json:"vault"`
	Seller      Address       `json:"seller"`
	Asset       Address       `json:"asset"`
	Price       uint64        `json:"price"`
	PaymentMint *Address      `json:"payment_mint,omitempty"`
	Status      ListingStatus `json:"status"`
}

// TokenAccount is a fungible-balance account held by the payment collaborator.
type TokenAccount struct {
	Address Address `json:"address"`
	Mint    Address `json:"mint"`
	Owner   Address `json:"owner"`
	Balance uint64  `json:"balance"`
}

// FungibleMint describes a fungible token mint and its minting authority.
type FungibleMint struct {
	Address   Address `json:"address"`
	Authority Address `json:"authority"`
	Supply    uint64  `json:"supply"`
}
