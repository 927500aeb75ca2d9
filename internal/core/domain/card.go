package domain

// Rarity grades a collectible card template.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityDoubleRare
	RarityUltraRare
	RarityIllustrationRare
	RaritySpecialIllustrationRare
	RarityMegaHyperRare
	RarityEnergy
)

// IsValid reports whether the rarity is one of the known grades.
func (r Rarity) IsValid() bool {
	return r <= RarityEnergy
}

// IsRareOrAbove reports whether the rarity qualifies for a rare-slot
// reservation. Energy cards never qualify regardless of their enum position.
func (r Rarity) IsRareOrAbove() bool {
	return r >= RarityRare && r <= RarityMegaHyperRare
}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityUncommon:
		return "UNCOMMON"
	case RarityRare:
		return "RARE"
	case RarityDoubleRare:
		return "DOUBLE_RARE"
	case RarityUltraRare:
		return "ULTRA_RARE"
	case RarityIllustrationRare:
		return "ILLUSTRATION_RARE"
	case RaritySpecialIllustrationRare:
		return "SPECIAL_ILLUSTRATION_RARE"
	case RarityMegaHyperRare:
		return "MEGA_HYPER_RARE"
	case RarityEnergy:
		return "ENERGY"
	default:
		return "UNKNOWN"
	}
}

// CardStatus is the custody/status state of a CardRecord.
type CardStatus uint8

const (
	CardStatusAvailable CardStatus = iota
	CardStatusReserved
	CardStatusUserOwned
	CardStatusRedeemPending
	CardStatusBurned
	CardStatusDeprecated
)

// IsValid reports whether the status is one of the known states.
func (s CardStatus) IsValid() bool {
	return s <= CardStatusDeprecated
}

// IsTerminal reports whether the status is never reopened by normal flow.
func (s CardStatus) IsTerminal() bool {
	return s == CardStatusBurned || s == CardStatusDeprecated
}

func (s CardStatus) String() string {
	switch s {
	case CardStatusAvailable:
		return "AVAILABLE"
	case CardStatusReserved:
		return "RESERVED"
	case CardStatusUserOwned:
		return "USER_OWNED"
	case CardStatusRedeemPending:
		return "REDEEM_PENDING"
	case CardStatusBurned:
		return "BURNED"
	case CardStatusDeprecated:
		return "DEPRECATED"
	default:
		return "UNKNOWN"
	}
}

// CardRecord tracks custody and lifecycle of a single collectible asset.
//
// Invariant: Owner equals the vault's custody authority whenever Status is
// Available; Owner equals the reserving user (or listing seller) while
// Reserved; Owner equals the actual user whenever Status is UserOwned. The
// underlying asset stays in vault custody until the record reaches
// UserOwned.
type CardRecord struct {
	Vault      Address    `json:"vault"`
	Asset      Address    `json:"asset"`
	TemplateID uint32     `json:"template_id"`
	Rarity     Rarity     `json:"rarity"`
	Status     CardStatus `json:"status"`
	Owner      Address    `json:"owner"`
}
