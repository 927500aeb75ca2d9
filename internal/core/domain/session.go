package domain

const (
	// PackSlotCount is the fixed number of slots in a full pack.
	PackSlotCount = 11
	// MaxRareCards bounds the rare-or-above reservations of a lightweight session.
	MaxRareCards = 3
)

// PackState is the lifecycle state of a pack session.
type PackState uint8

const (
	PackStateUninitialized PackState = iota
	PackStatePendingDecision
	PackStateAccepted
	PackStateRejected
	PackStateExpired
)

// IsValid reports whether the state is one of the known states.
func (s PackState) IsValid() bool {
	return s <= PackStateExpired
}

// IsSettled reports whether the session has reached a terminal decision and
// may be reused by a subsequent open.
func (s PackState) IsSettled() bool {
	return s == PackStateAccepted || s == PackStateRejected || s == PackStateExpired
}

func (s PackState) String() string {
	switch s {
	case PackStateUninitialized:
		return "UNINITIALIZED"
	case PackStatePendingDecision:
		return "PENDING_DECISION"
	case PackStateAccepted:
		return "ACCEPTED"
	case PackStateRejected:
		return "REJECTED"
	case PackStateExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// PackSession is the full-pack reservation/settlement record: one per
// (vault, user), holding a reference for every slot plus a per-slot price
// list used for sellback payouts.
type PackSession struct {
	User           Address                 `json:"user"`
	Currency       Currency                `json:"currency"`
	PaidAmount     uint64                  `json:"paid_amount"`
	CreatedAt      int64                   `json:"created_at"`
	ExpiresAt      int64                   `json:"expires_at"`
	CardKeys       [PackSlotCount]Address  `json:"card_keys"`
	State          PackState               `json:"state"`
	CommitmentHash [32]byte                `json:"commitment_hash"`
	SlotPrices     []uint64                `json:"slot_prices"`
}

// InWindow reports whether now is still inside the claim window.
// The boundary is inclusive: a decision at exactly ExpiresAt succeeds.
func (s *PackSession) InWindow(now int64) bool {
	return now <= s.ExpiresAt
}

// PackSessionLite is the lightweight session shape: only the rare-or-above
// reservations (at most MaxRareCards) are carried, with their declared
// template ids; common-tier slots are implicit in TotalSlots.
type PackSessionLite struct {
	User           Address   `json:"user"`
	Currency       Currency  `json:"currency"`
	PaidAmount     uint64    `json:"paid_amount"`
	CreatedAt      int64     `json:"created_at"`
	ExpiresAt      int64     `json:"expires_at"`
	RareCardKeys   []Address `json:"rare_card_keys"`
	RareTemplates  []uint32  `json:"rare_templates"`
	State          PackState `json:"state"`
	CommitmentHash [32]byte  `json:"commitment_hash"`
	TotalSlots     uint8     `json:"total_slots"`
	Bump           uint8     `json:"bump"`
}

// InWindow reports whether now is still inside the claim window.
func (s *PackSessionLite) InWindow(now int64) bool {
	return now <= s.ExpiresAt
}

// Reset zeroes the session back to its default reusable shape, mirroring an
// admin force-close.
func (s *PackSessionLite) Reset() {
	s.State = PackStateUninitialized
	s.Currency = CurrencyNative
	s.PaidAmount = 0
	s.CreatedAt = 0
	s.ExpiresAt = 0
	s.RareCardKeys = nil
	s.RareTemplates = nil
	s.CommitmentHash = [32]byte{}
	s.TotalSlots = PackSlotCount
}

// RepairResult is the per-item outcome of a best-effort admin repair loop.
type RepairResult struct {
	Card     Address `json:"card"`
	Released bool    `json:"released"`
	Reason   string  `json:"reason,omitempty"`
}
