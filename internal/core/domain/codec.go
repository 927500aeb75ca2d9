package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
)

// Records persist as fixed-width, little-endian byte blobs prefixed with an
// 8-byte schema tag. Offsets are load-bearing: the vault migration rewrites a
// record field-by-field at these positions, so the layout must stay
// bit-reproducible across implementations.

// ErrBadRecord reports that stored bytes failed strict schema validation.
// Admin repair paths catch it and substitute a reconstructed default instead
// of failing the call.
var ErrBadRecord = errors.New("malformed record")

// RecordTag is the 8-byte schema discriminator prefixed to every record.
type RecordTag [8]byte

func newRecordTag(name string) RecordTag {
	h := sha256.Sum256([]byte(name))
	var t RecordTag
	copy(t[:], h[:8])
	return t
}

var (
	VaultConfigTag     = newRecordTag("record:vault_config")
	CardRecordTag      = newRecordTag("record:card_record")
	PackSessionTag     = newRecordTag("record:pack_session")
	PackSessionLiteTag = newRecordTag("record:pack_session_v2")
	ListingTag         = newRecordTag("record:listing")
)

// Packed record sizes, tag included.
const (
	recordTagSize = 8

	VaultConfigPackedSize = recordTagSize + 207
	// VaultConfigLegacyPackedSize is the pre-reward layout, which ends after
	// the payment-token mint option, the authority bump and 7 padding bytes.
	VaultConfigLegacyPackedSize = recordTagSize + 166
	CardRecordPackedSize      = recordTagSize + 102
	PackSessionPackedSize     = recordTagSize + 534
	PackSessionLitePackedSize = recordTagSize + 208
	ListingPackedSize         = recordTagSize + 138
)

// checkRecord validates the tag and exact length of a packed record.
func checkRecord(data []byte, tag RecordTag, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: length %d, want %d", ErrBadRecord, len(data), size)
	}
	var got RecordTag
	copy(got[:], data[:recordTagSize])
	if got != tag {
		return fmt.Errorf("%w: schema tag mismatch", ErrBadRecord)
	}
	return nil
}

func putAddress(buf []byte, off int, a Address) int {
	copy(buf[off:off+AddressLength], a[:])
	return off + AddressLength
}

func getAddress(buf []byte, off int) (Address, int) {
	var a Address
	copy(a[:], buf[off:off+AddressLength])
	return a, off + AddressLength
}

func putOptionalAddress(buf []byte, off int, a *Address) int {
	if a != nil {
		buf[off] = 1
		copy(buf[off+1:off+1+AddressLength], a[:])
	}
	return off + 1 + AddressLength
}

func getOptionalAddress(buf []byte, off int) (*Address, int, error) {
	next := off + 1 + AddressLength
	switch buf[off] {
	case 0:
		return nil, next, nil
	case 1:
		var a Address
		copy(a[:], buf[off+1:off+1+AddressLength])
		return &a, next, nil
	default:
		return nil, next, fmt.Errorf("%w: invalid option flag %d", ErrBadRecord, buf[off])
	}
}

// Pack serializes the vault configuration. Every byte position is
// deterministic; unset optional fields still occupy their full width.
func (v *VaultConfig) Pack() []byte {
	buf := make([]byte, VaultConfigPackedSize)
	copy(buf[:recordTagSize], VaultConfigTag[:])
	off := recordTagSize
	off = putAddress(buf, off, v.Admin)
	off = putAddress(buf, off, v.CustodyAuthority)
	binary.LittleEndian.PutUint64(buf[off:], v.PackPriceNative)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], v.PackPriceToken)
	off += 8
	binary.LittleEndian.PutUint16(buf[off:], v.BuybackBps)
	off += 2
	binary.LittleEndian.PutUint64(buf[off:], uint64(v.ClaimWindowSeconds))
	off += 8
	binary.LittleEndian.PutUint16(buf[off:], v.MarketFeeBps)
	off += 2
	off = putOptionalAddress(buf, off, v.Collection)
	off = putOptionalAddress(buf, off, v.PaymentTokenMint)
	off = putOptionalAddress(buf, off, v.RewardMint)
	binary.LittleEndian.PutUint64(buf[off:], v.RewardPerPack)
	off += 8
	buf[off] = v.AuthorityBump
	// trailing 7 bytes stay zero (padding)
	return buf
}

// UnpackVaultConfig deserializes a packed vault configuration.
func UnpackVaultConfig(data []byte) (*VaultConfig, error) {
	if err := checkRecord(data, VaultConfigTag, VaultConfigPackedSize); err != nil {
		return nil, err
	}
	v := &VaultConfig{}
	off := recordTagSize
	v.Admin, off = getAddress(data, off)
	v.CustodyAuthority, off = getAddress(data, off)
	v.PackPriceNative = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.PackPriceToken = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.BuybackBps = binary.LittleEndian.Uint16(data[off:])
	off += 2
	v.ClaimWindowSeconds = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	v.MarketFeeBps = binary.LittleEndian.Uint16(data[off:])
	off += 2
	var err error
	if v.Collection, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	if v.PaymentTokenMint, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	if v.RewardMint, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	v.RewardPerPack = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.AuthorityBump = data[off]
	return v, nil
}

// UnpackVaultConfigLegacy deserializes the pre-reward vault layout. The
// storage migration reads records written under it and rewrites them in the
// current layout with reward fields zeroed.
func UnpackVaultConfigLegacy(data []byte) (*VaultConfig, error) {
	if err := checkRecord(data, VaultConfigTag, VaultConfigLegacyPackedSize); err != nil {
		return nil, err
	}
	v := &VaultConfig{}
	off := recordTagSize
	v.Admin, off = getAddress(data, off)
	v.CustodyAuthority, off = getAddress(data, off)
	v.PackPriceNative = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.PackPriceToken = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.BuybackBps = binary.LittleEndian.Uint16(data[off:])
	off += 2
	v.ClaimWindowSeconds = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	v.MarketFeeBps = binary.LittleEndian.Uint16(data[off:])
	off += 2
	var err error
	if v.Collection, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	if v.PaymentTokenMint, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	v.AuthorityBump = data[off]
	return v, nil
}

// Pack serializes a card record.
func (c *CardRecord) Pack() []byte {
	buf := make([]byte, CardRecordPackedSize)
	copy(buf[:recordTagSize], CardRecordTag[:])
	off := recordTagSize
	off = putAddress(buf, off, c.Vault)
	off = putAddress(buf, off, c.Asset)
	binary.LittleEndian.PutUint32(buf[off:], c.TemplateID)
	off += 4
	buf[off] = uint8(c.Rarity)
	off++
	buf[off] = uint8(c.Status)
	off++
	putAddress(buf, off, c.Owner)
	return buf
}

// UnpackCardRecord deserializes a packed card record, strictly validating the
// enum fields.
func UnpackCardRecord(data []byte) (*CardRecord, error) {
	if err := checkRecord(data, CardRecordTag, CardRecordPackedSize); err != nil {
		return nil, err
	}
	c := &CardRecord{}
	off := recordTagSize
	c.Vault, off = getAddress(data, off)
	c.Asset, off = getAddress(data, off)
	c.TemplateID = binary.LittleEndian.Uint32(data[off:])
	off += 4
	c.Rarity = Rarity(data[off])
	off++
	c.Status = CardStatus(data[off])
	off++
	c.Owner, _ = getAddress(data, off)
	if !c.Rarity.IsValid() {
		return nil, fmt.Errorf("%w: invalid rarity %d", ErrBadRecord, c.Rarity)
	}
	if !c.Status.IsValid() {
		return nil, fmt.Errorf("%w: invalid card status %d", ErrBadRecord, c.Status)
	}
	return c, nil
}

// Pack serializes a full-pack session. The slot-price vector is
// length-prefixed and padded to its fixed capacity.
func (s *PackSession) Pack() ([]byte, error) {
	if len(s.SlotPrices) > PackSlotCount {
		return nil, fmt.Errorf("%w: %d slot prices, max %d", ErrBadRecord, len(s.SlotPrices), PackSlotCount)
	}
	buf := make([]byte, PackSessionPackedSize)
	copy(buf[:recordTagSize], PackSessionTag[:])
	off := recordTagSize
	off = putAddress(buf, off, s.User)
	buf[off] = uint8(s.Currency)
	off++
	binary.LittleEndian.PutUint64(buf[off:], s.PaidAmount)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(s.CreatedAt))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(s.ExpiresAt))
	off += 8
	for _, key := range s.CardKeys {
		off = putAddress(buf, off, key)
	}
	buf[off] = uint8(s.State)
	off++
	copy(buf[off:off+32], s.CommitmentHash[:])
	off += 32
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(s.SlotPrices)))
	off += 4
	for _, p := range s.SlotPrices {
		binary.LittleEndian.PutUint64(buf[off:], p)
		off += 8
	}
	return buf, nil
}

// UnpackPackSession deserializes a packed full-pack session.
func UnpackPackSession(data []byte) (*PackSession, error) {
	if err := checkRecord(data, PackSessionTag, PackSessionPackedSize); err != nil {
		return nil, err
	}
	s := &PackSession{}
	off := recordTagSize
	s.User, off = getAddress(data, off)
	s.Currency = Currency(data[off])
	off++
	s.PaidAmount = binary.LittleEndian.Uint64(data[off:])
	off += 8
	s.CreatedAt = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	s.ExpiresAt = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	for i := range s.CardKeys {
		s.CardKeys[i], off = getAddress(data, off)
	}
	s.State = PackState(data[off])
	off++
	copy(s.CommitmentHash[:], data[off:off+32])
	off += 32
	n := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if n > PackSlotCount {
		return nil, fmt.Errorf("%w: %d slot prices, max %d", ErrBadRecord, n, PackSlotCount)
	}
	s.SlotPrices = make([]uint64, n)
	for i := range s.SlotPrices {
		s.SlotPrices[i] = binary.LittleEndian.Uint64(data[off:])
		off += 8
	}
	if !s.Currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %d", ErrBadRecord, s.Currency)
	}
	if !s.State.IsValid() {
		return nil, fmt.Errorf("%w: invalid pack state %d", ErrBadRecord, s.State)
	}
	return s, nil
}

// Pack serializes a lightweight session.
func (s *PackSessionLite) Pack() ([]byte, error) {
	if len(s.RareCardKeys) > MaxRareCards {
		return nil, fmt.Errorf("%w: %d rare keys, max %d", ErrBadRecord, len(s.RareCardKeys), MaxRareCards)
	}
	if len(s.RareTemplates) > MaxRareCards {
		return nil, fmt.Errorf("%w: %d rare templates, max %d", ErrBadRecord, len(s.RareTemplates), MaxRareCards)
	}
	buf := make([]byte, PackSessionLitePackedSize)
	copy(buf[:recordTagSize], PackSessionLiteTag[:])
	off := recordTagSize
	off = putAddress(buf, off, s.User)
	buf[off] = uint8(s.Currency)
	off++
	binary.LittleEndian.PutUint64(buf[off:], s.PaidAmount)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(s.CreatedAt))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(s.ExpiresAt))
	off += 8
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(s.RareCardKeys)))
	off += 4
	keyEnd := off + MaxRareCards*AddressLength
	for _, key := range s.RareCardKeys {
		off = putAddress(buf, off, key)
	}
	off = keyEnd
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(s.RareTemplates)))
	off += 4
	tmplEnd := off + MaxRareCards*4
	for _, tmpl := range s.RareTemplates {
		binary.LittleEndian.PutUint32(buf[off:], tmpl)
		off += 4
	}
	off = tmplEnd
	buf[off] = uint8(s.State)
	off++
	copy(buf[off:off+32], s.CommitmentHash[:])
	off += 32
	buf[off] = s.TotalSlots
	off++
	buf[off] = s.Bump
	return buf, nil
}

// UnpackPackSessionLite deserializes a packed lightweight session.
func UnpackPackSessionLite(data []byte) (*PackSessionLite, error) {
	if err := checkRecord(data, PackSessionLiteTag, PackSessionLitePackedSize); err != nil {
		return nil, err
	}
	s := &PackSessionLite{}
	off := recordTagSize
	s.User, off = getAddress(data, off)
	s.Currency = Currency(data[off])
	off++
	s.PaidAmount = binary.LittleEndian.Uint64(data[off:])
	off += 8
	s.CreatedAt = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	s.ExpiresAt = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	nKeys := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if nKeys > MaxRareCards {
		return nil, fmt.Errorf("%w: %d rare keys, max %d", ErrBadRecord, nKeys, MaxRareCards)
	}
	keyEnd := off + MaxRareCards*AddressLength
	s.RareCardKeys = make([]Address, nKeys)
	for i := range s.RareCardKeys {
		s.RareCardKeys[i], off = getAddress(data, off)
	}
	off = keyEnd
	nTmpls := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if nTmpls > MaxRareCards {
		return nil, fmt.Errorf("%w: %d rare templates, max %d", ErrBadRecord, nTmpls, MaxRareCards)
	}
	tmplEnd := off + MaxRareCards*4
	s.RareTemplates = make([]uint32, nTmpls)
	for i := range s.RareTemplates {
		s.RareTemplates[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}
	off = tmplEnd
	s.State = PackState(data[off])
	off++
	copy(s.CommitmentHash[:], data[off:off+32])
	off += 32
	s.TotalSlots = data[off]
	off++
	s.Bump = data[off]
	if !s.Currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %d", ErrBadRecord, s.Currency)
	}
	if !s.State.IsValid() {
		return nil, fmt.Errorf("%w: invalid pack state %d", ErrBadRecord, s.State)
	}
	return s, nil
}

// Pack serializes a listing.
func (l *Listing) Pack() []byte {
	buf := make([]byte, ListingPackedSize)
	copy(buf[:recordTagSize], ListingTag[:])
	off := recordTagSize
	off = putAddress(buf, off, l.Vault)
	off = putAddress(buf, off, l.Seller)
	off = putAddress(buf, off, l.Asset)
	binary.LittleEndian.PutUint64(buf[off:], l.Price)
	off += 8
	off = putOptionalAddress(buf, off, l.PaymentMint)
	buf[off] = uint8(l.Status)
	return buf
}

// UnpackListing deserializes a packed listing.
func UnpackListing(data []byte) (*Listing, error) {
	if err := checkRecord(data, ListingTag, ListingPackedSize); err != nil {
		return nil, err
	}
	l := &Listing{}
	off := recordTagSize
	l.Vault, off = getAddress(data, off)
	l.Seller, off = getAddress(data, off)
	l.Asset, off = getAddress(data, off)
	l.Price = binary.LittleEndian.Uint64(data[off:])
	off += 8
	var err error
	if l.PaymentMint, off, err = getOptionalAddress(data, off); err != nil {
		return nil, err
	}
	l.Status = ListingStatus(data[off])
	if !l.Status.IsValid() {
		return nil, fmt.Errorf("%w: invalid listing status %d", ErrBadRecord, l.Status)
	}
	return l, nil
}
