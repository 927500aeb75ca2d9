package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressLength is the byte length of every record-store address.
const AddressLength = 32

// Address identifies a record, account or authority in the ledger record store.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address used for unset references.
var ZeroAddress Address

// IsZero reports whether the address is all zeroes.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Equal reports whether two addresses are identical.
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

// String returns the lowercase hex encoding of the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

// ParseAddress decodes a 64-character hex string into an Address.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("decode address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// AddressFromBytes copies raw bytes into an Address.
func AddressFromBytes(raw []byte) (Address, error) {
	var a Address
	if len(raw) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}
