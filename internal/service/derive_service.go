package service

import (
	"crypto/sha256"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// Derivation seeds. Changing any of these re-keys every existing record.
const (
	SeedVaultState           = "vault_state"
	SeedVaultAuthority       = "vault_authority"
	SeedMarketVaultState     = "market_vault_state"
	SeedMarketVaultAuthority = "market_vault_authority"
	SeedCardRecord           = "card_record"
	SeedPackSession          = "pack_session"
	SeedPackSessionLite      = "pack_session_v2"
	SeedListing              = "listing"
)

const deriveDomainTag = "mochi:derive"

// Reserve model: a record must hold a balance proportional to its packed
// size, with a fixed per-record overhead.
const (
	reserveOverheadBytes = 128
	reservePerByte       = 6960
)

// AddressRegistryImpl derives deterministic sub-record addresses under a
// fixed program identity. A derived authority has no signing key; only the
// service acts on its behalf.
type AddressRegistryImpl struct {
	programID domain.Address
}

// NewAddressRegistry creates a registry bound to the given program identity.
func NewAddressRegistry(programID domain.Address) *AddressRegistryImpl {
	return &AddressRegistryImpl{programID: programID}
}

func (r *AddressRegistryImpl) candidate(bump uint8, seeds [][]byte) domain.Address {
	h := sha256.New()
	h.Write([]byte(deriveDomainTag))
	h.Write(r.programID[:])
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	var a domain.Address
	copy(a[:], h.Sum(nil))
	return a
}

// Derive searches bumps from 255 downward and returns the first valid
// (address, bump) pair. A candidate whose leading byte is zero is rejected,
// so derivation is deterministic but not every bump is usable.
func (r *AddressRegistryImpl) Derive(seeds ...[]byte) (domain.Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		a := r.candidate(uint8(bump), seeds)
		if a[0] != 0 {
			return a, uint8(bump), nil
		}
	}
	return domain.ZeroAddress, 0, apperror.InternalError(errNoValidBump)
}

// DeriveWithBump recomputes the address for a known bump.
func (r *AddressRegistryImpl) DeriveWithBump(bump uint8, seeds ...[]byte) (domain.Address, error) {
	a := r.candidate(bump, seeds)
	if a[0] == 0 {
		return domain.ZeroAddress, apperror.InternalError(errInvalidBump)
	}
	return a, nil
}

// MinimumReserve returns the reserve balance a record of the given packed
// size must hold.
func (r *AddressRegistryImpl) MinimumReserve(size int) int64 {
	return (int64(size) + reserveOverheadBytes) * reservePerByte
}

var _ ports.AddressRegistry = (*AddressRegistryImpl)(nil)

// Derivation helpers shared by the settlement services. All return the
// canonical address for the current scheme.

func deriveVaultAuthority(reg ports.AddressRegistry, vault domain.Address) (domain.Address, uint8, error) {
	return reg.Derive([]byte(SeedVaultAuthority), vault.Bytes())
}

// deriveLegacyVaultAuthority recomputes the authority under the superseded
// marketplace scheme. Rescue operations accept either derivation.
func deriveLegacyVaultAuthority(reg ports.AddressRegistry, vault domain.Address) (domain.Address, uint8, error) {
	return reg.Derive([]byte(SeedMarketVaultAuthority), vault.Bytes())
}

func deriveCardRecord(reg ports.AddressRegistry, vault, asset domain.Address) (domain.Address, error) {
	addr, _, err := reg.Derive([]byte(SeedCardRecord), vault.Bytes(), asset.Bytes())
	return addr, err
}

func deriveSession(reg ports.AddressRegistry, vault, user domain.Address) (domain.Address, error) {
	addr, _, err := reg.Derive([]byte(SeedPackSession), vault.Bytes(), user.Bytes())
	return addr, err
}

func deriveSessionLite(reg ports.AddressRegistry, vault, user domain.Address) (domain.Address, uint8, error) {
	return reg.Derive([]byte(SeedPackSessionLite), vault.Bytes(), user.Bytes())
}

func deriveListing(reg ports.AddressRegistry, vault, asset domain.Address) (domain.Address, error) {
	addr, _, err := reg.Derive([]byte(SeedListing), vault.Bytes(), asset.Bytes())
	return addr, err
}
