package contract

import (
	"encoding/hex"

	"github.com/holiman/uint256"

	"quadratic_funding/sdk"
)

// ProjectId is the opaque 32-byte content hash identifying a project.
type ProjectId [32]byte

// String renders the id as lowercase hex for payloads, keys and events.
// Example payload: id.String()
func (id ProjectId) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the id is the all-zero placeholder.
func (id ProjectId) IsZero() bool {
	return id == ProjectId{}
}

// ProjectIdFromHex parses a 64-char hex string back into a ProjectId.
func ProjectIdFromHex(s string) (ProjectId, bool) {
	var id ProjectId
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(id) {
		return id, false
	}
	copy(id[:], raw)
	return id, true
}

// Project mirrors the on-chain record of a registered funding target.
// Owner, Name and Round are immutable after registration; the four
// 128-bit accumulators only ever grow.
type Project struct {
	Owner       sdk.Address
	Name        string
	Round       uint64
	TotalVotes  uint256.Int
	SupportArea uint256.Int
	Grants      uint256.Int
	Withdrew    uint256.Int
}

// PoolAccount is the process-wide donation pool singleton.
type PoolAccount struct {
	SupportPool       uint256.Int
	PreTaxSupportPool uint256.Int
	TotalTax          uint256.Int
	TotalSupportArea  uint256.Int
}

// ContractConfig holds the one-shot init data; Admin gates round advancement.
type ContractConfig struct {
	Admin sdk.Address
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
