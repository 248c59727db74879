////////////////////////////////////////////////////////////////////////////////
// Quadratic Funding: deterministic matching-fund ledger for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"quadratic_funding/contract"
)

// main is left empty on purpose
func main() {
}

// ContractInit stores the caller as the round-scheduling admin. One shot.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	contract.EnsureRuntime()
	return contract.ContractInit(payload)
}

// RegisterProject creates a project record. Payload: "hexid|name" (empty id
// derives the content hash from owner+name).
//
//go:wasmexport project_register
func RegisterProject(payload *string) *string {
	contract.EnsureRuntime()
	return contract.RegisterProject(payload)
}

// GetProject is a read-only lookup. Payload: "hexid".
//
//go:wasmexport project_get
func GetProject(payload *string) *string {
	contract.EnsureRuntime()
	return contract.GetProject(payload)
}

// VoteCost previews the quadratic cost without mutating state. Payload: "hexid|ballot".
//
//go:wasmexport project_vote_cost
func VoteCost(payload *string) *string {
	contract.EnsureRuntime()
	return contract.VoteCost(payload)
}

// Vote buys additional votes on a project. Payload: "hexid|ballot".
//
//go:wasmexport project_vote
func Vote(payload *string) *string {
	contract.EnsureRuntime()
	return contract.Vote(payload)
}

// Donate adds matching funds to the pool. Payload: "amount".
//
//go:wasmexport fund_donate
func Donate(payload *string) *string {
	contract.EnsureRuntime()
	return contract.Donate(payload)
}

// EndRound settles the active round and pays out grants. Payload: "round".
//
//go:wasmexport round_end
func EndRound(payload *string) *string {
	contract.EnsureRuntime()
	return contract.EndRound(payload)
}

// AdvanceRound bumps the round counter (admin only). Payload: "round".
//
//go:wasmexport round_advance
func AdvanceRound(payload *string) *string {
	contract.EnsureRuntime()
	return contract.AdvanceRound(payload)
}
