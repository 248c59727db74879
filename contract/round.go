package contract

import "github.com/holiman/uint256"

// -----------------------------------------------------------------------------
// Round Settlement Engine
// -----------------------------------------------------------------------------

// EndRound settles the active round: every project on record receives a pool
// share proportional to its accrued support area (multiply before divide,
// truncating), then its outstanding grants are paid to the owner. One logical
// batch; a refused payout anywhere aborts the whole sweep.
//
// The round counter, SupportPool and TotalSupportArea are left untouched —
// the reference behavior; the external scheduler advances rounds via
// AdvanceRound and is responsible for not settling the same pool twice.
//
// Example payload: EndRound(strptr("1"))
func EndRound(payload *string) *string {
	round := decodeRoundArg(payload)
	if round != currentRound() {
		abortWith(errInvalidRound)
	}

	pool := loadPool()
	ids := listProjectIds()
	for _, id := range ids {
		prj := mustLoadProject(id)

		if !pool.TotalSupportArea.IsZero() {
			share := checkedMul(&prj.SupportArea, &pool.SupportPool)
			share = new(uint256.Int).Div(share, &pool.TotalSupportArea)
			prj.Grants = *requireU128(checkedAdd(&prj.Grants, share))
		}

		// Pay the balance not yet withdrawn; Withdrew catches up to Grants
		// so a repeated settlement cannot double-pay.
		outstanding := checkedSub(&prj.Grants, &prj.Withdrew)
		if !outstanding.IsZero() {
			if err := getSDK().Transfer(prj.Owner, unitsToBalance(outstanding), PoolAsset); err != nil {
				abortWith(errTransferFailed)
			}
			prj.Withdrew.Set(&prj.Grants)
		}
		saveProject(id, prj)
	}

	emitRoundEnded(round, len(ids))
	return nil
}

// AdvanceRound bumps the round counter to exactly current+1. Admin only;
// round scheduling lives outside the ledger.
//
// Example payload: AdvanceRound(strptr("2"))
func AdvanceRound(payload *string) *string {
	requireAdmin()
	round := decodeRoundArg(payload)
	if round != currentRound()+1 {
		abortWith(errInvalidRound)
	}
	setRound(round)
	emitRoundAdvanced(round)
	return nil
}
