package contract

// -----------------------------------------------------------------------------
// Vote Ledger & Voting Flow
// -----------------------------------------------------------------------------

// VoteCost previews what the sender would pay for `ballot` additional votes.
// Read-only: it must match exactly the cost a subsequent Vote call charges
// against the same prior state, and it never mutates the ledger.
//
// Example payload: VoteCost(strptr("ab..ef|3"))
func VoteCost(payload *string) *string {
	id, ballot := decodeVoteArgs(payload)
	mustLoadProject(id)
	if ballot == 0 {
		abortWith(errInvalidBallot)
	}
	voted := getVotes(id, getSenderAddress())
	cost := calCost(voted, u256(ballot))
	emitVoteCost(id, cost)
	return strptr(cost.Dec())
}

// Vote buys `ballot` additional votes on a project. All-or-nothing: the vote
// ledger, the project record, the pool aggregates and the currency draw
// either all commit or none do (an abort anywhere rolls back the whole
// transaction on the host).
//
// Example payload: Vote(strptr("ab..ef|3"))
func Vote(payload *string) *string {
	id, ballot := decodeVoteArgs(payload)
	prj := mustLoadProject(id)
	if ballot == 0 {
		abortWith(errInvalidBallot)
	}
	voter := getSenderAddress()

	voted := getVotes(id, voter)
	b := u256(ballot)
	cost := calCost(voted, b)

	amount := amountFor(cost, false)
	fee := amountFor(cost, true)
	net := checkedSub(amount, fee)

	// The matching weight of this ballot is the project's aggregate vote
	// count beyond the voter's own prior ballots. TotalVotes >= voted holds
	// by construction; checkedSub turns a violated invariant into an abort.
	delta := checkedMul(b, checkedSub(&prj.TotalVotes, voted))

	setVotes(id, voter, requireU128(checkedAdd(voted, b)))

	prj.SupportArea = *requireU128(checkedAdd(&prj.SupportArea, delta))
	prj.TotalVotes = *requireU128(checkedAdd(&prj.TotalVotes, b))
	prj.Grants = *requireU128(checkedAdd(&prj.Grants, net))
	saveProject(id, prj)

	pool := loadPool()
	pool.TotalSupportArea = *requireU128(checkedAdd(&pool.TotalSupportArea, delta))
	pool.TotalTax = *requireU128(checkedAdd(&pool.TotalTax, fee))
	savePool(pool)

	if err := getSDK().Draw(unitsToBalance(amount), PoolAsset); err != nil {
		abortWith(errTransferFailed)
	}
	emitVoteSucceed(id, voter, ballot)
	return strptr(cost.Dec())
}
