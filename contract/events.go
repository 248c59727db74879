package contract

import (
	"fmt"

	"github.com/holiman/uint256"

	"quadratic_funding/sdk"
)

// Events are terse pipe-delimited log lines so indexers can follow the ledger
// without scanning storage diffs. Mutations always land before the line is
// emitted.

// emitInitEvent marks the one-shot initialization with the admin address.
func emitInitEvent(admin string) {
	getSDK().Log(fmt.Sprintf("in|by:%s", admin))
}

// emitProjectRegistered pings explorers about a fresh project.
func emitProjectRegistered(id ProjectId, owner sdk.Address) {
	getSDK().Log(fmt.Sprintf("pr|id:%s|by:%s", id.String(), owner.String()))
}

// emitVoteCost answers read-only cost previews through the log channel.
func emitVoteCost(id ProjectId, cost *uint256.Int) {
	getSDK().Log(fmt.Sprintf("vc|id:%s|c:%s", id.String(), cost.Dec()))
}

// emitVoteSucceed includes the raw ballot so quorum math can be replayed from logs only.
func emitVoteSucceed(id ProjectId, voter sdk.Address, ballot uint64) {
	getSDK().Log(fmt.Sprintf("vs|id:%s|by:%s|b:%d", id.String(), voter.String(), ballot))
}

// emitDonation traces pool top-ups with the gross amount.
func emitDonation(donor sdk.Address, amount uint64) {
	getSDK().Log(fmt.Sprintf("df|by:%s|am:%d", donor.String(), amount))
}

// emitRoundEnded records a settlement sweep and how many projects it touched.
func emitRoundEnded(round uint64, projects int) {
	getSDK().Log(fmt.Sprintf("re|r:%d|n:%d", round, projects))
}

// emitRoundAdvanced logs the privileged round bump.
func emitRoundAdvanced(round uint64) {
	getSDK().Log(fmt.Sprintf("ra|r:%d", round))
}
