package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteCostPreview(t *testing.T) {
	ms, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	snap := ms.Snapshot()

	asSender(mock, "hive:carol")
	res := VoteCost(strptr(id.String() + "|3"))
	require.NotNil(t, res)
	assert.Equal(t, "6", *res)
	assert.True(t, strings.HasPrefix(mock.Logs[len(mock.Logs)-1], "vc|id:"))

	// read-only: nothing changed
	assert.Equal(t, snap, ms.Snapshot())

	// and it matches exactly what the vote then charges
	cost := Vote(strptr(id.String() + "|3"))
	require.NotNil(t, cost)
	assert.Equal(t, "6", *cost)
}

func TestVoteSingleVoterFlow(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	asSender(mock, "hive:carol")
	Vote(strptr(id.String() + "|3"))

	prj := loadProject(id)
	assert.Equal(t, uint64(3), prj.TotalVotes.Uint64())
	// the only voter gets no matching weight from their own ballots
	assert.True(t, prj.SupportArea.IsZero())
	// net of 5% fee: 600 - 30
	assert.Equal(t, uint64(570), prj.Grants.Uint64())
	assert.Equal(t, uint64(3), getVotes(id, "hive:carol").Uint64())

	pool := loadPool()
	assert.True(t, pool.TotalSupportArea.IsZero())
	assert.Equal(t, uint64(30), pool.TotalTax.Uint64())
	assert.True(t, pool.SupportPool.IsZero())

	require.Len(t, mock.Draws, 1)
	assert.Equal(t, int64(600), mock.Draws[0].Amount)
	assert.True(t, strings.HasPrefix(mock.Logs[len(mock.Logs)-1], "vs|id:"))

	// second purchase is priced against the cumulative prior
	Vote(strptr(id.String() + "|3"))
	prj = loadProject(id)
	assert.Equal(t, uint64(6), prj.TotalVotes.Uint64())
	assert.Equal(t, uint64(6), getVotes(id, "hive:carol").Uint64())
	// cost 15 -> amount 1500, fee 75, net 1425; grants 570+1425
	assert.Equal(t, uint64(1995), prj.Grants.Uint64())
	require.Len(t, mock.Draws, 2)
	assert.Equal(t, int64(1500), mock.Draws[1].Amount)
}

func TestVoteSupportAreaCrossVoterWeight(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	voteAs(t, mock, "hive:carol", id, "1")
	voteAs(t, mock, "hive:dave", id, "2")
	voteAs(t, mock, "hive:erin", id, "3")

	prj := loadProject(id)
	assert.Equal(t, uint64(6), prj.TotalVotes.Uint64())
	// 1*0 + 2*1 + 3*3
	assert.Equal(t, uint64(11), prj.SupportArea.Uint64())
	assert.Equal(t, uint64(11), loadPool().TotalSupportArea.Uint64())
}

// The per-ballot weight is (project total - voter's own prior), which makes
// the accumulator the sum of cross-voter ballot products: permuting the vote
// order changes neither total_votes nor support_area.
func TestVoteSupportAreaPermutationInvariant(t *testing.T) {
	type cast struct{ voter, ballot string }
	orders := [][]cast{
		{{"hive:carol", "1"}, {"hive:dave", "2"}, {"hive:erin", "3"}},
		{{"hive:erin", "3"}, {"hive:dave", "2"}, {"hive:carol", "1"}},
		{{"hive:dave", "2"}, {"hive:erin", "3"}, {"hive:carol", "1"}},
		// repeat voter split across others' activity
		{{"hive:carol", "1"}, {"hive:erin", "3"}, {"hive:carol", "2"}, {"hive:dave", "2"}},
		{{"hive:carol", "3"}, {"hive:dave", "2"}, {"hive:erin", "3"}},
	}
	// first three permute ballots {1,2,3}: cross products 1*2+1*3+2*3 = 11
	// last two permute carol 3 / dave 2 / erin 3: 3*2+3*3+2*3 = 21
	wantArea := []uint64{11, 11, 11, 21, 21}
	wantVotes := []uint64{6, 6, 6, 8, 8}

	for i, order := range orders {
		_, mock := setupContract()
		id := registerAs(t, mock, "hive:alice", "clean water")
		for _, c := range order {
			voteAs(t, mock, c.voter, id, c.ballot)
		}
		prj := loadProject(id)
		assert.Equal(t, wantVotes[i], prj.TotalVotes.Uint64(), "order %d", i)
		assert.Equal(t, wantArea[i], prj.SupportArea.Uint64(), "order %d", i)
	}
}

func TestVoteFailuresLeaveStateUntouched(t *testing.T) {
	ms, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	voteAs(t, mock, "hive:carol", id, "2")
	snap := ms.Snapshot()

	missing := DeriveProjectId("hive:nobody", "missing")
	expectAbort(t, errProjectNotExist, func() {
		Vote(strptr(missing.String() + "|1"))
	})
	assert.Equal(t, snap, ms.Snapshot())

	expectAbort(t, errInvalidBallot, func() {
		Vote(strptr(id.String() + "|0"))
	})
	assert.Equal(t, snap, ms.Snapshot())

	mock.FailDraw = true
	expectAbort(t, errTransferFailed, func() {
		Vote(strptr(id.String() + "|5"))
	})
	mock.FailDraw = false
	assert.Equal(t, snap, ms.Snapshot())
}

// After any mix of operations the running aggregates must agree with the
// per-project and per-voter records.
func TestLedgerAggregateConsistency(t *testing.T) {
	_, mock := setupContract()

	ids := []ProjectId{
		registerAs(t, mock, "hive:alice", "water"),
		registerAs(t, mock, "hive:bob", "soil"),
		registerAs(t, mock, "hive:alice", "air"),
	}
	voters := []string{"hive:carol", "hive:dave", "hive:erin"}
	ballots := []string{"1", "2", "3", "4"}

	k := 0
	for _, id := range ids {
		for _, v := range voters {
			voteAs(t, mock, v, id, ballots[k%len(ballots)])
			k++
		}
	}
	asSender(mock, "hive:whale")
	Donate(strptr("1000"))

	pool := loadPool()
	areaSum := u256(0)
	for _, id := range ids {
		prj := loadProject(id)
		areaSum = checkedAdd(areaSum, &prj.SupportArea)

		votesSum := u256(0)
		for _, v := range voters {
			votesSum = checkedAdd(votesSum, getVotes(id, AddressFromString(v)))
		}
		assert.Equal(t, prj.TotalVotes, *votesSum, "votes sum for %s", id)
	}
	assert.Equal(t, pool.TotalSupportArea, *areaSum)
}
