package contract

import (
	"math"

	"github.com/holiman/uint256"
)

// The ledger computes in 256-bit registers but stores 128-bit quantities.
// Every checked op aborts the transaction instead of wrapping; requireU128
// rejects results that would not fit the ledger's field width.

func u256(v uint64) *uint256.Int { return uint256.NewInt(v) }

// requireU128 aborts when a value leaves the 128-bit ledger domain.
func requireU128(v *uint256.Int) *uint256.Int {
	if v.BitLen() > 128 {
		abortWith(errArithmeticOverflow)
	}
	return v
}

func checkedAdd(a, b *uint256.Int) *uint256.Int {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		abortWith(errArithmeticOverflow)
	}
	return sum
}

// checkedSub turns impossible-state underflow into a hard abort rather than
// a silent wraparound.
func checkedSub(a, b *uint256.Int) *uint256.Int {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		abortWith(errArithmeticOverflow)
	}
	return diff
}

func checkedMul(a, b *uint256.Int) *uint256.Int {
	prod, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		abortWith(errArithmeticOverflow)
	}
	return prod
}

// calCost prices `ballot` additional votes for a voter who already holds
// `prior` cumulative votes on the project:
//
//	cost = ballot*(ballot+1)/2 + ballot*prior
//
// the closed form of summing marginal prices prior+1 .. prior+ballot.
// Pure function, monotonic in both arguments.
func calCost(prior, ballot *uint256.Int) *uint256.Int {
	points := checkedMul(ballot, checkedAdd(ballot, u256(1)))
	points.Rsh(points, 1)
	points = checkedAdd(points, checkedMul(ballot, prior))
	return requireU128(points)
}

// amountFor scales a unit cost into native currency. The non-fee amount uses
// the full vote unit, the fee amount uses the fee ratio (5 per 100 units).
func amountFor(cost *uint256.Int, isFee bool) *uint256.Int {
	scale := UnitsPerVote
	if isFee {
		scale = FeeRatio
	}
	amt := checkedMul(cost, u256(UnitPrice))
	amt = checkedMul(amt, u256(scale))
	return requireU128(amt)
}

// unitsToBalance converts internal units into the host's int64 balance type,
// aborting when the value does not fit.
func unitsToBalance(v *uint256.Int) int64 {
	if !v.IsUint64() || v.Uint64() > math.MaxInt64 {
		abortWith(errArithmeticOverflow)
	}
	return int64(v.Uint64())
}

// balanceToUnits maps a native amount into ledger units.
func balanceToUnits(v int64) *uint256.Int {
	if v < 0 {
		abortWith(errArithmeticOverflow)
	}
	return u256(uint64(v))
}
