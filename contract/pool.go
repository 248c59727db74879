package contract

import "github.com/holiman/uint256"

// -----------------------------------------------------------------------------
// Donation Pool Accountant
// -----------------------------------------------------------------------------

// Donate adds matching funds to the pool. The gross amount lands in the
// lifetime audit counter, the fee share in the tax bucket and the rest in
// the distributable pool; the tokens are drawn from the sender into the
// custodial account in the same transaction.
//
// Example payload: Donate(strptr("500"))
func Donate(payload *string) *string {
	amount := decodeAmountArg(payload)
	donor := getSenderAddress()

	units := balanceToUnits(int64(amount))
	minimum := amountFor(u256(1), false)
	if !units.Gt(minimum) {
		abortWith(errDonationTooSmall)
	}

	// fee = FeeRatio per UnitsPerVote slice of the donation, truncating.
	fee := checkedMul(u256(FeeRatio), new(uint256.Int).Div(units, u256(UnitsPerVote)))

	pool := loadPool()
	pool.PreTaxSupportPool = *requireU128(checkedAdd(&pool.PreTaxSupportPool, units))
	pool.SupportPool = *requireU128(checkedAdd(&pool.SupportPool, checkedSub(units, fee)))
	pool.TotalTax = *requireU128(checkedAdd(&pool.TotalTax, fee))
	savePool(pool)

	if err := getSDK().Draw(unitsToBalance(units), PoolAsset); err != nil {
		abortWith(errTransferFailed)
	}
	emitDonation(donor, amount)
	return nil
}
