package contract

import "quadratic_funding/sdk"

// Pricing parameters of the quadratic funding round. One abstract cost unit
// maps to UnitPrice*UnitsPerVote native tokens; FeeRatio of those per vote
// unit is skimmed into the tax bucket (5/100 = 5%).
const (
	UnitPrice    uint64 = 1
	UnitsPerVote uint64 = 100
	FeeRatio     uint64 = 5
)

// PoolAsset is the only asset the custodial pool holds.
var PoolAsset = sdk.AssetHive
