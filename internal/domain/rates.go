package domain

import "github.com/shopspring/decimal"

// Per-foot monthly rates.
var (
	RateSlip    = decimal.RequireFromString("12.50")
	RateLand    = decimal.RequireFromString("14.00")
	RateTrailer = decimal.RequireFromString("25.00")
	RateStorage = decimal.RequireFromString("11.20")
)

// MonthlyRate returns the per-foot monthly rate for t. Unknown types bill nothing.
func MonthlyRate(t BoatType) decimal.Decimal {
	switch t {
	case BoatSlip:
		return RateSlip
	case BoatLand:
		return RateLand
	case BoatTrailer:
		return RateTrailer
	case BoatStorage:
		return RateStorage
	default:
		return decimal.Zero
	}
}
