package csvrecord

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	reIntPrefix    = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?[0-9]+)`)
	reAmountPrefix = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(?:[eE]([+-]?[0-9]+))?`)
)

// maxAmountExponent is the largest decimal exponent ParseAmount accepts, the
// float64 range. Anything wider would overflow atof to inf or underflow it to
// zero; both read as zero here.
const maxAmountExponent = 308

// Atoi converts the leading integer of s, atoi style: leading whitespace and
// a sign are accepted, parsing stops at the first non-digit, and input
// without digits (or out of range) yields 0.
func Atoi(s string) int {
	m := reIntPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount converts the leading decimal number of s, atof style. Input
// without a numeric prefix, or with an exponent beyond ±308, yields zero.
func ParseAmount(s string) decimal.Decimal {
	m := reAmountPrefix.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero
	}
	if m[2] == "" {
		return d
	}
	exp, err := strconv.Atoi(m[2])
	if err != nil || exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero
	}
	return d.Shift(int32(exp))
}
