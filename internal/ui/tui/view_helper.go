package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/marina/internal/domain"
)

const maxFieldWidth = 32

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// location renders the berth the way the inventory listing labels it.
func location(r domain.Row) string {
	switch r.Type {
	case domain.BoatLand:
		return "land bay " + r.Field
	case domain.BoatTrailer:
		return "trailor " + clampString(r.Field, maxFieldWidth)
	case domain.BoatStorage:
		return "storage #" + r.Field
	default:
		return "slip #" + r.Field
	}
}

func describe(r domain.Row) string {
	return fmt.Sprintf("%d' %s · owes $%s", r.Length, location(r), r.AmountOwed.StringFixed(2))
}

func renderDetail(r domain.Row) string {
	fee := domain.MonthlyRate(r.Type).Mul(decimal.NewFromInt(int64(r.Length)))

	var b strings.Builder
	fmt.Fprintf(&b, "Length:      %d'\n", r.Length)
	fmt.Fprintf(&b, "Berth:       %s\n", location(r))
	fmt.Fprintf(&b, "Rate:        $%s per foot\n", domain.MonthlyRate(r.Type).StringFixed(2))
	fmt.Fprintf(&b, "Monthly fee: $%s\n", fee.StringFixed(2))
	fmt.Fprintf(&b, "Owes:        $%s\n", r.AmountOwed.StringFixed(2))
	return b.String()
}
