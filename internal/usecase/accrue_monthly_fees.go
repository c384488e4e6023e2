package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
)

type AccrueMonthlyFees struct {
	store *inventory.Store
}

func NewAccrueMonthlyFees(store *inventory.Store) *AccrueMonthlyFees {
	return &AccrueMonthlyFees{store: store}
}

// Execute adds one month of fees (length * per-foot rate) to every boat and
// returns the total billed.
func (uc *AccrueMonthlyFees) Execute() decimal.Decimal {
	total := decimal.Zero
	uc.store.UpdateAll(func(b *domain.Boat) {
		fee := b.MonthlyFee()
		b.AmountOwed = b.AmountOwed.Add(fee)
		total = total.Add(fee)
	})
	return total
}
