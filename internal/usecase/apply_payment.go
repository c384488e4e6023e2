package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
)

type ApplyPayment struct {
	store *inventory.Store
}

func NewApplyPayment(store *inventory.Store) *ApplyPayment {
	return &ApplyPayment{store: store}
}

// Execute subtracts amount from the balance of the boat named name and
// returns the updated boat. A payment larger than the balance is rejected
// with a *domain.PaymentError and the balance is left untouched. Zero and
// negative amounts are accepted; a negative payment raises the balance.
func (uc *ApplyPayment) Execute(name string, amount decimal.Decimal) (domain.Boat, error) {
	name = strings.TrimSpace(name)

	i := uc.store.IndexOf(name)
	if i < 0 {
		return domain.Boat{}, fmt.Errorf("boat %q: %w", name, domain.ErrNotFound)
	}

	b := uc.store.At(i)
	if amount.GreaterThan(b.AmountOwed) {
		return b, &domain.PaymentError{Name: b.Name, Owed: b.AmountOwed, Amount: amount}
	}

	if err := uc.store.Update(i, func(b *domain.Boat) {
		b.AmountOwed = b.AmountOwed.Sub(amount)
	}); err != nil {
		return domain.Boat{}, err
	}
	return uc.store.At(i), nil
}
