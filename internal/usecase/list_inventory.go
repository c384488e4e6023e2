package usecase

import (
	"iter"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
)

type ListInventory struct {
	store *inventory.Store
}

func NewListInventory(store *inventory.Store) *ListInventory {
	return &ListInventory{store: store}
}

// Execute returns a lazy, read-only view of the inventory in name order.
func (uc *ListInventory) Execute() iter.Seq[domain.Row] {
	return func(yield func(domain.Row) bool) {
		for _, b := range uc.store.All() {
			if !yield(b.Row()) {
				return
			}
		}
	}
}
