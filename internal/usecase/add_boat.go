package usecase

import (
	"fmt"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/ports"
)

type AddBoat struct {
	store *inventory.Store
	codec ports.RecordCodec
}

func NewAddBoat(store *inventory.Store, codec ports.RecordCodec) *AddBoat {
	return &AddBoat{store: store, codec: codec}
}

// Execute parses raw as a record and inserts the boat in name order.
// A full inventory is reported before the line is looked at.
func (uc *AddBoat) Execute(raw string) (domain.Boat, error) {
	if uc.store.Full() {
		return domain.Boat{}, fmt.Errorf("add boat: %w", domain.ErrCapacityExceeded)
	}

	b, err := uc.codec.Parse(raw)
	if err != nil {
		return domain.Boat{}, fmt.Errorf("add boat: %w", err)
	}

	if _, err := uc.store.InsertSorted(b); err != nil {
		return domain.Boat{}, fmt.Errorf("add boat %q: %w", b.Name, err)
	}
	return b, nil
}
