package usecase

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
)

type RemoveBoat struct {
	store *inventory.Store
}

func NewRemoveBoat(store *inventory.Store) *RemoveBoat {
	return &RemoveBoat{store: store}
}

// Execute removes the first boat named name (case-insensitive) and returns it.
func (uc *RemoveBoat) Execute(name string) (domain.Boat, error) {
	name = strings.TrimSpace(name)

	i := uc.store.IndexOf(name)
	if i < 0 {
		return domain.Boat{}, fmt.Errorf("boat %q: %w", name, domain.ErrNotFound)
	}
	return uc.store.RemoveAt(i)
}
