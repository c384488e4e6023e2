package usecase

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
)

type FindBoat struct {
	store *inventory.Store
}

func NewFindBoat(store *inventory.Store) *FindBoat {
	return &FindBoat{store: store}
}

func (uc *FindBoat) Execute(name string) (domain.Boat, error) {
	name = strings.TrimSpace(name)

	b, ok := uc.store.FindByName(name)
	if !ok {
		return domain.Boat{}, fmt.Errorf("boat %q: %w", name, domain.ErrNotFound)
	}
	return b, nil
}
