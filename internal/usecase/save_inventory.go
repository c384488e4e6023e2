package usecase

import (
	"context"

	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/ports"
)

type SaveInventory struct {
	store *inventory.Store
	codec ports.RecordCodec
	file  ports.InventoryFile
}

func NewSaveInventory(store *inventory.Store, codec ports.RecordCodec, file ports.InventoryFile) *SaveInventory {
	return &SaveInventory{store: store, codec: codec, file: file}
}

// Execute writes the inventory and returns the lines written.
func (uc *SaveInventory) Execute(ctx context.Context) ([]string, error) {
	lines := Serialize(uc.store, uc.codec)
	if err := uc.file.WriteLines(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Serialize formats every boat in store order.
func Serialize(store *inventory.Store, codec ports.RecordCodec) []string {
	lines := make([]string, 0, store.Len())
	for _, b := range store.All() {
		lines = append(lines, codec.Format(b))
	}
	return lines
}
