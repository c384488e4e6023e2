package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/ports"
)

// LoadReport summarizes a load.
type LoadReport struct {
	Loaded    int
	Malformed int // lines that did not parse
	Rejected  int // lines dropped because the inventory was full
}

type LoadInventory struct {
	add  *AddBoat
	file ports.InventoryFile
	log  *slog.Logger
}

type LoadOption func(*LoadInventory)

func WithLoadLogger(l *slog.Logger) LoadOption {
	return func(uc *LoadInventory) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewLoadInventory(store *inventory.Store, codec ports.RecordCodec, file ports.InventoryFile, opts ...LoadOption) *LoadInventory {
	uc := &LoadInventory{
		add:  NewAddBoat(store, codec),
		file: file,
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the inventory file into the store. A missing file leaves
// the store empty.
func (uc *LoadInventory) Execute(ctx context.Context) (LoadReport, error) {
	lines, err := uc.file.ReadLines(ctx)
	if err != nil {
		return LoadReport{}, err
	}

	rep, err := uc.Lines(ctx, lines)
	if err != nil {
		return rep, err
	}

	uc.log.Info("inventory.load",
		"path", uc.file.Path(),
		"loaded", rep.Loaded,
		"malformed", rep.Malformed,
		"rejected", rep.Rejected,
	)
	return rep, nil
}

// Lines adds each non-blank line as a boat. Malformed lines and lines past
// capacity are skipped and counted, not returned as errors.
func (uc *LoadInventory) Lines(ctx context.Context, lines []string) (LoadReport, error) {
	var rep LoadReport
	for n, line := range lines {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, err := uc.add.Execute(line)
		switch {
		case err == nil:
			rep.Loaded++
		case errors.Is(err, domain.ErrCapacityExceeded):
			rep.Rejected++
			uc.log.Warn("inventory.load.full", "line", n+1)
		case errors.Is(err, domain.ErrParse):
			rep.Malformed++
			uc.log.Debug("inventory.load.skip", "line", n+1, "err", err)
		default:
			return rep, err
		}
	}
	return rep, nil
}
