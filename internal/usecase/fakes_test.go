package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/marina/internal/infra/csvrecord"
	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/ports"
)

// memFile is an in-memory ports.InventoryFile.
type memFile struct {
	lines    []string
	written  [][]string
	readErr  error
	writeErr error
}

func (f *memFile) ReadLines(_ context.Context) ([]string, error) {
	return f.lines, f.readErr
}

func (f *memFile) WriteLines(_ context.Context, lines []string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, lines)
	f.lines = lines
	return nil
}

func (f *memFile) Path() string { return "mem://BoatData.csv" }

var _ ports.InventoryFile = (*memFile)(nil)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newStore(t *testing.T, capacity int, lines ...string) *inventory.Store {
	t.Helper()
	s := inventory.New(capacity)
	add := NewAddBoat(s, csvrecord.NewCodec())
	for _, l := range lines {
		_, err := add.Execute(l)
		require.NoError(t, err, l)
	}
	return s
}

func owed(t *testing.T, s *inventory.Store, name string) decimal.Decimal {
	t.Helper()
	b, ok := s.FindByName(name)
	require.True(t, ok, "boat %q missing", name)
	return b.AmountOwed
}

func storeNames(s *inventory.Store) []string {
	var out []string
	for _, b := range s.All() {
		out = append(out, b.Name)
	}
	return out
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

