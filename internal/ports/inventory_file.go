package ports

import "context"

// InventoryFile persists the inventory as formatted record lines.
type InventoryFile interface {
	// ReadLines returns the stored lines. A missing file yields no lines and
	// no error.
	ReadLines(ctx context.Context) ([]string, error)
	// WriteLines replaces the stored lines.
	WriteLines(ctx context.Context, lines []string) error
	// Path identifies the backing file (for logs and messages).
	Path() string
}
