package flatfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ports"
)

// File stores inventory records one per line in a plain text file.
type File struct {
	path string
	perm fs.FileMode
}

type Option func(*File)

// WithPerm sets the mode used when the file is created.
func WithPerm(perm fs.FileMode) Option {
	return func(f *File) { f.perm = perm }
}

func New(path string, opts ...Option) *File {
	f := &File{
		path: filepath.Clean(path),
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.InventoryFile = (*File)(nil)

func (f *File) Path() string { return f.path }

// ReadLines returns every line of the file with line endings removed, each
// cut to MaxLineBytes. Blank lines are kept; callers decide what to skip. A
// missing file is an empty inventory.
func (f *File) ReadLines(ctx context.Context) ([]string, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "flatfile.open",
			Kind: domain.KindExecution,
			Path: f.path,
			Err:  err,
		}
	}
	defer fh.Close()

	var lines []string
	sc := NewLineReader(fh)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "flatfile.read",
			Kind: domain.KindExecution,
			Path: f.path,
			Err:  err,
		}
	}
	return lines, nil
}

// WriteLines replaces the file contents, one line per entry.
func (f *File) WriteLines(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "flatfile.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	// Atomic-ish write: tmp then rename.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), f.perm); err != nil {
		return &domain.OpError{
			Op:   "flatfile.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "flatfile.rename",
			Kind: domain.KindExecution,
			Path: f.path,
			Err:  err,
		}
	}
	return nil
}
