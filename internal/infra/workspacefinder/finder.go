package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ports"
)

// Finder locates a Marina workspace root by searching upward for marina.yaml.
// A directory named marina.yaml does not count.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	start, err := f.searchDir(startDir)
	if err != nil {
		return "", err
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFileName
	}

	cur := start
	for {
		if info, err := os.Stat(filepath.Join(cur, name)); err == nil && info.Mode().IsRegular() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// ResolveRoot returns the workspace root above startDir, or the directory of
// startDir itself when there is none. A bare "marina BoatData.csv" runs
// without marina.yaml.
func (f *Finder) ResolveRoot(startDir string) (string, error) {
	root, err := f.FindRoot(startDir)
	if domain.IsKind(err, domain.KindNotFound) {
		return f.searchDir(startDir)
	}
	return root, err
}

// searchDir is the absolute directory a search begins in. A file path
// searches from its directory.
func (f *Finder) searchDir(p string) (string, error) {
	if p == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: p,
			Err:  err,
		}
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
