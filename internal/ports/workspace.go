package ports

import "github.com/aalvaropc/marina/internal/domain"

// WorkspaceInitializer lays down a Marina workspace under spec.Root:
// marina.yaml from its template, the .marina state directory and the
// .gitignore entries. An existing marina.yaml survives unless force is set.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

// WorkspaceLocator finds the workspace root, the nearest directory at or
// above startDir holding marina.yaml.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
	// ResolveRoot is FindRoot with a bare directory as the fallback: when no
	// marina.yaml exists above startDir, startDir itself is the root.
	ResolveRoot(startDir string) (string, error)
}
