package usecase

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

type InitOption func(*InitWorkspace)

func WithInitLogger(l *slog.Logger) InitOption {
	return func(uc *InitWorkspace) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...InitOption) *InitWorkspace {
	uc := &InitWorkspace{
		initializer: initializer,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute initializes the workspace at root and returns the cleaned root it
// used. A blank root is rejected before anything touches the disk.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", &domain.OpError{
			Op:   "usecase.initworkspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	root = filepath.Clean(root)

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		uc.log.Error("workspace.init.failed", "root", root, "err", err)
		return "", err
	}
	uc.log.Info("workspace.init", "root", root, "force", force)
	return root, nil
}
