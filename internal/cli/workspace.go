package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/infra/csvrecord"
	"github.com/aalvaropc/marina/internal/infra/envconfig"
	"github.com/aalvaropc/marina/internal/infra/flatfile"
	"github.com/aalvaropc/marina/internal/infra/logger"
	"github.com/aalvaropc/marina/internal/infra/workspacefinder"
	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/usecase"
)

// session is one loaded inventory plus everything needed to save it.
type session struct {
	root  string
	cfg   domain.Config
	store *inventory.Store
	codec csvrecord.Codec
	file  *flatfile.File
	log   *slog.Logger

	cleanup func() error
}

func openSession(ctx context.Context, g *globalFlags, fileArg string) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(root, g)
	if err != nil {
		return nil, err
	}

	// Logging is best effort: on failure L() is a discard logger.
	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Dir:   cfg.Paths.LogsDir,
		Debug: cfg.Debug,
	})
	log := logger.L()

	path, err := resolveDataFile(root, cfg, g.file, fileArg)
	if err != nil {
		closeLogger(cleanup)
		return nil, err
	}

	codec := csvrecord.Codec{
		OnUnknownType: func(label string) {
			log.Warn("record.type.unknown", "label", label, "fallback", domain.BoatSlip.String())
		},
	}

	s := &session{
		root:    root,
		cfg:     cfg,
		store:   inventory.New(cfg.Inventory.Capacity),
		codec:   codec,
		file:    flatfile.New(path),
		log:     log,
		cleanup: cleanup,
	}

	load := usecase.NewLoadInventory(s.store, s.codec, s.file, usecase.WithLoadLogger(log))
	if _, err := load.Execute(ctx); err != nil {
		log.Error("inventory.load.failed", "path", path, "err", err)
		s.close()
		return nil, err
	}

	if cfg.Debug && !s.store.IsSorted() {
		log.Debug("inventory.unsorted", "path", path)
	}
	return s, nil
}

// save writes the inventory back to its file.
func (s *session) save(ctx context.Context) error {
	lines, err := usecase.NewSaveInventory(s.store, s.codec, s.file).Execute(ctx)
	if err != nil {
		s.log.Error("inventory.save.failed", "path", s.file.Path(), "err", err)
		return err
	}
	s.log.Info("inventory.saved", "path", s.file.Path(), "boats", len(lines))
	return nil
}

func (s *session) close() {
	closeLogger(s.cleanup)
	s.cleanup = nil
}

func closeLogger(cleanup func() error) {
	if cleanup != nil {
		_ = cleanup()
	}
}

// loadConfig layers marina.yaml, the environment and the flags.
func loadConfig(root string, g *globalFlags) (domain.Config, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return cfg, err
	}

	cfg, err = envconfig.New().Apply(root, cfg)
	if err != nil {
		return cfg, err
	}

	if g.debug {
		cfg.Debug = true
	}

	if err := workspacefinder.Validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "cli.loadconfig",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return cfg, nil
}

// resolveWorkspaceRoot uses the flag when given, otherwise the nearest
// directory holding marina.yaml, otherwise the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return workspacefinder.NewFinder().ResolveRoot(wd)
}

// resolveDataFile picks the inventory file: positional argument, then
// --file, then marina.data_file. The first two are relative to the working
// directory, the config value to the workspace root.
func resolveDataFile(root string, cfg domain.Config, fileFlag, fileArg string) (string, error) {
	for _, p := range []string{fileArg, fileFlag} {
		if p = strings.TrimSpace(p); p != "" {
			abs, err := filepath.Abs(p)
			if err != nil {
				return "", fmt.Errorf("invalid inventory path: %w", err)
			}
			return abs, nil
		}
	}

	p := cfg.Inventory.DataFile
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p), nil
}
