package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "marina.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	info, err := os.Stat(filepath.Join(tmp, ".marina", "logs"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir, stat err=%v", err)
	}
}

func TestInitializer_Init_TemplateLoadsAsDefaults(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template to match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "marina.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing marina.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read marina.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected marina.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read marina.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "marina:") {
		t.Fatalf("expected marina.yaml overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_RootIsAFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "occupied")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := NewInitializer().Init(domain.WorkspaceSpec{Root: file}, false)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got: %v", err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
