package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/marina/internal/domain"
)

// ConfigFileName is the workspace marker and config file.
const ConfigFileName = "marina.yaml"

// ListFormats are the accepted values of marina.list_format.
var ListFormats = []string{"pretty", "csv", "json"}

// LoadConfig loads marina.yaml from the workspace root and applies it on top
// of the defaults. A missing file yields the defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Marina.Capacity != nil {
		cfg.Inventory.Capacity = *y.Marina.Capacity
	}
	if y.Marina.DataFile != "" {
		cfg.Inventory.DataFile = y.Marina.DataFile
	}
	if y.Marina.ListFormat != "" {
		cfg.Display.ListFormat = y.Marina.ListFormat
	}
	if y.Marina.LogsDir != "" {
		cfg.Paths.LogsDir = y.Marina.LogsDir
	}
	if y.Marina.Debug != nil {
		cfg.Debug = *y.Marina.Debug
	}

	if err := Validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func Validate(cfg domain.Config) error {
	if !ValidListFormat(cfg.Display.ListFormat) {
		return fmt.Errorf("list_format %q: want one of %v: %w",
			cfg.Display.ListFormat, ListFormats, domain.ErrInvalidConfig)
	}
	if cfg.Inventory.DataFile == "" {
		return fmt.Errorf("data_file is empty: %w", domain.ErrInvalidConfig)
	}
	return nil
}

func ValidListFormat(s string) bool {
	return slices.Contains(ListFormats, s)
}

type yamlConfig struct {
	Marina struct {
		Capacity   *int   `yaml:"capacity"`
		DataFile   string `yaml:"data_file"`
		ListFormat string `yaml:"list_format"`
		LogsDir    string `yaml:"logs_dir"`
		Debug      *bool  `yaml:"debug"`
	} `yaml:"marina"`
}
