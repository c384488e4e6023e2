// Package envconfig overlays MARINA_* variables on a loaded configuration.
// Values come from the process environment first, then from a .env file in
// the workspace root.
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/marina/internal/domain"
)

const (
	EnvCapacity   = "MARINA_CAPACITY"
	EnvDataFile   = "MARINA_DATA_FILE"
	EnvListFormat = "MARINA_LIST_FORMAT"
	EnvDebug      = "MARINA_DEBUG"
)

// DotEnvFile is read from the workspace root when present.
const DotEnvFile = ".env"

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type Overlay struct {
	lookup LookupFunc
}

type Option func(*Overlay)

// WithLookup replaces the process environment as the first source.
func WithLookup(fn LookupFunc) Option {
	return func(o *Overlay) {
		if fn != nil {
			o.lookup = fn
		}
	}
}

func New(opts ...Option) *Overlay {
	o := &Overlay{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Apply returns cfg with any MARINA_* values applied. Variables already set
// in the environment win over the .env file.
func (o *Overlay) Apply(root string, cfg domain.Config) (domain.Config, error) {
	dotenv, err := readDotEnv(root)
	if err != nil {
		return cfg, err
	}

	get := func(key string) (string, bool) {
		if v, ok := o.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvCapacity); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, invalid(EnvCapacity, v, err)
		}
		cfg.Inventory.Capacity = n
	}
	if v, ok := get(EnvDataFile); ok && strings.TrimSpace(v) != "" {
		cfg.Inventory.DataFile = strings.TrimSpace(v)
	}
	if v, ok := get(EnvListFormat); ok && strings.TrimSpace(v) != "" {
		cfg.Display.ListFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := get(EnvDebug); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, invalid(EnvDebug, v, err)
		}
		cfg.Debug = b
	}

	return cfg, nil
}

func readDotEnv(root string) (map[string]string, error) {
	path := filepath.Join(root, DotEnvFile)
	m, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "envconfig.read",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return m, nil
}

func invalid(key, value string, err error) error {
	return &domain.OpError{
		Op:   "envconfig.apply",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s=%q: %w", key, value, errors.Join(domain.ErrInvalidConfig, err)),
	}
}
