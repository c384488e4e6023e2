package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NoBuildInfoUsesLinkerValues(t *testing.T) {
	assert.Equal(t, Info{Version: "dev", Commit: "none", Date: "unknown"}, resolve(nil))
}

func TestResolve_FillsFromModuleAndVCS(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := resolve(bi)

	assert.Equal(t, Info{Version: "v1.2.0", Commit: "0123456789ab-dirty", Date: "2026-10-01T12:00:00Z"}, got)
	assert.Equal(t, "marina v1.2.0 (commit=0123456789ab-dirty, date=2026-10-01T12:00:00Z)", got.String())
}

func TestResolve_LinkerValuesWin(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })
	Version, Commit = "v2.0.0", "abc1234"

	got := resolve(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffffffff"}},
	})

	assert.Equal(t, "v2.0.0", got.Version)
	assert.Equal(t, "abc1234", got.Commit)
	assert.Equal(t, "unknown", got.Date)
}
