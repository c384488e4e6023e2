// Package buildinfo reports the marina version. Version, Commit and Date are
// set with -ldflags at release time; a plain go build or go install falls
// back to the module version and VCS stamp of the binary.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved build identity.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Current resolves Info from the linker variables and the embedded build
// information.
func Current() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	vcs := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		vcs[s.Key] = s.Value
	}
	if rev := vcs["vcs.revision"]; rev != "" && info.Commit == "none" {
		info.Commit = shortRevision(rev)
		if vcs["vcs.modified"] == "true" {
			info.Commit += "-dirty"
		}
	}
	if t := vcs["vcs.time"]; t != "" && info.Date == "unknown" {
		info.Date = t
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func (i Info) String() string {
	return fmt.Sprintf("marina %s (commit=%s, date=%s)", i.Version, i.Commit, i.Date)
}

func String() string {
	return Current().String()
}
