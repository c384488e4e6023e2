// Package errorux turns errors into the short messages shown by the menu,
// the CLI and the browser.
package errorux

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/marina/internal/domain"
)

const (
	MsgNotFound   = "No boat with that name"
	MsgFull       = "Boat inventory is full. Cannot add more boats."
	MsgParse      = "Could not parse boat record"
	MsgUnexpected = "Unexpected error (see logs)"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// Message returns the user-facing text for err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var pe *domain.PaymentError
	if errors.As(err, &pe) {
		return "That is more than the amount owed, $" + pe.Owed.StringFixed(2)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "workspacefinder") {
				return "Workspace not found (run marina init)"
			}
			return MsgNotFound

		case domain.KindParse:
			return MsgParse

		case domain.KindCapacityExceeded:
			return MsgFull

		case domain.KindInvalidConfig:
			return configMessage(oe)

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "flatfile.") && oe.Path != "" {
				switch oe.Op {
				case "flatfile.open", "flatfile.read":
					return "Error reading file " + oe.Path + "."
				default:
					return "Error opening file " + oe.Path + " for writing."
				}
			}
			return MsgUnexpected
		}
	}

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return MsgNotFound
	case domain.KindCapacityExceeded:
		return MsgFull
	case domain.KindParse:
		return MsgParse
	case domain.KindInvalidConfig:
		return "Invalid config"
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return MsgUnexpected
}

func configMessage(oe *domain.OpError) string {
	at := ""
	if strings.TrimSpace(oe.Path) != "" {
		at = filepath.Base(oe.Path)
	}

	msg := oe.Error()
	if looksLikeYAMLProblem(msg) {
		if at == "" {
			at = "config"
		}
		if line := extractLine(msg); line != "" {
			return "Invalid YAML at " + at + " line " + line
		}
		return "Invalid YAML at " + at
	}
	if at == "" {
		return "Invalid config"
	}
	return "Invalid config in " + at
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
