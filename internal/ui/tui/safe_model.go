package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ui/errorux"
)

// safeModel keeps a panic in the browser from tearing down the terminal. A
// panic is logged with the screen and boat on display, and the browser goes
// back to the list with an error toast.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			tm, cmd = s.recovered("tui.update", r), nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = errorux.MsgUnexpected
		}
	}()
	return s.m.View()
}

// recovered logs r and returns the model reset to the list screen.
func (s safeModel) recovered(where string, r any) safeModel {
	s.logPanic(where, r)
	s.m.scr = screenList
	s.m.active = domain.Row{}
	s.m.toast = errorux.MsgUnexpected
	return s
}

func (s safeModel) logPanic(where string, r any) {
	attrs := []any{
		"where", where,
		"screen", s.m.scr.String(),
		"boats", len(s.m.deps.Rows),
	}
	if s.m.scr == screenDetail {
		attrs = append(attrs, "boat", s.m.active.Name)
	}
	attrs = append(attrs,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	s.log.Error("panic.recovered", attrs...)
}

var _ tea.Model = (*safeModel)(nil)
