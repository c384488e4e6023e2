package tui

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ui/errorux"
)

func testRows() []domain.Row {
	return []domain.Row{
		{Name: "Alpha", Length: 20, Type: domain.BoatLand, Field: "B", AmountOwed: decimal.RequireFromString("50")},
		{Name: "Betty", Length: 30, Type: domain.BoatSlip, Field: "2", AmountOwed: decimal.RequireFromString("100")},
	}
}

func sized(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_HeaderTotals(t *testing.T) {
	m := sized(t, newModel(Deps{Rows: testRows(), Source: "BoatData.csv"}))

	v := m.View()
	assert.Contains(t, v, "BoatData.csv · 2 boats · $150.00 owed")
	assert.Contains(t, v, "Alpha")
	assert.Contains(t, v, "Betty")
}

func TestUpdate_EnterShowsDetailAndBack(t *testing.T) {
	m := sized(t, newModel(Deps{Rows: testRows(), Source: "x"}))

	m, _ = m.Update(key("enter"))
	mm, ok := m.(model)
	require.True(t, ok)
	assert.Equal(t, screenDetail, mm.scr)
	assert.Equal(t, "Alpha", mm.active.Name)
	assert.Contains(t, m.View(), "Monthly fee: $280.00")

	m, _ = m.Update(key("esc"))
	assert.Equal(t, screenList, m.(model).scr)
}

func TestUpdate_QuitFromList(t *testing.T) {
	m := sized(t, newModel(Deps{Rows: testRows()}))

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestView_Empty(t *testing.T) {
	m := sized(t, newModel(Deps{Source: "BoatData.csv"}))
	assert.Contains(t, m.View(), "No boats in inventory.")
}

func TestSafeModel_DelegatesToInner(t *testing.T) {
	s := wrapSafe(newModel(Deps{Rows: testRows()}), nil)

	next, _ := s.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	_, ok := next.(safeModel)
	require.True(t, ok)
	assert.True(t, strings.Contains(next.View(), "Betty"))
}

func TestSafeModel_RecoveredLogsScreenAndBoat(t *testing.T) {
	var buf bytes.Buffer
	m := newModel(Deps{Rows: testRows()})
	m.scr = screenDetail
	m.active = testRows()[1]

	s := wrapSafe(m, slog.New(slog.NewJSONHandler(&buf, nil))).recovered("tui.update", "boom")

	assert.Equal(t, screenList, s.m.scr)
	assert.Empty(t, s.m.active.Name)
	assert.Equal(t, errorux.MsgUnexpected, s.m.toast)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "panic.recovered", entry["msg"])
	assert.Equal(t, "tui.update", entry["where"])
	assert.Equal(t, "detail", entry["screen"])
	assert.Equal(t, "Betty", entry["boat"])
	assert.Equal(t, "boom", entry["panic"])
	assert.EqualValues(t, 2, entry["boats"])
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		row  domain.Row
		want string
	}{
		{domain.Row{Length: 20, Type: domain.BoatLand, Field: "B", AmountOwed: decimal.Zero}, "20' land bay B · owes $0.00"},
		{domain.Row{Length: 9, Type: domain.BoatStorage, Field: "4", AmountOwed: decimal.RequireFromString("1.5")}, "9' storage #4 · owes $1.50"},
		{domain.Row{Length: 12, Type: domain.BoatTrailer, Field: "TX-1", AmountOwed: decimal.Zero}, "12' trailor TX-1 · owes $0.00"},
		{domain.Row{Length: 30, Type: domain.BoatSlip, Field: "2", AmountOwed: decimal.Zero}, "30' slip #2 · owes $0.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, describe(c.row))
	}
}

func TestClampString(t *testing.T) {
	assert.Equal(t, "", clampString("abc", 0))
	assert.Equal(t, "abc", clampString("abc", 3))
	assert.Equal(t, "ab…", clampString("abc", 2))
}
