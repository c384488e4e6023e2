package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/marina/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

func (s screen) String() string {
	if s == screenDetail {
		return "detail"
	}
	return "list"
}

type boatItem struct {
	row domain.Row
}

func (b boatItem) Title() string       { return b.row.Name }
func (b boatItem) Description() string { return describe(b.row) }
func (b boatItem) FilterValue() string { return b.row.Name }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	boats  list.Model
	active domain.Row
	total  decimal.Decimal
	toast  string
}

// Run opens the read-only inventory browser and blocks until it quits.
func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := make([]list.Item, 0, len(deps.Rows))
	total := decimal.Zero
	for _, r := range deps.Rows {
		items = append(items, boatItem{row: r})
		total = total.Add(r.AmountOwed)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Boats"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenList,
		boats: l,
		total: total,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.boats.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		// Keys typed into the filter belong to the list.
		if m.boats.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "enter":
			if m.scr == screenList {
				it, ok := m.boats.SelectedItem().(boatItem)
				if !ok {
					return m, nil
				}
				m.active = it.row
				m.scr = screenDetail
				m.toast = ""
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenList {
				m.scr = screenList
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.boats, cmd = m.boats.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Marina") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s · %d boats · $%s owed",
			m.deps.Source, len(m.deps.Rows), m.total.StringFixed(2))) + "\n"

	if m.toast != "" {
		header += m.theme.Toast.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenList:
		if len(m.deps.Rows) == 0 {
			empty := m.theme.Card.Render("No boats in inventory.\n\nAdd one with marina add or the menu.")
			return wrap.Render(header + "\n" + empty + "\n" + m.theme.Help.Render("q quit"))
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter details • / filter • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.boats.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.active.Name) + "\n\n" +
				renderDetail(m.active) + "\n" +
				m.theme.Help.Render("esc/b back • q list"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
