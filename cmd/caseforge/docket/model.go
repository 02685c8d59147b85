// Package docket implements the interactive TUI browser for archived cases:
// a list of case files on the left of the flow, a rendered briefing on enter.
package docket

import (
	"fmt"

	"caseforge/internal/archive"
	"caseforge/internal/brief"
	"caseforge/internal/logging"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
)

// item adapts an archive record to the bubbles list.
type item struct {
	rec *archive.Record
}

func (i item) Title() string { return i.rec.Case.Title }

func (i item) Description() string {
	return fmt.Sprintf("%s · difficulty %.2f · %d witnesses · %d evidence · seed %d",
		i.rec.Case.Type, i.rec.Case.Difficulty,
		len(i.rec.Case.Witnesses), len(i.rec.Case.Evidence), i.rec.Seed)
}

func (i item) FilterValue() string {
	return i.rec.Case.Title + " " + string(i.rec.Case.Type)
}

// viewMode determines which pane is focused.
type viewMode int

const (
	listView viewMode = iota
	briefView
)

// Model is the docket TUI state.
type Model struct {
	list     list.Model
	viewport viewport.Model
	mode     viewMode
	width    int
	height   int
	err      error
}

// New builds the docket model over a set of archived cases.
func New(records []*archive.Record) Model {
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = item{rec: rec}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Case Docket"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return Model{list: l, mode: listView}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case listView:
			// Don't intercept keys while the list filter is typing.
			if m.list.FilterState() == list.Filtering {
				break
			}
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter":
				if it, ok := m.list.SelectedItem().(item); ok {
					m.openBrief(it.rec)
					return m, nil
				}
			}
		case briefView:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "backspace":
				m.mode = listView
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// openBrief renders the selected case into the viewport.
func (m *Model) openBrief(rec *archive.Record) {
	md := brief.Markdown(&rec.Case)

	width := m.width - 2
	if width < 20 {
		width = 80
	}
	rendered := md
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, rerr := renderer.Render(md); rerr == nil {
			rendered = out
		}
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
	m.mode = briefView
	logging.Get(logging.CategoryDocket).Debug("opened brief for case %s", rec.ID)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return "docket error: " + m.err.Error()
	}
	switch m.mode {
	case briefView:
		header := titleStyle.Render("Case Briefing")
		help := helpStyle.Render("↑/↓ scroll · esc back · q quit")
		return header + "\n" + m.viewport.View() + "\n" + help
	default:
		return m.list.View() + "\n" + helpStyle.Render("enter open · / filter · q quit")
	}
}

// Run loads the archive and starts the docket program.
func Run(store *archive.Store, limit int) error {
	records, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("failed to load docket: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("archive is empty; generate with --save first")
	}

	p := tea.NewProgram(New(records), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("docket terminated: %w", err)
	}
	return nil
}
