package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventcal-io/eventcal/internal/events"
	"github.com/eventcal-io/eventcal/internal/likes"
)

// browseKeyMap defines the keyboard shortcuts for the event browser
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Search key.Binding
	Quit   key.Binding
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "like/unlike"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// BrowseModel is the interactive event browser: the list view of the
// calendar with like toggling, driven by the same liked-events set the
// likes commands use.
type BrowseModel struct {
	catalog *events.Catalog
	liked   *likes.Set

	visible   []events.Event
	cursor    int
	query     string
	searching bool
	search    textinput.Model

	lastError string
	quitting  bool
	width     int
	height    int
	styles    Styles
}

// NewBrowseModel creates a browser over catalog with likes persisted
// through liked.
func NewBrowseModel(catalog *events.Catalog, liked *likes.Set) BrowseModel {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.CharLimit = 80

	return BrowseModel{
		catalog: catalog,
		liked:   liked,
		visible: catalog.Events(),
		search:  search,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.applyQuery(m.search.Value())
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue(m.query)
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, browseKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, browseKeys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, browseKeys.Toggle):
		if m.cursor < len(m.visible) {
			id := m.visible[m.cursor].ID
			if _, err := m.liked.Toggle(id); err != nil {
				m.lastError = err.Error()
			} else {
				m.lastError = ""
			}
		}

	case key.Matches(msg, browseKeys.Search):
		m.searching = true
		m.search.SetValue(m.query)
		m.search.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *BrowseModel) applyQuery(query string) {
	m.query = query
	m.visible = m.catalog.Search(query)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Event Calendar"))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if m.query != "" {
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("filter: %q (%d events)", m.query, len(m.visible))))
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No events match."))
		b.WriteString("\n")
	}

	for i, event := range m.visible {
		heart := "  "
		if m.liked.Liked(event.ID) {
			heart = m.styles.Liked.Render("♥ ")
		}

		line := fmt.Sprintf("%s%s  %s  %s", heart, event.Date, event.Title, m.styles.Muted.Render(event.Location))
		if i == m.cursor && !m.searching {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.lastError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.lastError))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/k up · ↓/j down · space like · / search · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the browser and blocks until the user quits.
func Run(model BrowseModel) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("event browser failed: %w", err)
	}
	return nil
}
