package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitrack/internal/engine"
	"habitrack/internal/models"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// row is one rendered line: either a category header or a tracker.
type row struct {
	header   bool
	title    string
	tracker  models.Tracker
	category string
}

// ListModel is the interactive tracker list.
type ListModel struct {
	svc *engine.Service

	date   time.Time
	filter engine.Filter

	rows   []row
	cursor int // index into rows; always points at a tracker row when possible

	focus  Focus
	search textinput.Model

	width  int
	height int
	err    error
}

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDone))
	pinnedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPinned))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
)

// NewListModel creates the list model positioned on today.
func NewListModel(svc *engine.Service) ListModel {
	search := textinput.New()
	search.Placeholder = "Search trackers..."
	search.CharLimit = 38

	m := ListModel{
		svc:    svc,
		date:   time.Now(),
		filter: svc.SelectedFilter(context.Background()),
		search: search,
	}
	m.refresh()
	return m
}

// refresh rebuilds the visible rows from the engine.
func (m *ListModel) refresh() {
	req := engine.ListRequest{Date: m.date, Filter: m.filter}
	if m.filter == engine.FilterSearch {
		req.Query = m.search.Value()
	}
	result := m.svc.Tasks(context.Background(), req)
	m.date = result.Date

	m.rows = m.rows[:0]
	for _, category := range result.Categories {
		m.rows = append(m.rows, row{header: true, title: category.Title})
		for _, tracker := range category.Trackers {
			m.rows = append(m.rows, row{tracker: tracker, category: category.Title})
		}
	}
	m.clampCursor()
}

func (m *ListModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	// Never rest on a header
	for m.cursor < len(m.rows)-1 && m.rows[m.cursor].header {
		m.cursor++
	}
	for m.cursor > 0 && m.rows[m.cursor].header {
		m.cursor--
	}
}

func (m *ListModel) move(delta int) {
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.rows) {
			return
		}
		if !m.rows[next].header {
			m.cursor = next
			return
		}
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m ListModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)

	case "left", "h":
		m.date = m.date.AddDate(0, 0, -1)
		m.refresh()
	case "right", "l":
		m.date = m.date.AddDate(0, 0, 1)
		m.refresh()
	case "t":
		m.date = time.Now()
		m.refresh()

	case " ", "enter":
		if tracker, ok := m.selected(); ok {
			if _, err := m.svc.ToggleCompletion(ctx, tracker.ID, m.date); err != nil {
				m.err = err
			}
			m.refresh()
		}

	case "p":
		if tracker, ok := m.selected(); ok {
			var err error
			if m.svc.IsPinned(ctx, tracker.ID) {
				err = m.svc.Unpin(ctx, tracker.ID)
			} else {
				err = m.svc.Pin(ctx, tracker.ID)
			}
			if err != nil {
				m.err = err
			}
			m.refresh()
		}

	case "f":
		m.filter = nextFilter(m.filter)
		if err := m.svc.SetSelectedFilter(ctx, m.filter); err != nil {
			m.err = err
		}
		m.refresh()

	case "/":
		m.focus = FocusSearch
		m.filter = engine.FilterSearch
		m.search.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m ListModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = FocusList
		m.search.Blur()
		m.search.SetValue("")
		m.filter = engine.FilterAll
		m.refresh()
		return m, nil
	case "enter":
		m.focus = FocusList
		m.search.Blur()
		// An empty query resets the filter to the plain list
		if strings.TrimSpace(m.search.Value()) == "" {
			m.filter = engine.FilterAll
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m ListModel) selected() (models.Tracker, bool) {
	if m.cursor < len(m.rows) && !m.rows[m.cursor].header {
		return m.rows[m.cursor].tracker, true
	}
	return models.Tracker{}, false
}

// nextFilter cycles through the non-search filters.
func nextFilter(f engine.Filter) engine.Filter {
	switch f {
	case engine.FilterAll:
		return engine.FilterToday
	case engine.FilterToday:
		return engine.FilterCompleted
	case engine.FilterCompleted:
		return engine.FilterIncomplete
	default:
		return engine.FilterAll
	}
}

// View renders the list
func (m ListModel) View() string {
	ctx := context.Background()
	var b strings.Builder

	b.WriteString(headerStyle.Render("habitrack"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · filter: %s", m.date.Format("Mon, 02 Jan 2006"), m.filter)))
	b.WriteString("\n")

	if m.focus == FocusSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to track here. Press ←/→ to change the day."))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		if r.header {
			if r.title == models.PinnedCategoryTitle {
				b.WriteString(pinnedStyle.Render("📌 " + r.title))
			} else {
				b.WriteString(headerStyle.Render(r.title))
			}
			b.WriteString("\n")
			continue
		}

		mark := "[ ]"
		style := normalStyle
		if m.svc.IsComplete(ctx, r.tracker.ID, m.date) {
			mark = "[✓]"
			style = doneStyle
		}
		if i == m.cursor {
			style = selectedStyle
		}

		line := fmt.Sprintf("  %s %s %s", mark, r.tracker.Emoji, r.tracker.Name)
		b.WriteString(style.Render(line))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d days", m.svc.CompletedDays(ctx, r.tracker.ID))))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · ←/→ day · t today · space toggle · p pin · f filter · / search · q quit"))
	b.WriteString("\n")

	return b.String()
}
