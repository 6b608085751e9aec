package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rockjump/internal/storage"
)

// History layout constants
const (
	maxSessions = 100 // Max sessions to load
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model listing past play sessions.
type HistoryModel struct {
	gameID   string
	title    string
	sessions []storage.Session
	totals   storage.Totals
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads the sessions of gameID from store.
func NewHistoryModel(store *storage.Store, gameID, title string, width, height int) HistoryModel {
	m := HistoryModel{
		gameID: gameID,
		title:  title,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if store != nil {
		m.sessions, m.loadErr = store.RecentSessions(gameID, maxSessions)
		if m.loadErr == nil {
			m.totals, m.loadErr = store.Totals(gameID)
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Frames", Width: 8},
		{Title: "Jumps", Width: 7},
		{Title: "Wraps", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, totals and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = sessionRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// sessionRow formats one session for the table.
func sessionRow(s storage.Session) table.Row {
	return table.Row{
		fmt.Sprintf("%d", s.ID),
		s.Player,
		fmt.Sprintf("%d", s.Frames),
		fmt.Sprintf("%d", s.Jumps),
		fmt.Sprintf("%d", s.Wraps),
		s.Duration.Round(time.Second).String(),
		s.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("HISTORY - "+m.title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	// Totals
	totalsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(totalsStyle.Render(fmt.Sprintf("%d sessions, %d frames, %d jumps, %d wraps, %s played",
		m.totals.Sessions, m.totals.Frames, m.totals.Jumps, m.totals.Wraps, m.totals.Duration.Round(time.Second))))
	b.WriteString("\n")

	// Help bar
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	}
	if len(m.sessions) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to start one!")
	}

	return m.table.View()
}

// Sessions returns the loaded sessions.
func (m HistoryModel) Sessions() []storage.Session {
	return m.sessions
}

// RunHistory runs the history browser until the user quits.
func RunHistory(store *storage.Store, gameID, title string, width, height int) error {
	model := NewHistoryModel(store, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
