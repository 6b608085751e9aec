package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockjump/internal/audio"
	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/registry"
	"github.com/vovakirdan/rockjump/internal/storage"
)

// Options are the optional services a Model uses. Every field may be left
// zero: the game runs without history, sound or logging.
type Options struct {
	Store         *storage.Store
	Sound         *audio.SoundManager
	Logger        *log.Logger
	Player        string // Recorded with each session, "local" when empty
	ScreenshotDir string // Defaults to ~/.rockjump/screenshots
}

// backgrounder is implemented by games with a clear color.
type backgrounder interface {
	Background() string
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	started    time.Time
	status     string
	quitting   bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one frame covering the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	elapsed := frameElapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(elapsed, m.inputFrame)
	m.gameState = result.State
	if result.Has(core.EventJump) && m.opts.Sound != nil {
		m.opts.Sound.PlayJump()
	}

	// Input only lasts one frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart ends the current session and starts the scene again.
func (m *Model) restart() {
	m.saveSession()
	if err := m.game.Reset(m.config); err != nil {
		m.opts.Logger.Error("restart failed", "game", m.game.ID(), "error", err)
		m.status = "restart failed: " + err.Error()
		return
	}
	m.gameState = m.game.State()
	m.started = time.Now()
	m.lastTick = time.Time{}
	m.inputFrame.Clear()
	m.status = ""
}

// saveSession records the running session once it has at least one frame.
func (m *Model) saveSession() {
	if m.opts.Store == nil || m.gameState.Frames == 0 {
		return
	}

	sess := storage.Session{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Frames:   m.gameState.Frames,
		Jumps:    m.gameState.Jumps,
		Wraps:    m.gameState.Wraps,
		Duration: time.Since(m.started),
	}
	if _, err := m.opts.Store.SaveSession(sess); err != nil {
		m.opts.Logger.Warn("could not save session", "error", err)
		return
	}
	m.opts.Logger.Debug("session saved", "game", sess.GameID, "player", sess.Player, "frames", sess.Frames)
	m.gameState = core.GameState{}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
			return
		}
		dir = filepath.Join(home, ".rockjump", "screenshots")
	}

	path, err := writeScreenshot(dir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// writeScreenshot writes the plain text of s to dir and returns the path.
func writeScreenshot(dir, gameID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	filename := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the scene above the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}

	// The scene gets whatever the footer leaves
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(footer))
	m.game.Render(m.screen)

	background := ""
	if bg, ok := m.game.(backgrounder); ok {
		background = bg.Background()
	}

	var b strings.Builder
	b.WriteString(RenderScreenWithBackground(m.screen, background))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// State returns the counters of the running session.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run resets the game and runs it in the terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if err := game.Reset(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
