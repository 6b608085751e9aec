package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets   int
	elapsed  []time.Duration
	jumps    int
	state    core.GameState
	resetErr error
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	if g.resetErr != nil {
		return g.resetErr
	}
	g.resets++
	g.state = core.GameState{}
	return nil
}

func (g *stubGame) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	g.state.Frames++
	res := core.StepResult{}
	if in.Has(core.ActionJump) {
		g.jumps++
		g.state.Jumps++
		res.Events = append(res.Events, core.Event{Kind: core.EventJump})
	}
	res.State = g.state
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Background() string    { return "#575C85" }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, opts Options) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	if err := g.Reset(core.RuntimeConfig{}); err != nil {
		t.Fatal(err)
	}
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, opts), g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelJumpLastsOneFrame(t *testing.T) {
	m, g := newTestModel(t, Options{})
	start := time.Now()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(20*time.Millisecond)))

	if g.jumps != 1 {
		t.Errorf("jumps = %d, want 1", g.jumps)
	}
	if m.State().Frames != 2 || m.State().Jumps != 1 {
		t.Errorf("State() = %+v", m.State())
	}
}

func TestModelElapsedFromTicks(t *testing.T) {
	m, g := newTestModel(t, Options{})
	start := time.Now()

	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(30*time.Millisecond)))
	update(t, m, TickMsg(start.Add(2*time.Second)))

	want := []time.Duration{time.Second / 60, 30 * time.Millisecond, maxFrameTime}
	if len(g.elapsed) != len(want) {
		t.Fatalf("steps = %d, want %d", len(g.elapsed), len(want))
	}
	for i := range want {
		if g.elapsed[i] != want[i] {
			t.Errorf("frame %d elapsed = %v, want %v", i, g.elapsed[i], want[i])
		}
	}
}

func TestModelRestartSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, Options{Store: store, Player: "tester"})
	now := time.Now()
	m = update(t, m, runeKey('w'))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(time.Millisecond)))

	m = update(t, m, runeKey('r'))
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State() != (core.GameState{}) {
		t.Errorf("State() after restart = %+v", m.State())
	}

	// A restart without frames in between saves nothing
	update(t, m, runeKey('r'))

	sessions, err := store.RecentSessions("stub", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if s := sessions[0]; s.Player != "tester" || s.Frames != 2 || s.Jumps != 1 {
		t.Errorf("session = %+v", s)
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, Options{Store: store})
	m = update(t, m, TickMsg(time.Now()))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}

	sessions, _ := store.RecentSessions("stub", 10)
	if len(sessions) != 1 || sessions[0].Player != "local" {
		t.Errorf("sessions = %+v, want one local session", sessions)
	}
}

func TestModelRestartFailureKeepsRunning(t *testing.T) {
	m, g := newTestModel(t, Options{})
	g.resetErr = os.ErrNotExist

	m = update(t, m, runeKey('r'))

	if !strings.Contains(m.View(), "restart failed") {
		t.Error("View() does not report the failed restart")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (%v), want one file", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot starts with %q", string(data[:min(len(data), 10)]))
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("View() does not report the screenshot")
	}
}

func TestModelViewLayout(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	short := m.View()
	if !strings.Contains(short, "stub") || !strings.Contains(short, "jump") {
		t.Errorf("View() missing scene or help:\n%s", short)
	}
	if got := len(strings.Split(short, "\n")); got != 12 {
		t.Errorf("View() has %d lines, want 12", got)
	}

	// Full help takes more lines from the scene, not from the terminal
	m = update(t, m, runeKey('?'))
	full := m.View()
	if !strings.Contains(full, "screenshot") {
		t.Errorf("full help missing screenshot binding:\n%s", full)
	}
	if got := len(strings.Split(full, "\n")); got != 12 {
		t.Errorf("full help View() has %d lines, want 12", got)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	m.View()

	if m.screen.Width() != 20 || m.screen.Height() != 5 {
		t.Errorf("screen = %dx%d, want 20x5", m.screen.Width(), m.screen.Height())
	}
}
