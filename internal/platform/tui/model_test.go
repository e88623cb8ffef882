package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	resized [2]int
	state   core.GameState
	cleared int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Cleared: g.cleared}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) OnPlayfield(w, h, x, y int) bool { return x < w && y < h }
func (g *fakeGame) HoldEnabled() bool { return false }
func (g *fakeGame) DebugState() string { return "frame=7 over=true" }

func newTestModel(t *testing.T, g *fakeGame, logs *bytes.Buffer) Model {
	t.Helper()
	logger := log.NewWithOptions(logs, log.Options{Level: log.DebugLevel})
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Options{Logger: logger, ScreenshotDir: t.TempDir()})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelFeedsActionsInOrder(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('z'))
	m, _ = update(t, m, runeKey('c')) // hold disabled by the game
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, expected 1", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRotateCCW}
	got := g.frames[0].Actions
	if len(got) != len(want) {
		t.Fatalf("actions = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("actions[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	// Input is cleared between frames
	update(t, m, TickMsg{})
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame carried %v", g.frames[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{state: core.GameState{Score: 300}}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
	if !strings.Contains(logs.String(), "quit") || !strings.Contains(logs.String(), m.RunID()) {
		t.Errorf("quit not logged with run id:\n%s", logs.String())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)
	resets := g.resets

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != resets {
		t.Error("resizable game should not be reset")
	}
	if g.resized != [2]int{100, 40 - footerHeight} {
		t.Errorf("Resize got %v", g.resized)
	}
	if !strings.Contains(m.View(), "fake board") {
		t.Error("View should contain the game render")
	}
}

func TestModelFooterHidesDisabledHold(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	// No key has been pressed yet
	view := m.View()
	if !strings.Contains(view, "pause") {
		t.Fatalf("footer missing:\n%s", view)
	}
	if strings.Contains(view, "hold") {
		t.Error("footer should not offer hold when the game has none")
	}
}

func TestModelSwipe(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	m, _ = update(t, m, press(10, 10))
	m, _ = update(t, m, release(10, 14))
	update(t, m, TickMsg{})

	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionSoftDrop) {
		t.Errorf("swipe down should soft drop, got %v", g.frames)
	}
}

func TestModelLogsGameOverOnce(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	g.state = core.GameState{Score: 1200, Level: 3, Lines: 12, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if n := strings.Count(logs.String(), "game over"); n != 1 {
		t.Errorf("game over logged %d times:\n%s", n, logs.String())
	}
	if !strings.Contains(logs.String(), "frame=7 over=true") {
		t.Errorf("final debug state not logged:\n%s", logs.String())
	}

	g.state = core.GameState{}
	m, _ = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if !strings.Contains(logs.String(), "restart") {
		t.Error("restart not logged")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &fakeGame{}
	var logs bytes.Buffer
	m := newTestModel(t, g, &logs)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("screenshots = %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake board") {
		t.Errorf("screenshot content = %q", string(data)[:20])
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPastelBlue)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, '█', core.ColorPastelRed)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}
