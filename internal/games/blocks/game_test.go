package blocks

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func newTestGame(t *testing.T, v Variant, seed int64) *Game {
	t.Helper()
	g := NewWithRules(v, config.DefaultBlocksConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for _, id := range []string{"blocks", "blocks_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		g.Reset(core.DefaultConfig())

		hold := g.(*Game).HoldEnabled()
		if want := id == "blocks"; hold != want {
			t.Errorf("%s: hold = %v, expected %v", id, hold, want)
		}
	}
}

func TestPresetAppliedOnReset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDifficultyPreset("fixed")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.DefaultConfig())
	if g.cfg.Speed.IntervalStepMs != 0 {
		t.Errorf("fixed preset should disable speed-up, step = %d", g.cfg.Speed.IntervalStepMs)
	}
}

func TestFrameClockCarriesRemainder(t *testing.T) {
	for _, rate := range []int{60, 7, 30, 1000} {
		c := newFrameClock(rate)
		total := 0
		for range rate {
			total += c.advance()
		}
		if total != 1000 {
			t.Errorf("rate %d: %d frames = %dms, expected 1000", rate, rate, total)
		}
	}
}

func TestGravityFollowsFrames(t *testing.T) {
	g := newTestGame(t, VariantModern, 1)
	empty := core.NewInputFrame()

	// 60 frames at 60fps is exactly one interval; gravity needs more
	for range 60 {
		g.Step(empty)
	}
	if y := g.Snapshot().Engine.Active.Y; y != 0 {
		t.Fatalf("after 1000ms active.Y = %d, expected 0", y)
	}

	g.Step(empty)
	if y := g.Snapshot().Engine.Active.Y; y != 1 {
		t.Errorf("after 1016ms active.Y = %d, expected 1", y)
	}
}

func TestActionMapping(t *testing.T) {
	g := newTestGame(t, VariantModern, 3)
	x0 := g.Snapshot().Engine.Active.X

	g.Step(frame(core.ActionLeft))
	if x := g.Snapshot().Engine.Active.X; x != x0-1 {
		t.Errorf("Left: X = %d, expected %d", x, x0-1)
	}

	g.Step(frame(core.ActionRight, core.ActionRight))
	if x := g.Snapshot().Engine.Active.X; x != x0+1 {
		t.Errorf("Right twice in one frame: X = %d, expected %d", x, x0+1)
	}

	g.Step(frame(core.ActionHold))
	snap := g.Snapshot().Engine
	if !snap.HasHold() || snap.CanSwap {
		t.Errorf("Hold: HasHold = %v, CanSwap = %v", snap.HasHold(), snap.CanSwap)
	}

	g.Step(frame(core.ActionHardDrop))
	if p := g.Snapshot().Engine.Pieces; p != 1 {
		t.Errorf("HardDrop: pieces = %d, expected 1", p)
	}
}

func TestClassicIgnoresHold(t *testing.T) {
	g := newTestGame(t, VariantClassic, 3)
	before := g.Snapshot().Engine.Active

	g.Step(frame(core.ActionHold))
	snap := g.Snapshot().Engine
	if snap.HasHold() {
		t.Error("classic game should not hold")
	}
	if snap.Active.Kind != before.Kind {
		t.Errorf("active changed from %v to %v", before.Kind, snap.Active.Kind)
	}
}

func TestPauseWithholdsTimeAndCommands(t *testing.T) {
	g := newTestGame(t, VariantModern, 5)
	start := g.Snapshot().Engine.Active

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for range 300 {
		g.Step(frame(core.ActionLeft))
	}
	if got := g.Snapshot().Engine.Active; got.X != start.X || got.Y != start.Y {
		t.Errorf("paused game moved: (%d,%d) -> (%d,%d)", start.X, start.Y, got.X, got.Y)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, VariantModern, 9)
	for range 5 {
		g.Step(frame(core.ActionHardDrop))
	}
	g.Step(frame(core.ActionPause))

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Paused {
		t.Error("restart should unpause")
	}
	if snap.Engine.Pieces != 0 || snap.Engine.Score != 0 || snap.Engine.Level != 1 {
		t.Errorf("restart did not reset: %+v", snap.Engine)
	}
}

func TestGameOverFreezes(t *testing.T) {
	g := newTestGame(t, VariantModern, 11)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	if !g.State().GameOver {
		t.Fatal("stacking hard drops should end the game")
	}

	before := g.Snapshot().Engine
	for range 120 {
		g.Step(frame(core.ActionLeft, core.ActionRotateCW, core.ActionHold, core.ActionPause))
	}
	after := g.Snapshot()
	if !reflect.DeepEqual(before, after.Engine) {
		t.Error("engine state changed after game over")
	}
	if after.Paused {
		t.Error("pause should not toggle after game over")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart should leave game over")
	}
}

func TestTooSmallSuspends(t *testing.T) {
	g := newTestGame(t, VariantModern, 2)
	g.Resize(20, 10)

	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if y := g.Snapshot().Engine.Active.Y; y != 0 {
		t.Errorf("too-small game advanced: Y = %d", y)
	}

	s := core.NewScreen(20, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Error("expected resize hint")
	}

	g.Resize(MinWidth, MinHeight)
	if g.Snapshot().TooSmall {
		t.Error("minimum size should be playable")
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionLeft, core.ActionRotateCW, core.ActionNone, core.ActionRight,
		core.ActionHold, core.ActionSoftDrop, core.ActionRotateCCW, core.ActionHardDrop,
	}

	run := func() Snapshot {
		g := newTestGame(t, VariantModern, 12345)
		for i := range 2000 {
			g.Step(frame(script[i%len(script)]))
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1.Engine, s2.Engine)
	}
	if s1.Engine.Pieces == 0 {
		t.Error("script should have locked pieces")
	}
}

func TestClearedMatchesLines(t *testing.T) {
	script := []core.Action{
		core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionHardDrop,
		core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionHardDrop,
		core.ActionRotateCW, core.ActionHardDrop, core.ActionHardDrop,
	}
	g := newTestGame(t, VariantModern, 77)

	total := 0
	for i := range 3000 {
		res := g.Step(frame(script[i%len(script)]))
		if res.Cleared < 0 || res.Cleared > 4 {
			t.Fatalf("frame %d: cleared %d lines", i, res.Cleared)
		}
		total += res.Cleared
		if res.State.GameOver {
			break
		}
	}
	if total != g.State().Lines {
		t.Errorf("sum of Cleared = %d, Lines = %d", total, g.State().Lines)
	}
}
