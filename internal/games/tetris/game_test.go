package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-sim/internal/config"
	"github.com/vovakirdan/tetris-sim/internal/core"
	"github.com/vovakirdan/tetris-sim/internal/sim"
)

// newTestGame isolates config loading from the user's home directory.
func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	require.NoError(t, g.Err())
	t.Cleanup(g.Close)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, New(), 12345)
	g2 := newTestGame(t, New(), 12345)

	for i := range 1200 {
		var in core.InputFrame
		switch {
		case i%97 == 0:
			in = frame(core.ActionRotateCW)
		case i%31 == 0:
			in = frame(core.ActionLeft)
		case i%43 == 0:
			in = frame(core.ActionRight)
		case i%5 == 0:
			in = frame(core.ActionDown)
		default:
			in = frame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestGravityFollowsTickClock(t *testing.T) {
	g := newTestGame(t, New(), 1)

	for range 59 {
		g.Step(frame())
	}
	require.Equal(t, 0, g.sim.TetrominoPosY(), "after 59 ticks")

	g.Step(frame())
	assert.Equal(t, 1, g.sim.TetrominoPosY(), "after 60 ticks")
}

func TestFastFallEveryThreeTicks(t *testing.T) {
	g := newTestGame(t, New(), 2)

	// 0.05s fast fall at 60 ticks per second
	var drops []int
	lastY := g.sim.TetrominoPosY()
	for tick := 1; tick <= 40; tick++ {
		g.Step(frame(core.ActionDown))
		if y := g.sim.TetrominoPosY(); y != lastY {
			require.Equal(t, lastY+1, y, "tick %d moved more than one row", tick)
			drops = append(drops, tick)
			lastY = y
		}
	}

	require.Len(t, drops, 13)
	assert.Equal(t, 3, drops[0])
	for i := 1; i < len(drops); i++ {
		assert.Equal(t, 3, drops[i]-drops[i-1], "gap before drop %d", i)
	}
}

func TestInputMapping(t *testing.T) {
	g := newTestGame(t, New(), 7)
	startX := g.sim.TetrominoPosX()

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, startX-1, g.sim.TetrominoPosX(), "after Left")

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, startX+1, g.sim.TetrominoPosX(), "after Right twice")
}

func TestHostInputMapping(t *testing.T) {
	h := newHost(1, 60)
	h.advance(frame(core.ActionRotateCCW, core.ActionDown))

	want := map[sim.Input]bool{
		sim.InputMoveLeft:    false,
		sim.InputMoveRight:   false,
		sim.InputFastFall:    true,
		sim.InputRotateLeft:  true,
		sim.InputRotateRight: false,
	}
	for in, expected := range want {
		assert.Equal(t, expected, h.InputPressed(in), "InputPressed(%v)", in)
	}
	assert.False(t, h.InputPressed(sim.InputCount), "out-of-range input reads as released")
	assert.Equal(t, 1.0/60, h.Time())
}

func TestAllocationsBalancedAcrossRestarts(t *testing.T) {
	g := newTestGame(t, New(), 3)
	live := g.host.outstanding
	require.NotZero(t, live, "engine should hold host allocations while running")

	for range 3 {
		g.Reset(core.RuntimeConfig{Seed: 9, ScreenW: 80, ScreenH: 24, TickRate: 60})
		require.Equal(t, live, g.host.outstanding, "outstanding after restart")
	}

	g.Close()
	g.Close()
	assert.Zero(t, g.host.outstanding)
	assert.Zero(t, g.host.liveBytes)
}

func TestPauseStopsClock(t *testing.T) {
	g := newTestGame(t, New(), 5)

	g.Step(frame(core.ActionPause))
	require.True(t, g.State().Paused)

	tick := g.host.tick
	for range 120 {
		g.Step(frame())
	}
	assert.Equal(t, tick, g.host.tick, "clock advanced while paused")

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	assert.Equal(t, tick+1, g.host.tick, "clock should resume")
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, New(), 11)

	for range 50000 {
		if g.State().GameOver {
			break
		}
		g.Step(frame(core.ActionDown))
	}
	require.True(t, g.State().GameOver, "dropping every piece in the centre should top out")

	stats := g.RunStats()
	assert.GreaterOrEqual(t, stats.Pieces, 2)
	assert.Positive(t, stats.Seconds)

	before := g.Snapshot()
	g.Step(frame(core.ActionDown))
	assert.Equal(t, before, g.Snapshot(), "steps after game over must not change state")

	g.Step(frame(core.ActionRestart))
	assert.False(t, g.State().GameOver, "restart should start a new run")
	assert.Zero(t, g.State().Score)
	assert.Equal(t, 1, g.sim.Pieces())
	assert.Equal(t, 2, g.host.outstanding)
}

func TestClassicIgnoresDifficulty(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	classic := newTestGame(t, NewClassic(), 1)
	assert.False(t, classic.cfg.Leveling.Enabled)
	assert.Equal(t, 1, classic.sim.Level())

	marathon := newTestGame(t, New(), 1)
	assert.Equal(t, config.StartLevelForPreset(config.DifficultyHard), marathon.sim.Level())
	assert.Less(t, marathon.sim.GravityInterval(), classic.sim.GravityInterval(),
		"starting on a higher level should also start faster")
}

func TestRenderBoardAndPiece(t *testing.T) {
	g := newTestGame(t, New(), 21)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Equal(t, '┌', screen.Get(g.boardX, g.boardY), "frame corner")
	assert.Contains(t, screen.Row(0), "Score: 0")

	blocks := 0
	want := kindColors[g.sim.Kind()]
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == blockRune {
				blocks++
				require.Equal(t, want, c.Color, "block at (%d, %d)", x, y)
			}
		}
	}
	assert.Equal(t, 4*cellWidth, blocks)
}

func TestTooSmallWindow(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.Resize(20, 10)

	g.Step(frame())
	assert.Zero(t, g.host.tick, "game should not advance in a too-small window")

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	g.Step(frame())
	assert.Equal(t, uint64(1), g.host.tick, "game should resume after growing the window")
}

func TestRegistered(t *testing.T) {
	assert.Equal(t, "tetris", New().ID())
	assert.Equal(t, "tetris_classic", NewClassic().ID())
}
