package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-sim/internal/core"
	"github.com/vovakirdan/tetris-sim/internal/storage"

	_ "github.com/vovakirdan/tetris-sim/internal/games/tetris"
)

// fakeGame ends after a fixed number of steps.
type fakeGame struct {
	steps    int
	endAfter int
	score    int
	resets   int
	closed   int
	last     core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if !g.State().GameOver {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAfter}
}

func (g *fakeGame) RunStats() core.RunStats {
	return core.RunStats{Lines: 3, Level: 1, Pieces: g.steps, Seconds: 1.5}
}

func (g *fakeGame) Close() { g.closed++ }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok, "Update returned %T", next)
	return gm
}

// sessionStep feeds one message to a session model.
func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update returned %T", next)
	return sm
}

func TestKeyMapperGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{keyRunes("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{keyRunes("z"), core.ActionRotateCCW},
		{keyRunes("p"), core.ActionPause},
		{keyRunes("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{keyRunes("?"), core.ActionNone},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.want, got, "MapKey(%q)", tt.msg.String())
		assert.False(t, quit, "MapKey(%q) quit", tt.msg.String())
	}

	_, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit, "ctrl+c should quit")
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyRunes("j")))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score")
	s.DrawTextColor(0, 1, "████", core.ColorCyan)

	lines := strings.Split(RenderScreen(s), "\n")

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Score"), "line 0 = %q", lines[0])
	assert.Contains(t, lines[1], "████")
}

func TestGameModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAfter: 3, score: 700}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 99})
	m.Init()

	for range 6 {
		m = step(t, m, TickMsg{Loop: m.loop})
	}
	require.True(t, m.GameState().GameOver)

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 700, runs[0].Score)
	assert.Equal(t, 3, runs[0].Lines)
	assert.Equal(t, int64(99), runs[0].Seed)
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m = step(t, m, TickMsg{Loop: m.loop + 1000})
	assert.Zero(t, game.steps, "tick from another loop should be ignored")

	step(t, m, TickMsg{Loop: m.loop})
	assert.Equal(t, 1, game.steps)
}

func TestGameModelInputReachesGameOnce(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, TickMsg{Loop: m.loop})
	assert.True(t, game.last.Has(core.ActionLeft), "Left should reach the game on the next tick")

	step(t, m, TickMsg{Loop: m.loop})
	assert.False(t, game.last.Has(core.ActionLeft), "input frame should be cleared after each tick")
}

func TestGameModelBackOnlyWhenIdle(t *testing.T) {
	game := &fakeGame{endAfter: 2}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.BackToMenu(), "Back must be ignored while playing")

	for range 3 {
		m = step(t, m, TickMsg{Loop: m.loop})
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu(), "Back should leave after game over")
	assert.Equal(t, 1, game.closed)
}

func TestGameModelRestart(t *testing.T) {
	game := &fakeGame{endAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m = step(t, m, TickMsg{Loop: m.loop})
	m = step(t, m, keyRunes("r"))
	m = step(t, m, TickMsg{Loop: m.loop})

	assert.Equal(t, 1, game.resets)
	assert.False(t, m.GameState().GameOver, "state should be fresh after restart")
}

func TestMenuListsTetrisModes(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		ids = append(ids, it.GameID)
	}
	assert.Contains(t, ids, "tetris")
	assert.Contains(t, ids, "tetris_classic")
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "tester")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen, "Enter should start a game")
	require.NotNil(t, m.game)
	assert.Contains(t, m.View(), "Score", "game view should show the HUD")

	m = sessionStep(t, m, keyRunes("p"))
	m = sessionStep(t, m, TickMsg{Loop: m.game.loop})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenMenu, m.screen, "Esc while paused should return to the menu")
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveRun(storage.Run{GameID: "tetris", Score: 1234, Lines: 10, Level: 2, Pieces: 40})
	require.NoError(t, err)

	m := NewSessionModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}, "tester")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen, "Tab should open scores")
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen, "Esc should return to the menu")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(0))
	assert.Equal(t, "2:05", formatDuration(2*time.Minute+5400*time.Millisecond))
}
