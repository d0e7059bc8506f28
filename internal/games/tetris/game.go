// Package tetris drives the falling-block engine as an arcade game.
// It supplies the engine's host capabilities from the platform tick loop
// and draws the engine's queryable state into a core.Screen.
package tetris

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-sim/internal/config"
	"github.com/vovakirdan/tetris-sim/internal/core"
	"github.com/vovakirdan/tetris-sim/internal/registry"
	"github.com/vovakirdan/tetris-sim/internal/sim"
)

// Mode selects how gravity evolves during a run.
type Mode string

const (
	ModeMarathon Mode = "marathon" // gravity speeds up with the level
	ModeClassic  Mode = "classic"  // constant gravity
)

// Settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	engineLogger     *log.Logger
)

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes engine debug events (spawn, lock, clear) to logger.
func SetLogger(logger *log.Logger) {
	engineLogger = logger
}

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	mode Mode
	cfg  config.TetrisConfig
	host *host
	sim  *sim.Sim
	err  error // engine construction failure, shown instead of the board

	screenW  int
	screenH  int
	tickRate int
	paused   bool
	tooSmall bool

	// Board origin on screen (top-left of the frame)
	boardX int
	boardY int
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewClassic creates a constant-gravity game.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "tetris_classic"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Tetris (Marathon)"
}

// loadConfig resolves the engine configuration for this mode.
func (g *Game) loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		if engineLogger != nil {
			engineLogger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultTetrisConfig()
	}

	switch {
	case g.mode == ModeClassic:
		config.ApplyTetrisPreset(&cfg, config.DifficultyFixed)
	case difficultyPreset != "":
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset starts a new run. Any previous engine is closed first.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Close()

	g.cfg = g.loadConfig()
	g.tickRate = cfg.TickRate
	g.paused = false
	g.err = nil

	if g.host == nil {
		g.host = newHost(cfg.Seed, cfg.TickRate)
	} else {
		g.host.reset(cfg.Seed, cfg.TickRate)
	}

	opts, err := g.cfg.ToOptions()
	if err == nil {
		if engineLogger != nil {
			opts = append(opts, sim.WithLogger(engineLogger))
		}
		g.sim, err = sim.New(g.host, opts...)
	}
	if err != nil {
		g.err = err
		g.sim = nil
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size without touching the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	frameW, frameH := g.frameSize()
	g.tooSmall = width < frameW || height < frameH+hudHeight

	g.boardX = (width - frameW) / 2
	if width >= frameW+sidePanelWidth+2 {
		g.boardX = (width - frameW - sidePanelWidth) / 2
	}
	g.boardY = hudHeight
}

// Close releases the engine. Safe to call more than once.
func (g *Game) Close() {
	if g.sim != nil {
		g.sim.Close()
		g.sim = nil
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.sim.IsGameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.host.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.sim.IsGameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.sim.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	g.host.advance(input)
	g.sim.Update()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.IsGameOver(),
		Paused:   g.paused,
	}
}

// RunStats reports the current run's counters for persistence.
func (g *Game) RunStats() core.RunStats {
	if g.sim == nil {
		return core.RunStats{}
	}
	return core.RunStats{
		Lines:   g.sim.Lines(),
		Level:   g.sim.Level(),
		Pieces:  g.sim.Pieces(),
		Seconds: g.host.Time(),
	}
}

// Err returns the engine construction error of the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.StatsReporter = (*Game)(nil)
	_ registry.Closer        = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
)
