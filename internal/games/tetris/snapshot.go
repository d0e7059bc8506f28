package tetris

import "github.com/vovakirdan/tetris-sim/internal/sim"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   Mode
	Paused bool
	Engine sim.Snapshot
}

// Snapshot returns the current game snapshot. The engine part is zero
// when no engine is running.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:   g.mode,
		Paused: g.paused,
	}
	if g.host != nil {
		snap.Tick = g.host.tick
	}
	if g.sim != nil {
		snap.Engine = g.sim.Snapshot()
	}
	return snap
}
