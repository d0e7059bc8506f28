package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tetris-sim/internal/core"
	"github.com/vovakirdan/tetris-sim/internal/sim"
)

// inputActions maps engine inputs to platform actions.
var inputActions = [sim.InputCount]core.Action{
	sim.InputMoveLeft:    core.ActionLeft,
	sim.InputMoveRight:   core.ActionRight,
	sim.InputFastFall:    core.ActionDown,
	sim.InputRotateLeft:  core.ActionRotateCCW,
	sim.InputRotateRight: core.ActionRotateCW,
}

// host adapts the tick-driven platform to the engine's capability set.
// Time advances only when the game steps, so runs replay exactly from a seed.
type host struct {
	tick     uint64
	tickRate int
	rng      *rand.Rand
	input    core.InputFrame

	// Allocation accounting
	outstanding int
	liveBytes   int
	allocs      int
}

func newHost(seed int64, tickRate int) *host {
	h := &host{}
	h.reset(seed, tickRate)
	return h
}

// reset rewinds the clock and reseeds. Allocation counters are kept so
// leaks across restarts stay visible.
func (h *host) reset(seed int64, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	h.tick = 0
	h.tickRate = tickRate
	h.rng = rand.New(rand.NewSource(seed))
	h.input = core.NewInputFrame()
}

// advance moves the clock one tick and latches the actions for it.
func (h *host) advance(in core.InputFrame) {
	h.tick++
	h.input = in
}

func (h *host) Alloc(size int) []byte {
	h.outstanding++
	h.liveBytes += size
	h.allocs++
	return make([]byte, size)
}

func (h *host) Free(buf []byte) {
	h.outstanding--
	h.liveBytes -= len(buf)
}

func (h *host) Time() float64 {
	return float64(h.tick) / float64(h.tickRate)
}

func (h *host) Seed() uint64 {
	return h.rng.Uint64()
}

func (h *host) InputPressed(in sim.Input) bool {
	if in < 0 || in >= sim.InputCount {
		return false
	}
	return h.input.Has(inputActions[in])
}

var _ sim.Host = (*host)(nil)
