package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-sim/internal/core"
)

func TestSimulateRunDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a, err := simulateRun("tetris", 42, 5000, core.NewScreen(80, 24))
	require.NoError(t, err)
	b, err := simulateRun("tetris", 42, 5000, core.NewScreen(80, 24))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed should give the same run")
	assert.Positive(t, a.Stats.Pieces)
	assert.LessOrEqual(t, a.Ticks, 5000)
}

func TestSimulateRunUnknownMode(t *testing.T) {
	_, err := simulateRun("nope", 1, 10, core.NewScreen(80, 24))
	assert.Error(t, err)
}

func TestScriptedInputSingleAction(t *testing.T) {
	rng := newScriptRand(7)
	frame := core.NewInputFrame()
	moves := []core.Action{core.ActionLeft, core.ActionRight, core.ActionDown, core.ActionRotateCW, core.ActionRotateCCW}

	for i := 0; i < 200; i++ {
		scriptedInput(rng, &frame)
		held := 0
		for _, a := range moves {
			if frame.Has(a) {
				held++
			}
		}
		require.LessOrEqual(t, held, 1, "tick %d", i)
	}
}
