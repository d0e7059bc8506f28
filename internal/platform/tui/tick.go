// Package tui provides the Bubble Tea integration for the tetris platform.
// It runs the fixed-rate tick loop, maps keys to actions and draws the
// game's screen buffer to the terminal.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// newLoopID returns an ID for a new tick loop, so ticks still in flight from
// a finished game are not picked up by the next one.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick at tickRate ticks per second.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
