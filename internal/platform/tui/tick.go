// Package tui provides the Bubble Tea front-end for the arena.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps a single simulation step, so a stalled terminal does
// not teleport monsters onto the player.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a simulation tick. Gen identifies the run that
// scheduled it; ticks from a finished run are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// frameClock measures wall time between ticks.
type frameClock struct {
	last     time.Time
	fallback float64 // Delta used for the first tick
}

func newFrameClock(tickRate int) *frameClock {
	return &frameClock{fallback: 1 / float64(tickRate)}
}

// delta returns seconds since the previous tick, clamped to [0, maxFrameDelta].
func (c *frameClock) delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return min(max(dt, 0), maxFrameDelta)
}

func (c *frameClock) reset() {
	c.last = time.Time{}
}
