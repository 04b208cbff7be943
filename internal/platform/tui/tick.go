// Package tui provides the Bubble Tea integration for the jump modes.
// It handles the terminal UI loop, input mapping, and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// steerHold is how long a single left/right press keeps steering.
// Terminals report presses and auto-repeat but never releases, so a held
// key arrives as a burst of presses separated by the repeat delay.
const steerHold = 220 * time.Millisecond

// steerLatch turns discrete key presses into a held direction.
type steerLatch struct {
	dir   core.Action
	ticks int
}

// press latches dir for hold ticks. A new press replaces the previous
// direction, so reversing is immediate.
func (l *steerLatch) press(dir core.Action, hold int) {
	l.dir = dir
	l.ticks = hold
}

// apply sets the latched direction on frame and counts one tick down.
func (l *steerLatch) apply(frame *core.InputFrame) {
	if l.ticks <= 0 {
		return
	}
	frame.Set(l.dir)
	l.ticks--
}

func (l *steerLatch) release() {
	l.ticks = 0
}

// holdTicks converts steerHold to whole ticks at rate, never less than one.
func holdTicks(rate int) int {
	return max(1, int(steerHold*time.Duration(rate)/time.Second))
}
