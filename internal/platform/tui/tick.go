// Package tui is the terminal front end of the grabber. It runs the fixed-rate
// tick loop, maps keys and mouse to match events, and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// TickMsg is sent to trigger one match tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message.
// Ticks land on multiples of the interval on the system clock, so the time
// spent updating and rendering does not stretch the frame. A frame that
// overruns its budget waits for the next boundary.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Every(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
