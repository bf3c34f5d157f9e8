// Package tui provides the Bubble Tea creature browser and the pointer
// playground that runs beside it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCatchUp caps the turns a single late tick may advance.
const maxCatchUp = 10

// TickMsg advances the playground by Turns game turns. A zero Turns counts
// as one.
type TickMsg struct {
	At    time.Time
	Turns int
}

// turnsSince returns how many turns at rate per second fit between last and
// now, at least one and at most maxCatchUp. A zero last means no turn was
// timed yet.
func turnsSince(last, now time.Time, rate int) int {
	if last.IsZero() || rate <= 0 {
		return 1
	}
	n := int(now.Sub(last) * time.Duration(rate) / time.Second)
	switch {
	case n < 1:
		return 1
	case n > maxCatchUp:
		return maxCatchUp
	}
	return n
}

// tickCmd schedules the next turn. When the terminal falls behind, the
// message carries the turns missed since last so game time keeps pace.
func tickCmd(last time.Time, rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Turns: turnsSince(last, t, rate)}
	})
}
