// Package tui provides the Bubble Tea front end for the flyer: a
// terminal presenter, the key/mouse input adapter and SSH remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the terminal's display-refresh signal.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(refreshRate int) tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
