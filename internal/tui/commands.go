package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearNoticeAfter clears notice seq once d has passed. A newer notice bumps
// the sequence so an older timer leaves it alone.
func clearNoticeAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
