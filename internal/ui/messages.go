package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchal/shoreline/internal/scroll"
)

// frameMsg drives one spring integration step. Frames are only
// scheduled while the spring is unsettled; once it comes to rest the
// tick chain stops until the next scroll event.
type frameMsg time.Time

// statusExpiredMsg clears the transient status line.
type statusExpiredMsg struct{}

const statusLifetime = 5 * time.Second

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/scroll.DefaultFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func statusExpireCmd() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
