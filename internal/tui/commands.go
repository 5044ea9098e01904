package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one scheduler beat. Gen ties the message to the registration
// that armed it; beats from a cancelled registration no longer match and are
// dropped on arrival.
type TickMsg struct {
	Gen int
	At  time.Time
}

func tickCmd(gen int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}
