package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pomo/internal/timer"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("p") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).Render("o") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Render("m") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("o")
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress q to quit.", m.err)
	}

	snap := m.engine.Snapshot()
	var b strings.Builder

	header := fmt.Sprintf("%s v%s", renderLogo(), versionLabel())
	b.WriteString(m.theme.Header.Render("Pomodoro") + "  " + m.theme.Dim.Render(header) + "\n\n")

	b.WriteString(m.renderModeTabs(snap.Mode) + "\n\n")

	clock := m.theme.Clock.Render(timer.FormatClock(snap.SecondsRemaining))
	if snap.Mode != timer.Work {
		clock = m.theme.Break.Render(timer.FormatClock(snap.SecondsRemaining))
	}
	b.WriteString(clock + "  " + m.renderStatus(snap) + "\n")

	total := m.engine.Settings().Duration(snap.Mode)
	elapsed := float64(total-snap.SecondsRemaining) / float64(total)
	b.WriteString(m.progress.ViewAs(elapsed) + "\n\n")

	b.WriteString(m.theme.Sessions.Render(fmt.Sprintf("Sessions completed: %d", snap.SessionsCompleted)) + "\n")
	b.WriteString(m.renderHistoryLine() + "\n")

	if m.Message != "" {
		b.WriteString("\n" + m.theme.Message.Render(m.Message) + "\n")
	}

	b.WriteString("\n" + m.renderFooter())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)
	box := frame.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderModeTabs(active timer.Mode) string {
	tabs := make([]string, 0, 3)
	for _, mode := range []timer.Mode{timer.Work, timer.ShortBreak, timer.LongBreak} {
		label := mode.Label()
		if mode == active {
			tabs = append(tabs, m.theme.ModeActive.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.theme.ModeInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderStatus(snap timer.Snapshot) string {
	if snap.Active {
		return m.theme.Highlight.Render("running")
	}
	return m.theme.Dim.Render("paused")
}

func (m Model) renderHistoryLine() string {
	if m.store == nil {
		return m.theme.Dim.Render("History disabled")
	}
	focus := FormatDuration(time.Duration(m.summary.FocusSeconds) * time.Second)
	line := fmt.Sprintf("Today: %d work sessions, %s focused", m.summary.WorkSessions, focus)
	return m.theme.Dim.Render(line)
}

func (m Model) renderFooter() string {
	help := "s start · p pause · r reset · w/b/l mode · tab cycle · e report · t theme · q quit"
	max := m.width - 8
	return m.theme.Dim.Render(truncateLabel(help, max))
}
