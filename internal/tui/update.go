package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pomo/internal/config"
	"pomo/internal/models"
	"pomo/internal/timer"
	"pomo/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s":
		return m.startTimer()
	case "p":
		return m.pauseTimer()
	case "r":
		return m.resetTimer()
	case "w":
		return m.selectMode(timer.Work)
	case "b":
		return m.selectMode(timer.ShortBreak)
	case "l":
		return m.selectMode(timer.LongBreak)
	case "tab":
		return m.cycleMode()
	case "e":
		return m.exportReport()
	case "t":
		return m.cycleTheme()
	}
	return m, nil
}

// handleTick delivers one scheduler beat into the engine. Beats from a
// cancelled registration fall through fire and are dropped; the chain is
// re-armed only while the registration stays live, keeping the
// one-live-chain invariant.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if !m.ticks.fire(msg) {
		return m, nil
	}
	m.recordCompletion()
	if m.ticks.armed() {
		return m, tickCmd(m.ticks.gen, m.ticks.period)
	}
	return m, nil
}

func (m Model) startTimer() (Model, tea.Cmd) {
	genBefore := m.ticks.gen
	m.engine.Start()
	m.prev = m.engine.Snapshot()
	m.Message = ""
	if m.ticks.armed() && m.ticks.gen != genBefore {
		return m, tickCmd(m.ticks.gen, m.ticks.period)
	}
	return m, nil
}

func (m Model) pauseTimer() (Model, tea.Cmd) {
	m.engine.Pause()
	m.prev = m.engine.Snapshot()
	return m, nil
}

func (m Model) resetTimer() (Model, tea.Cmd) {
	m.engine.Reset()
	m.prev = m.engine.Snapshot()
	m.Message = ""
	return m, nil
}

func (m Model) selectMode(mode timer.Mode) (Model, tea.Cmd) {
	m.engine.ChangeMode(mode)
	m.prev = m.engine.Snapshot()
	return m, nil
}

func (m Model) cycleMode() (Model, tea.Cmd) {
	switch m.engine.Mode() {
	case timer.Work:
		return m.selectMode(timer.ShortBreak)
	case timer.ShortBreak:
		return m.selectMode(timer.LongBreak)
	default:
		return m.selectMode(timer.Work)
	}
}

func (m Model) cycleTheme() (Model, tea.Cmd) {
	m.themeName = nextTheme(m.themeName)
	m.theme = Themes[m.themeName]
	return m, nil
}

// recordCompletion diffs engine snapshots around a tick. A tick that stopped
// the timer and rotated modes means an interval just finished; it is logged
// to the history store and announced in the status line.
func (m *Model) recordCompletion() {
	prev := m.prev
	cur := m.engine.Snapshot()
	m.prev = cur
	if !prev.Active || cur.Active || cur.Mode == prev.Mode {
		return
	}

	m.Message = fmt.Sprintf("%s finished. Next up: %s (press s)", prev.Mode.Label(), cur.Mode.Label())

	if m.store == nil {
		return
	}
	duration := m.engine.Settings().Duration(prev.Mode)
	now := time.Now()
	sess := models.Session{
		Mode:            prev.Mode.String(),
		StartedAt:       now.Add(-time.Duration(duration) * time.Second),
		CompletedAt:     now,
		DurationSeconds: duration,
	}
	if prev.Mode == timer.Work {
		sess.SessionNumber = cur.SessionsCompleted
	}
	if _, err := m.store.RecordSession(sess); err != nil {
		util.LogError("record session", err)
		m.Message = "History write failed; see log"
		return
	}
	m.refreshHistory()
}

func (m Model) exportReport() (Model, tea.Cmd) {
	if m.store == nil {
		m.Message = "No history store; report unavailable"
		return m, nil
	}
	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		util.LogError("create reports dir", err)
		m.Message = "Report failed; see log"
		return m, nil
	}
	path, err := GeneratePDFReport(m.store, time.Now().Format("2006-01-02"), dir)
	if err != nil {
		util.LogError("export report", err)
		m.Message = "Report failed; see log"
		return m, nil
	}
	m.Message = "Report saved to " + path
	return m, nil
}
