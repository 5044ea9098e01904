package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pomo/internal/database"
	"pomo/internal/timer"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, settings timer.Settings, store *database.Store) Model {
	t.Helper()
	m, err := NewModel(settings, store)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func openTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return store
}

func sendKey(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(r))
	return next.(Model), cmd
}

func sendTick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{Gen: m.ticks.gen})
	return next.(Model), cmd
}

func TestStartArmsOneChain(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)

	m, cmd := sendKey(t, m, 's')
	if cmd == nil {
		t.Fatalf("start should schedule a tick")
	}
	if !m.engine.IsActive() {
		t.Fatalf("engine not running after start")
	}
	gen := m.ticks.gen

	m, cmd = sendKey(t, m, 's')
	if cmd != nil {
		t.Fatalf("second start scheduled a duplicate tick chain")
	}
	if m.ticks.gen != gen {
		t.Fatalf("second start re-armed the registration")
	}
}

func TestTickDecrementsAndRearms(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	m, _ = sendKey(t, m, 's')

	m, cmd := sendTick(t, m)
	if got := m.engine.SecondsRemaining(); got != 1499 {
		t.Fatalf("remaining = %d, want 1499", got)
	}
	if cmd == nil {
		t.Fatalf("live chain should re-arm after a beat")
	}
}

func TestPauseDropsPendingTick(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	m, _ = sendKey(t, m, 's')
	staleGen := m.ticks.gen

	m, _ = sendKey(t, m, 'p')
	if m.engine.IsActive() {
		t.Fatalf("engine still running after pause")
	}

	// The tea.Tick armed before the pause still delivers; it must be dropped.
	next, cmd := m.Update(TickMsg{Gen: staleGen})
	m = next.(Model)
	if got := m.engine.SecondsRemaining(); got != 1500 {
		t.Fatalf("stale tick mutated the countdown: %d", got)
	}
	if cmd != nil {
		t.Fatalf("stale tick re-armed the chain")
	}
}

func TestPauseResumeKeepsRemaining(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	m, _ = sendKey(t, m, 's')
	m, _ = sendTick(t, m)
	m, _ = sendTick(t, m)
	m, _ = sendKey(t, m, 'p')
	want := m.engine.SecondsRemaining()

	m, cmd := sendKey(t, m, 's')
	if cmd == nil {
		t.Fatalf("resume should schedule a tick")
	}
	if m.engine.SecondsRemaining() != want {
		t.Fatalf("resume changed remaining: %d -> %d", want, m.engine.SecondsRemaining())
	}
}

func TestModeKeysSwitchModes(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)

	m, _ = sendKey(t, m, 'b')
	if m.engine.Mode() != timer.ShortBreak {
		t.Fatalf("mode = %v, want ShortBreak", m.engine.Mode())
	}
	if m.engine.SecondsRemaining() != 300 {
		t.Fatalf("remaining = %d, want 300", m.engine.SecondsRemaining())
	}

	m, _ = sendKey(t, m, 'l')
	if m.engine.Mode() != timer.LongBreak {
		t.Fatalf("mode = %v, want LongBreak", m.engine.Mode())
	}

	m, _ = sendKey(t, m, 'w')
	if m.engine.Mode() != timer.Work {
		t.Fatalf("mode = %v, want Work", m.engine.Mode())
	}
}

func TestSameModeKeyIsNoop(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	m, _ = sendKey(t, m, 's')
	m, _ = sendTick(t, m)
	before := m.engine.Snapshot()

	m, cmd := sendKey(t, m, 'w')
	if m.engine.Snapshot() != before {
		t.Fatalf("selecting the current mode mutated state")
	}
	if cmd != nil {
		t.Fatalf("same-mode select scheduled a command")
	}
}

func TestTabCyclesModes(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	want := []timer.Mode{timer.ShortBreak, timer.LongBreak, timer.Work}
	for _, mode := range want {
		next, _ := m.Update(tab)
		m = next.(Model)
		if m.engine.Mode() != mode {
			t.Fatalf("tab cycled to %v, want %v", m.engine.Mode(), mode)
		}
	}
}

func TestResetRestoresCurrentMode(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	m, _ = sendKey(t, m, 'b')
	m, _ = sendKey(t, m, 's')
	m, _ = sendTick(t, m)

	m, _ = sendKey(t, m, 'r')
	if m.engine.Mode() != timer.ShortBreak {
		t.Fatalf("reset changed mode to %v", m.engine.Mode())
	}
	if m.engine.SecondsRemaining() != 300 {
		t.Fatalf("reset remaining = %d, want 300", m.engine.SecondsRemaining())
	}
	if m.engine.IsActive() {
		t.Fatalf("reset left the timer running")
	}
}

func TestWorkCompletionIsRecorded(t *testing.T) {
	store := openTestStore(t)
	settings := timer.Settings{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, SessionsBeforeLongBreak: 2}
	m := newTestModel(t, settings, store)

	m, _ = sendKey(t, m, 's')
	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = sendTick(t, m)
	}

	if m.engine.Mode() != timer.ShortBreak {
		t.Fatalf("mode after work interval = %v, want ShortBreak", m.engine.Mode())
	}
	if m.engine.IsActive() {
		t.Fatalf("engine should stop at the boundary")
	}
	if cmd != nil {
		t.Fatalf("chain should die with the registration at interval end")
	}
	if m.summary.WorkSessions != 1 {
		t.Fatalf("summary.WorkSessions = %d, want 1", m.summary.WorkSessions)
	}
	if len(m.today) != 1 {
		t.Fatalf("history rows = %d, want 1", len(m.today))
	}
	if m.today[0].SessionNumber != 1 {
		t.Fatalf("recorded session number = %d, want 1", m.today[0].SessionNumber)
	}
	if m.Message == "" {
		t.Fatalf("completion should announce the next mode")
	}
}

func TestBreakCompletionRecordedWithoutSessionNumber(t *testing.T) {
	store := openTestStore(t)
	settings := timer.Settings{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, SessionsBeforeLongBreak: 2}
	m := newTestModel(t, settings, store)

	m, _ = sendKey(t, m, 'b')
	m, _ = sendKey(t, m, 's')
	for i := 0; i < 60; i++ {
		m, _ = sendTick(t, m)
	}

	if m.engine.Mode() != timer.Work {
		t.Fatalf("mode after break = %v, want Work", m.engine.Mode())
	}
	if len(m.today) != 1 {
		t.Fatalf("history rows = %d, want 1", len(m.today))
	}
	if m.today[0].SessionNumber != 0 {
		t.Fatalf("break rows must not carry a session number, got %d", m.today[0].SessionNumber)
	}
	if m.engine.SessionsCompleted() != 0 {
		t.Fatalf("break completion counted a session")
	}
}

func TestThemeKeyCycles(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	first := m.themeName
	m, _ = sendKey(t, m, 't')
	if m.themeName == first {
		t.Fatalf("theme did not change")
	}
	m, _ = sendKey(t, m, 't')
	if m.themeName != first {
		t.Fatalf("theme cycle did not wrap back to %q", first)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, timer.DefaultSettings(), nil)
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
}
