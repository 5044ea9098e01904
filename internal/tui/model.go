package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"pomo/internal/config"
	"pomo/internal/database"
	"pomo/internal/models"
	"pomo/internal/timer"
)

// Model is the root bubbletea model. It hosts the timer engine, owns the
// tick source the engine registers with, and is the only reader of engine
// state. All mutation happens on the update loop, so engine access needs no
// locking.
type Model struct {
	engine *timer.Engine
	ticks  *tickSource
	store  *database.Store

	progress  progress.Model
	theme     Theme
	themeName string

	today   []models.Session
	summary models.DaySummary

	// prev is the engine snapshot taken after the previous operation; the
	// tick handler diffs against it to detect a finished interval.
	prev timer.Snapshot

	Message       string
	err           error
	width, height int
}

// NewModel builds the shell around a fresh engine. store may be nil, in
// which case history recording and reports are disabled.
func NewModel(settings timer.Settings, store *database.Store) (Model, error) {
	ticks := &tickSource{}
	engine, err := timer.New(settings, ticks)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		engine:    engine,
		ticks:     ticks,
		store:     store,
		progress:  progress.New(progress.WithDefaultGradient()),
		theme:     Themes[DefaultThemeName],
		themeName: DefaultThemeName,
		prev:      engine.Snapshot(),
	}
	m.progress.Width = config.TargetProgressWidth
	m.refreshHistory()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHistory re-reads today's recorded intervals from the store.
func (m *Model) refreshHistory() {
	if m.store == nil {
		return
	}
	date := time.Now().Format("2006-01-02")
	sessions, err := m.store.SessionsForDay(date)
	if err != nil {
		m.err = err
		return
	}
	summary, err := m.store.DaySummary(date)
	if err != nil {
		m.err = err
		return
	}
	m.today = sessions
	m.summary = summary
}
