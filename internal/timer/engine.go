package timer

// Snapshot is a read-only copy of the engine state for the display layer.
type Snapshot struct {
	Mode              Mode
	SecondsRemaining  int
	Active            bool
	SessionsCompleted int
}

// Engine owns the timer state machine. User commands and the scheduler's
// once-per-second Tick are its only mutators; the hosting shell runs both on
// a single update loop, so Engine is not safe for concurrent use and does
// not try to be.
type Engine struct {
	settings Settings
	sched    Scheduler

	mode              Mode
	secondsRemaining  int
	active            bool
	sessionsCompleted int

	cancel CancelFunc
}

// New builds an engine in the initial state: Work mode, paused, full
// duration, zero completed sessions. Invalid settings are rejected here so
// every later operation is total.
func New(settings Settings, sched Scheduler) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		settings:         settings,
		sched:            sched,
		mode:             Work,
		secondsRemaining: settings.Duration(Work),
	}, nil
}

// Start arms the countdown. Starting an already running timer is a no-op;
// mode and remaining time are never touched.
func (e *Engine) Start() {
	if e.active {
		return
	}
	e.active = true
	e.disarm()
	e.cancel = e.sched.Every(TickInterval, e.Tick)
}

// Pause stops the countdown, preserving the remaining time exactly so a
// later Start resumes where it left off.
func (e *Engine) Pause() {
	if !e.active {
		return
	}
	e.active = false
	e.disarm()
}

// Reset stops the countdown and restores the current mode's full duration.
// Mode and session count are untouched.
func (e *Engine) Reset() {
	e.active = false
	e.disarm()
	e.secondsRemaining = e.settings.Duration(e.mode)
}

// ChangeMode switches the interval type, stopping the countdown and loading
// the new mode's full duration. Selecting the current mode does nothing.
func (e *Engine) ChangeMode(m Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	e.active = false
	e.disarm()
	e.secondsRemaining = e.settings.Duration(m)
}

// Tick advances the countdown by one second. The scheduler invokes it once
// per second while the timer runs. When the interval reaches zero the engine
// stops, rotates to the next mode at full duration, and waits for an
// explicit Start; it never re-arms itself across a mode boundary.
func (e *Engine) Tick() {
	if e.secondsRemaining <= 1 {
		e.secondsRemaining = 0
		e.active = false
		e.disarm()
		e.complete()
		return
	}
	e.secondsRemaining--
}

// complete rotates modes after an interval hits zero. A finished work
// session counts toward the long-break cadence; finished breaks of either
// kind always return to work.
func (e *Engine) complete() {
	switch e.mode {
	case Work:
		e.sessionsCompleted++
		if e.sessionsCompleted%e.settings.SessionsBeforeLongBreak == 0 {
			e.mode = LongBreak
		} else {
			e.mode = ShortBreak
		}
	default:
		e.mode = Work
	}
	e.secondsRemaining = e.settings.Duration(e.mode)
}

// disarm cancels the live scheduler registration, if any. Always called
// before arming a new one; duplicate registrations would double the
// countdown speed.
func (e *Engine) disarm() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) Mode() Mode             { return e.mode }
func (e *Engine) SecondsRemaining() int  { return e.secondsRemaining }
func (e *Engine) IsActive() bool         { return e.active }
func (e *Engine) SessionsCompleted() int { return e.sessionsCompleted }
func (e *Engine) Settings() Settings     { return e.settings }

// Clock returns the remaining time as a zero-padded mm:ss string.
func (e *Engine) Clock() string { return FormatClock(e.secondsRemaining) }

// Snapshot copies the current state for display or diffing.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:              e.mode,
		SecondsRemaining:  e.secondsRemaining,
		Active:            e.active,
		SessionsCompleted: e.sessionsCompleted,
	}
}
