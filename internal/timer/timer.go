// Package timer implements the pomodoro countdown state machine: alternating
// work and break intervals with automatic mode rotation and a long break
// after a configurable number of completed work sessions.
package timer

import "fmt"

// Mode identifies the type of interval the timer is counting down.
type Mode int

const (
	Work Mode = iota
	ShortBreak
	LongBreak
)

// String returns the stable identifier used in storage and logs.
func (m Mode) String() string {
	switch m {
	case Work:
		return "work"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	}
	return "unknown"
}

// Label returns the name shown in the UI.
func (m Mode) Label() string {
	switch m {
	case Work:
		return "Work"
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	}
	return "Unknown"
}

// Settings fixes the interval lengths and long-break cadence for the
// lifetime of an engine. All fields must be positive.
type Settings struct {
	WorkMinutes             int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
}

// DefaultSettings returns the classic 25/5/15 pomodoro with a long break
// every fourth session.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}
}

// Validate reports the first non-positive field. A failing Settings value is
// a configuration error; it must be rejected at startup.
func (s Settings) Validate() error {
	switch {
	case s.WorkMinutes <= 0:
		return fmt.Errorf("work minutes must be positive, got %d", s.WorkMinutes)
	case s.ShortBreakMinutes <= 0:
		return fmt.Errorf("short break minutes must be positive, got %d", s.ShortBreakMinutes)
	case s.LongBreakMinutes <= 0:
		return fmt.Errorf("long break minutes must be positive, got %d", s.LongBreakMinutes)
	case s.SessionsBeforeLongBreak <= 0:
		return fmt.Errorf("sessions before long break must be positive, got %d", s.SessionsBeforeLongBreak)
	}
	return nil
}

// Duration returns the configured length of a mode in seconds.
func (s Settings) Duration(m Mode) int {
	switch m {
	case ShortBreak:
		return s.ShortBreakMinutes * 60
	case LongBreak:
		return s.LongBreakMinutes * 60
	default:
		return s.WorkMinutes * 60
	}
}
