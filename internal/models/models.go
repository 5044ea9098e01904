package models

import "time"

// Mode labels stored in the history database. They match
// timer.Mode.String().
const (
	ModeWork       = "work"
	ModeShortBreak = "short_break"
	ModeLongBreak  = "long_break"
)

// Session is one completed interval, written when the countdown reaches zero.
type Session struct {
	ID              int64
	Mode            string
	StartedAt       time.Time
	CompletedAt     time.Time
	DurationSeconds int
	SessionNumber   int // running work-session count at completion; 0 for breaks
}

// DaySummary aggregates a calendar day's completed intervals.
type DaySummary struct {
	Date         string
	WorkSessions int
	FocusSeconds int
	BreakSeconds int
}
