package models

import (
	"testing"

	"pomo/internal/timer"
)

func TestModeLabelsMatchEngine(t *testing.T) {
	if ModeWork != timer.Work.String() {
		t.Fatalf("ModeWork = %q, engine says %q", ModeWork, timer.Work.String())
	}
	if ModeShortBreak != timer.ShortBreak.String() {
		t.Fatalf("ModeShortBreak = %q, engine says %q", ModeShortBreak, timer.ShortBreak.String())
	}
	if ModeLongBreak != timer.LongBreak.String() {
		t.Fatalf("ModeLongBreak = %q, engine says %q", ModeLongBreak, timer.LongBreak.String())
	}
}

func TestSessionZeroValues(t *testing.T) {
	var s Session
	if s.SessionNumber != 0 || s.DurationSeconds != 0 {
		t.Fatalf("expected zero counters by default")
	}
	if !s.StartedAt.IsZero() || !s.CompletedAt.IsZero() {
		t.Fatalf("expected zero time fields by default")
	}
}
