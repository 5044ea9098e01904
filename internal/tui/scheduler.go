package tui

import (
	"time"

	"pomo/internal/timer"
)

// tickSource implements timer.Scheduler on the bubbletea tick chain. Arming
// bumps the generation and records the callback; cancelling bumps it again,
// so a TickMsg still in flight from the old chain no longer matches and is
// discarded. At most one registration is ever live, which is exactly the
// engine's contract: a cancelled registration can never deliver a beat into
// current state.
type tickSource struct {
	gen    int
	period time.Duration
	fn     func()
}

func (s *tickSource) Every(period time.Duration, fn func()) timer.CancelFunc {
	s.gen++
	s.period = period
	s.fn = fn
	gen := s.gen
	return func() {
		if s.gen == gen {
			s.gen++
			s.fn = nil
		}
	}
}

// armed reports whether a registration is live.
func (s *tickSource) armed() bool { return s.fn != nil }

// fire runs the registered callback if msg belongs to the live registration,
// reporting whether it did.
func (s *tickSource) fire(msg TickMsg) bool {
	if s.fn == nil || msg.Gen != s.gen {
		return false
	}
	s.fn()
	return true
}
