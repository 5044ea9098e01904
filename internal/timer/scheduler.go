package timer

import "time"

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// CancelFunc tears down a scheduler registration. Calling it more than once
// is safe; once it returns, the registration delivers no further callbacks
// (a callback already dispatched may still complete, the engine tolerates
// that by tagging registrations, see the hosting shell).
type CancelFunc func()

// Scheduler is the single environment capability the engine needs: a
// recurring callback at roughly the given period. The hosting shell injects
// an implementation and serializes its callbacks with user commands on one
// update loop.
//
// The engine keeps at most one live registration and always cancels the
// previous one before arming a new one. Implementations must honor a cancel
// synchronously: after Cancel returns, the engine will never observe another
// callback from that registration.
type Scheduler interface {
	Every(period time.Duration, fn func()) CancelFunc
}
