package realloc

import "time"

// EventKind classifies the informational notices the coordinator emits.
type EventKind string

const (
	// EventBoarded announces a simulated passenger boarding after a
	// station advance.
	EventBoarded EventKind = "boarded"
	// EventRACUpgraded announces the simulated wait-list promotion notice.
	EventRACUpgraded EventKind = "rac_upgraded"
	// EventSwapConfirmed announces a confirmed two-seat swap.
	EventSwapConfirmed EventKind = "swap_confirmed"
)

// Display staggering for the post-advance notice sequence.
const (
	boardingStagger = 600 * time.Millisecond
	racNoticeDelay  = 1200 * time.Millisecond
)

// Event is a presentation-level notice.  The coordinator only sequences
// events; After is the suggested display delay relative to the moment the
// batch was emitted, and scheduling it is the view's job.  Events never
// carry state transitions.
type Event struct {
	Kind    EventKind
	Message string
	After   time.Duration
}
