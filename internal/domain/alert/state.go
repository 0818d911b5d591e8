package alert

// Statuses the upstream feed reports for a region.
const (
	// StatusFull means an air-raid alert covers the whole region.
	StatusFull = "full"
	// StatusNull means the feed reports no active alert for the region.
	StatusNull = "null"
	// StatusNoData means the feed has no information for the region.
	StatusNoData = "no_data"
)

// State is the monitor's view of the alert condition for its region.
type State int

const (
	// StateInactive means no alert is currently raised.
	StateInactive State = iota
	// StateActive means an alert has been raised and not yet cleared.
	StateActive
)

// String returns a human-readable state name for logging.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Event is the outcome of a single decision cycle.
type Event int

const (
	// EventNone means the observed status does not change the state.
	EventNone Event = iota
	// EventRaise means the alert just became active.
	EventRaise
	// EventClear means the alert just became inactive.
	EventClear
)

// String returns a human-readable event name for logging.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventRaise:
		return "raise"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Decide maps the current state and an observed status to the next state and
// the event that transition produces. It is pure: no I/O, no shared state.
//
// An inactive alert is raised only by "full". An active alert is cleared by
// "null" or by "no_data" (the feed dropping the region counts as all-clear).
// Any other status leaves the state untouched in both directions; the feed
// emits region statuses outside this set and the monitor deliberately does
// not interpret them.
func Decide(current State, status string) (State, Event) {
	switch {
	case current == StateInactive && status == StatusFull:
		return StateActive, EventRaise
	case current == StateActive && (status == StatusNull || status == StatusNoData):
		return StateInactive, EventClear
	default:
		return current, EventNone
	}
}
