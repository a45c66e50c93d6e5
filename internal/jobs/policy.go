package jobs

import "time"

// State is the derived lifecycle state of a job. It is never persisted:
// it is recomputed from the status record, the lock, and the clock on
// every invocation, so a crash between transitions cannot strand a job
// in an invalid stored state.
type State string

const (
	StateNoHistory State = "no_history"
	StateRunning   State = "running"
	StateFresh     State = "fresh"
	StateStale     State = "stale"
	StateFailed    State = "failed"
)

// Decision is the outcome of a lifecycle policy evaluation.
type Decision struct {
	State       State
	ShouldSpawn bool
}

// Decide maps a loaded status record, the observed lock state, and the
// clock onto a lifecycle state and a spawn action. The rules apply in
// priority order; the lock check always wins, because a job mid-run must
// never be double-spawned even when its last recorded outcome was a
// failure from an earlier cycle.
func Decide(st *Status, lockHeld bool, maxAge time.Duration, now time.Time) Decision {
	switch {
	case lockHeld:
		return Decision{State: StateRunning}
	case st == nil || st.FinishedAt == nil:
		return Decision{State: StateNoHistory, ShouldSpawn: true}
	case st.Outcome == OutcomeFailure:
		// Failed jobs are retried on every invocation regardless of how
		// recently they ran: the host calls far more often than the
		// job's natural cadence, so trading extra work for eventual
		// success is the right deal.
		return Decision{State: StateFailed, ShouldSpawn: true}
	case now.Sub(*st.FinishedAt) >= maxAge:
		return Decision{State: StateStale, ShouldSpawn: true}
	default:
		return Decision{State: StateFresh}
	}
}
