package jobs

import (
	"fmt"
	"time"
)

// Icon keys handed to the item layer, which maps them onto glyphs.
const (
	IconFirstRun = "first_run"
	IconRunning  = "running"
	IconSuccess  = "success"
	IconFailure  = "failure"
)

// Display is a short human-readable rendering of a job's status.
type Display struct {
	Headline string
	Detail   string
	IconKey  string
}

// Render turns a status record and its derived state into a status line.
// It has no side effects and is deterministic given (st, state, now).
func Render(st *Status, state State, now time.Time) Display {
	switch state {
	case StateRunning:
		var since time.Duration
		if st != nil && !st.StartedAt.IsZero() {
			since = now.Sub(st.StartedAt)
		}
		return Display{
			Headline: fmt.Sprintf("Running for %s", formatDuration(since)),
			Detail:   "output will refresh when the job completes",
			IconKey:  IconRunning,
		}
	case StateFailed:
		fin := *st.FinishedAt
		return Display{
			Headline: fmt.Sprintf("Last failed %s ago (%s), retrying",
				formatDuration(now.Sub(fin)), fin.Format("15:04:05")),
			Detail:  fmt.Sprintf("ran for %s", formatDuration(st.Duration)),
			IconKey: IconFailure,
		}
	case StateFresh, StateStale:
		fin := *st.FinishedAt
		return Display{
			Headline: fmt.Sprintf("Last succeeded %s ago (%s)",
				formatDuration(now.Sub(fin)), fin.Format("15:04:05")),
			Detail:  fmt.Sprintf("ran for %s", formatDuration(st.Duration)),
			IconKey: IconSuccess,
		}
	default:
		return Display{
			Headline: "First run in progress",
			Detail:   "no previous completion",
			IconKey:  IconFirstRun,
		}
	}
}

// formatDuration renders a duration the way a status row wants it:
// seconds precision, coarser as it grows.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
