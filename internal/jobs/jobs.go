package jobs

import (
	"errors"
	"time"

	"github.com/adlio/alfrusco/internal/log"
)

// Job names a recurring background task and how it runs. MaxAge is the
// freshness window: once the last successful completion is older than
// this, the next invocation re-spawns the command.
type Job struct {
	Name    string
	MaxAge  time.Duration
	Command Command
}

// Result is what one invocation learns about a job: the policy decision,
// a renderable status line, and whether this invocation triggered a
// refresh.
type Result struct {
	Decision  Decision
	Display   Display
	Refreshed bool
}

// Run performs one invocation's worth of work for a job: load the status
// record, decide, spawn if due, and render. No error escapes: every
// failure inside the subsystem degrades to a conservative state so the
// host workflow's own output is never aborted.
func Run(store *Store, sp *Spawner, job Job, now time.Time) Result {
	logger := log.WithComponent("jobs")

	st, err := store.Load(job.Name)
	if err != nil {
		var corrupt *CorruptRecordError
		if errors.As(err, &corrupt) {
			logger.Warn("treating corrupt status record as no history", "job", job.Name, "path", corrupt.Path)
		} else {
			logger.Warn("could not read status record", "job", job.Name, "error", err)
		}
		st = nil
	}

	held := Held(store.LockPath(job.Name))
	d := Decide(st, held, job.MaxAge, now)

	refreshed := false
	if d.ShouldSpawn {
		switch err := sp.Spawn(job.Name, job.Command, now); {
		case errors.Is(err, ErrLockHeld):
			// Lost the race to a sibling invocation; the job is running.
			d = Decision{State: StateRunning}
		case err != nil:
			logger.Warn("background spawn failed", "job", job.Name, "error", err)
		default:
			refreshed = true
		}
	}

	return Result{
		Decision:  d,
		Display:   Render(st, d.State, now),
		Refreshed: refreshed,
	}
}
