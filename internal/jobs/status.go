// Package jobs implements the background-job lifecycle for alfrusco
// workflows. Alfred re-invokes a workflow binary on every keystroke, so
// there is no long-lived process to hold job state: all coordination
// between invocations goes through a durable per-job status record and a
// per-job file lock under the workflow cache directory.
package jobs

import "time"

// Outcome is the recorded result of a job's most recent completed run.
type Outcome string

const (
	OutcomeNone    Outcome = "none"
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Status is the durable record for one background job. Whether the job
// is currently running is not part of the record; that is backed by the
// job lock, which survives exactly as long as the running process does.
//
// Invariant: FinishedAt, when set, is never earlier than StartedAt.
type Status struct {
	// RunID identifies the most recent spawn attempt in log output.
	RunID string `yaml:"run_id,omitempty"`

	// StartedAt is the timestamp of the most recent spawn attempt.
	StartedAt time.Time `yaml:"started_at"`

	// FinishedAt is the timestamp of the most recent completion, nil if
	// the job has never completed.
	FinishedAt *time.Time `yaml:"finished_at,omitempty"`

	Outcome Outcome `yaml:"outcome"`

	// Duration is the wall-clock length of the most recently completed
	// run.
	Duration time.Duration `yaml:"duration,omitempty"`
}
