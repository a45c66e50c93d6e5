package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/adlio/alfrusco/internal/log"
)

// RunFromEnv checks whether this process was launched as a detached job
// runner and, if so, runs the job to completion. It returns true when
// the invocation was a runner and the caller must exit without producing
// workflow output.
//
// The runner holds the job's flock through the descriptor inherited from
// the spawning invocation; the kernel releases it when this process
// exits, whatever the exit path.
func RunFromEnv() (bool, error) {
	name := os.Getenv(EnvJobName)
	if name == "" {
		return false, nil
	}

	root := os.Getenv(EnvJobRoot)
	payload := os.Getenv(EnvJobCommand)
	if root == "" || payload == "" {
		return true, fmt.Errorf("job runner: incomplete environment for job %q", name)
	}

	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		return true, fmt.Errorf("job runner: decode command for job %q: %w", name, err)
	}

	return true, runJob(NewStore(root), name, cmd)
}

// runJob executes the job command, waits for it, and writes the
// completion fields of the status record. The job's exit status becomes
// the recorded outcome; a failing job is not an error of the runner.
func runJob(store *Store, name string, cmd Command) error {
	logger := log.WithJob(name)

	var c *exec.Cmd
	switch {
	case cmd.ShellLine != "":
		c = exec.Command("/bin/sh", "-c", cmd.ShellLine)
	case len(cmd.Argv) > 0:
		c = exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	default:
		return fmt.Errorf("job runner: empty command for job %q", name)
	}
	c.Env = environWithoutJobVars()
	c.Dir = store.Dir(name)
	// Our own stdout/stderr already point at the job log.
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	runErr := c.Run()

	st, err := store.Load(name)
	if err != nil || st == nil {
		// The spawn record is gone or unreadable; reconstruct enough of
		// it for the completion to make sense.
		st = &Status{StartedAt: time.Now()}
	}
	fin := time.Now()
	if fin.Before(st.StartedAt) {
		fin = st.StartedAt
	}
	st.FinishedAt = &fin
	st.Duration = fin.Sub(st.StartedAt)
	if runErr != nil {
		st.Outcome = OutcomeFailure
		logger.Warn("job command failed", "run_id", st.RunID, "error", runErr)
	} else {
		st.Outcome = OutcomeSuccess
		logger.Debug("job command succeeded", "run_id", st.RunID, "duration", st.Duration)
	}

	if err := store.Save(name, st); err != nil {
		return fmt.Errorf("persist completion for job %q: %w", name, err)
	}
	return nil
}
