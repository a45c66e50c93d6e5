package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/adlio/alfrusco/internal/log"
)

// Environment contract between a spawning invocation and the detached
// runner process it launches.
const (
	EnvJobName    = "ALFRUSCO_JOB_NAME"
	EnvJobRoot    = "ALFRUSCO_JOB_ROOT"
	EnvJobCommand = "ALFRUSCO_JOB_COMMAND"
)

const jobEnvPrefix = "ALFRUSCO_JOB_"

// Command describes the external work a job performs. Exactly one of
// Argv (executed directly) or ShellLine (run through /bin/sh -c) should
// be set.
type Command struct {
	Argv      []string `json:"argv,omitempty"`
	ShellLine string   `json:"shell_line,omitempty"`
}

// Argv builds a Command executed directly, bypassing the shell.
func Argv(program string, args ...string) Command {
	return Command{Argv: append([]string{program}, args...)}
}

// Shell builds a Command from a raw shell line. Use ShellJoin to embed
// untrusted arguments safely.
func Shell(line string) Command {
	return Command{ShellLine: line}
}

var plainShellWord = regexp.MustCompile(`^[A-Za-z0-9_%+=:,./-]+$`)

// ShellJoin quotes each word so it survives /bin/sh parsing as exactly
// one argument, with no expansions, and joins them with spaces.
func ShellJoin(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = shellQuote(w)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if plainShellWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Spawner launches background jobs detached from the calling invocation.
type Spawner struct {
	store  *Store
	exe    string
	logger *slog.Logger
}

// NewSpawner creates a Spawner that re-invokes the current executable as
// the detached job runner.
func NewSpawner(store *Store) *Spawner {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return &Spawner{store: store, exe: exe, logger: log.WithComponent("jobs")}
}

// Spawn launches the job's command in a detached runner process. Before
// returning it acquires the job lock, records the new started_at, and
// starts the runner, so sibling invocations observe the job as running
// even though this process never waits for it.
//
// It returns ErrLockHeld when another invocation won the spawn race;
// callers skip that silently. Any other error means the runner could not
// be started, which the next invocation will observe as a failed run.
func (sp *Spawner) Spawn(name string, cmd Command, now time.Time) error {
	if cmd.ShellLine == "" && len(cmd.Argv) == 0 {
		return fmt.Errorf("job %q: empty command", name)
	}

	lck, err := AcquireLock(sp.store.LockPath(name))
	if err != nil {
		return err
	}

	st := sp.loadForSpawn(name)
	st.RunID = uuid.NewString()
	st.StartedAt = now

	payload, err := json.Marshal(cmd)
	if err != nil {
		_ = lck.Release()
		return fmt.Errorf("encode job command: %w", err)
	}

	// A failed save is non-fatal: the policy recomputes from whatever is
	// actually on disk next invocation.
	if err := sp.store.Save(name, st); err != nil {
		sp.logger.Warn("could not persist spawn record", "job", name, "error", err)
	}

	logf, err := os.OpenFile(sp.store.LogPath(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		sp.markFailedStart(name, st, now)
		_ = lck.Release()
		return fmt.Errorf("open job log: %w", err)
	}

	run := exec.Command(sp.exe)
	run.Env = append(environWithoutJobVars(),
		EnvJobName+"="+name,
		EnvJobRoot+"="+sp.store.Root(),
		EnvJobCommand+"="+string(payload),
	)
	// The runner's output goes to the job log, never to our stdout: our
	// stdout is the response document the job must not corrupt.
	run.Stdout = logf
	run.Stderr = logf
	run.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	// The locked descriptor becomes fd 3 in the runner. The flock rides
	// along with it, so the lock is held continuously from here until
	// the runner exits — even if the runner is killed.
	run.ExtraFiles = []*os.File{lck.File()}

	if err := run.Start(); err != nil {
		_ = logf.Close()
		sp.markFailedStart(name, st, now)
		_ = lck.Release()
		return fmt.Errorf("start job runner: %w", err)
	}
	_ = logf.Close()

	// Close our copy of the lock descriptor without unlocking; the
	// runner's inherited copy keeps the flock alive.
	_ = lck.Handoff()

	// Reap the runner if it exits while this invocation is still alive.
	// We never block on it; once this process exits, init adopts the
	// session-detached runner.
	go func() { _ = run.Wait() }()

	sp.logger.Debug("spawned background job", "job", name, "run_id", st.RunID)
	return nil
}

// loadForSpawn reads the existing record so the last completion survives
// the refresh (a stale job's previous output stays usable while the new
// run is in flight). Unreadable records degrade to a blank one.
func (sp *Spawner) loadForSpawn(name string) *Status {
	st, err := sp.store.Load(name)
	var corrupt *CorruptRecordError
	switch {
	case errors.As(err, &corrupt):
		sp.logger.Warn("discarding corrupt status record", "job", name, "path", corrupt.Path, "error", corrupt.Err)
	case err != nil:
		sp.logger.Warn("could not read status record", "job", name, "error", err)
	case st != nil:
		return st
	}
	return &Status{Outcome: OutcomeNone}
}

// markFailedStart records a completed-with-failure run for a job whose
// runner could not be started, so the next invocation sees Failed and
// retries rather than NoHistory forever.
func (sp *Spawner) markFailedStart(name string, st *Status, now time.Time) {
	fin := now
	st.FinishedAt = &fin
	st.Outcome = OutcomeFailure
	st.Duration = 0
	if err := sp.store.Save(name, st); err != nil {
		sp.logger.Warn("could not persist failed-start record", "job", name, "error", err)
	}
}

// environWithoutJobVars returns the current environment stripped of the
// runner contract variables, so neither the runner's job command nor a
// workflow binary launched by it re-enters runner mode.
func environWithoutJobVars() []string {
	env := os.Environ()
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, jobEnvPrefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}
