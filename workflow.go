package alfrusco

import (
	"path/filepath"
	"time"

	"github.com/adlio/alfrusco/internal/jobs"
)

// Workflow accumulates result items over the course of one invocation
// and carries the configuration and background-job machinery.
type Workflow struct {
	Config *Config

	response      *Response
	filterKeyword string
	sticky        []*Item
	logFile       string
	jobStore      *jobs.Store
	jobSpawner    *jobs.Spawner
}

// NewWorkflow builds a workflow from a resolved configuration. Job
// state lives under <cache>/jobs.
func NewWorkflow(cfg *Config) *Workflow {
	store := jobs.NewStore(filepath.Join(cfg.CacheDir, "jobs"))
	return &Workflow{
		Config:     cfg,
		response:   NewResponse(),
		logFile:    filepath.Join(cfg.CacheDir, "workflow.log"),
		jobStore:   store,
		jobSpawner: jobs.NewSpawner(store),
	}
}

// Response exposes the response under construction so workflows can set
// rerun intervals, cache directives, and the like.
func (wf *Workflow) Response() *Response {
	return wf.response
}

// SetFilterKeyword enables fuzzy filtering: after the workflow runs,
// its items are matched against the keyword and re-ranked, with
// non-matching items dropped. Items prepended or appended after
// filtering (error rows, job status rows) are unaffected.
func (wf *Workflow) SetFilterKeyword(keyword string) {
	wf.filterKeyword = keyword
}

func (wf *Workflow) AppendItem(item *Item) {
	wf.response.AppendItems(item)
}

func (wf *Workflow) AppendItems(items ...*Item) {
	wf.response.AppendItems(items...)
}

func (wf *Workflow) PrependItem(item *Item) {
	wf.response.PrependItems(item)
}

func (wf *Workflow) PrependItems(items ...*Item) {
	wf.response.PrependItems(items...)
}

// JobCommand describes what a background job executes. Build one with
// Program (direct argv, no shell) or ShellLine (run via /bin/sh -c).
type JobCommand = jobs.Command

// Program builds a JobCommand that executes program directly with the
// given arguments, bypassing the shell.
func Program(program string, args ...string) JobCommand {
	return jobs.Argv(program, args...)
}

// ShellLine builds a JobCommand that runs line via /bin/sh -c.
func ShellLine(line string) JobCommand {
	return jobs.Shell(line)
}

// ShellJoin quotes and joins words into a single shell line that is
// safe to embed in a ShellLine command.
func ShellJoin(words ...string) string {
	return jobs.ShellJoin(words...)
}

// BackgroundStatus reports the outcome of a RunInBackground call.
type BackgroundStatus struct {
	State     jobs.State
	Headline  string
	Detail    string
	IconKey   string
	Refreshed bool
}

// Running reports whether the job is currently executing.
func (s BackgroundStatus) Running() bool {
	return s.State == jobs.StateRunning || s.Refreshed
}

// RunInBackground ensures a named background job is fresh: if its last
// successful run is older than maxAge (or it has never run, or it
// failed), the command is spawned as a detached process and the current
// invocation returns immediately with a status describing the situation.
func (wf *Workflow) RunInBackground(name string, maxAge time.Duration, cmd JobCommand) BackgroundStatus {
	res := jobs.Run(wf.jobStore, wf.jobSpawner, jobs.Job{
		Name:    name,
		MaxAge:  maxAge,
		Command: cmd,
	}, time.Now())

	return BackgroundStatus{
		State:     res.Decision.State,
		Headline:  res.Display.Headline,
		Detail:    res.Display.Detail,
		IconKey:   res.Display.IconKey,
		Refreshed: res.Refreshed,
	}
}

// BackgroundJobItem runs a background job and, unless the job is fresh,
// prepends a status row describing it. Returns the status so callers
// can request a rerun while the job is in flight.
func (wf *Workflow) BackgroundJobItem(name string, maxAge time.Duration, cmd JobCommand) BackgroundStatus {
	status := wf.RunInBackground(name, maxAge, cmd)
	if status.State != jobs.StateFresh {
		wf.sticky = append(wf.sticky,
			NewItem(status.Headline).
				WithSubtitle(status.Detail).
				Icon(Icon{Path: iconForKey(status.IconKey)}).
				Valid(false),
		)
	}
	return status
}

// finalize applies the filter keyword to the accumulated items and
// reattaches sticky rows (job status lines) at the top so they survive
// filtering.
func (wf *Workflow) finalize() {
	if wf.filterKeyword != "" {
		wf.response.items = filterAndSortItems(wf.response.items, wf.filterKeyword)
	}
	if len(wf.sticky) > 0 {
		wf.response.PrependItems(wf.sticky...)
	}
}

func iconForKey(key string) string {
	switch key {
	case jobs.IconRunning:
		return IconSync
	case jobs.IconSuccess:
		return IconNote
	case jobs.IconFailure:
		return IconWarning
	default:
		return IconClock
	}
}
