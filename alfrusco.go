// Package alfrusco is a toolkit for writing Alfred script-filter
// workflows in Go. It renders the JSON response document Alfred
// expects on stdout, manages workflow configuration from the Alfred
// script environment, and keeps expensive work out of the keystroke
// path by running it as detached background jobs with durable status
// records.
package alfrusco

import (
	"fmt"
	"io"
	"os"

	"github.com/adlio/alfrusco/internal/jobs"
	"github.com/adlio/alfrusco/internal/log"
)

// Runnable is the workflow body. Run populates the workflow's response
// items; any returned error is rendered as a result row rather than
// aborting the invocation.
type Runnable interface {
	Run(wf *Workflow) error
}

// RunnableFunc adapts a plain function to the Runnable interface.
type RunnableFunc func(wf *Workflow) error

func (f RunnableFunc) Run(wf *Workflow) error {
	return f(wf)
}

// Execute is the workflow entry point. It dispatches background-runner
// and clipboard re-invocations, resolves configuration, wires logging,
// handles housekeeping queries, runs the workflow, and writes the
// response document to out. Alfred owns stdout, so everything else
// goes to stderr and the workflow log.
func Execute(provider ConfigProvider, runnable Runnable, out io.Writer) {
	if handled, err := jobs.RunFromEnv(); handled {
		if err != nil {
			fmt.Fprintf(os.Stderr, "background job runner: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if handleClipboard() {
		return
	}

	cfg, err := provider.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "alfrusco: %v\n", err)
		writeEmptyItems(out)
		os.Exit(1)
	}

	if err := setupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "alfrusco: %v\n", err)
	}

	wf := NewWorkflow(cfg)
	if handleMagicArgs(wf, os.Args[1:]) {
		writeEmptyItems(out)
		return
	}

	if err := runnable.Run(wf); err != nil {
		log.WithComponent("workflow").Error("workflow run failed", "error", err)
		wf.response.PrependItems(errorItem(err))
	}

	wf.finalize()
	if err := wf.response.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "alfrusco: write response: %v\n", err)
		os.Exit(1)
	}
}

// writeEmptyItems emits a valid empty response so Alfred does not show
// a JSON parse error when the workflow cannot run at all.
func writeEmptyItems(out io.Writer) {
	_ = NewResponse().Write(out)
}
