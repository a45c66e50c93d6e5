package alfrusco

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adlio/alfrusco/internal/jobs"
)

// The test binary doubles as the detached job runner when Execute's
// background machinery re-invokes it.
func TestMain(m *testing.M) {
	if handled, err := jobs.RunFromEnv(); handled {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func decodeResponse(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestExecuteWritesItems(t *testing.T) {
	var buf bytes.Buffer
	Execute(TestingProvider{Dir: t.TempDir()}, RunnableFunc(func(wf *Workflow) error {
		wf.AppendItem(NewURLItem("Google", "https://www.google.com").Item())
		return nil
	}), &buf)

	assert.Contains(t, buf.String(), `"title":"Google"`)
	doc := decodeResponse(t, buf.Bytes())
	assert.Len(t, doc["items"], 1)
}

func TestExecuteRendersErrorItem(t *testing.T) {
	var buf bytes.Buffer
	Execute(TestingProvider{Dir: t.TempDir()}, RunnableFunc(func(wf *Workflow) error {
		wf.AppendItem(NewItem("partial result"))
		return errors.New("upstream API returned 503")
	}), &buf)

	out := buf.String()
	assert.Contains(t, out, "Error: upstream API returned 503")
	// The error row is prepended above whatever the workflow produced.
	doc := decodeResponse(t, buf.Bytes())
	items := doc["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Contains(t, first["title"], "Error:")
}

func TestExecuteAppliesFilterKeyword(t *testing.T) {
	var buf bytes.Buffer
	Execute(TestingProvider{Dir: t.TempDir()}, RunnableFunc(func(wf *Workflow) error {
		wf.SetFilterKeyword("carrot")
		wf.AppendItems(
			NewItem("Apple").WithSubtitle("Fruit"),
			NewItem("Carrot").WithSubtitle("Vegetable"),
		)
		return nil
	}), &buf)

	out := buf.String()
	assert.Contains(t, out, "Carrot")
	assert.NotContains(t, out, "Apple")
}

// Full lifecycle through the public API: first invocation spawns and
// shows a status row, a later invocation finds the job fresh and shows
// only the workflow's own items.
func TestExecuteBackgroundJob(t *testing.T) {
	dir := t.TempDir()
	body := RunnableFunc(func(wf *Workflow) error {
		wf.Response().Rerun(500 * time.Millisecond)
		wf.BackgroundJobItem("greeter", time.Hour, ShellLine("echo hi"))
		wf.AppendItem(NewItem("payload"))
		return nil
	})

	var first bytes.Buffer
	Execute(TestingProvider{Dir: dir}, body, &first)
	assert.Contains(t, first.String(), "First run in progress")
	assert.Contains(t, first.String(), "payload")

	waitForJobCompletion(t, dir, "greeter")

	var second bytes.Buffer
	Execute(TestingProvider{Dir: dir}, body, &second)
	assert.NotContains(t, second.String(), "First run in progress")
	assert.NotContains(t, second.String(), "Running for")
	assert.Contains(t, second.String(), "payload")
}

// Status rows survive filtering: the user's query must not hide the
// fact that a refresh is in flight.
func TestExecuteBackgroundJobRowSurvivesFilter(t *testing.T) {
	var buf bytes.Buffer
	Execute(TestingProvider{Dir: t.TempDir()}, RunnableFunc(func(wf *Workflow) error {
		wf.SetFilterKeyword("zzzz")
		wf.BackgroundJobItem("filtered", time.Hour, ShellLine("echo hi"))
		wf.AppendItem(NewItem("Apple").WithSubtitle("Fruit"))
		return nil
	}), &buf)

	out := buf.String()
	assert.Contains(t, out, "First run in progress")
	assert.NotContains(t, out, "Apple")
}

// waitForJobCompletion polls the job store under the testing cache dir
// until the named job records a completion.
func waitForJobCompletion(t *testing.T, dir, name string) {
	t.Helper()
	cfg, err := TestingProvider{Dir: dir}.Config()
	require.NoError(t, err)
	store := jobs.NewStore(cfg.CacheDir + "/jobs")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := store.Load(name)
		if err == nil && st != nil && st.FinishedAt != nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("job %q did not complete in time", name)
}
