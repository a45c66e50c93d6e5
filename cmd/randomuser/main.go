// Command randomuser is a demo workflow that lists people from the
// randomuser.me API. The fetch happens in a detached background job
// that writes a cache file; the script filter itself only ever reads
// the cache, so every keystroke responds instantly.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adlio/alfrusco"
)

const apiURL = "https://randomuser.me/api/?inc=gender,name&results=50&seed=alfrusco"

type randomUserResponse struct {
	Results []struct {
		Name struct {
			Title string `json:"title"`
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
	} `json:"results"`
}

type randomUserCommand struct {
	keyword []string
}

func (c randomUserCommand) Run(wf *alfrusco.Workflow) error {
	wf.Response().SkipKnowledge(true)
	wf.SetFilterKeyword(strings.Join(c.keyword, " "))

	cachePath := filepath.Join(wf.Config.CacheDir, "randomusers.json")
	status := c.refreshCache(wf, cachePath)
	if status.Running() {
		wf.Response().Rerun(time.Second)
	}

	raw, err := os.ReadFile(cachePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read random user cache: %w", err)
	}

	var resp randomUserResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("parse random user cache: %w", err)
	}

	for _, r := range resp.Results {
		title := fmt.Sprintf("%s %s %s", r.Name.Title, r.Name.First, r.Name.Last)
		wf.AppendItem(alfrusco.NewItem(title).
			Valid(false).
			Var("NAME", title))
	}
	return nil
}

// refreshCache keeps the cache file at most ten minutes old. The fetch
// writes to a temp file and renames it over the cache so readers never
// see a partial download.
func (c randomUserCommand) refreshCache(wf *alfrusco.Workflow, cachePath string) alfrusco.BackgroundStatus {
	tmpPath := cachePath + ".tmp"
	line := alfrusco.ShellJoin("curl", "-sf", "-o", tmpPath, apiURL) +
		" && " + alfrusco.ShellJoin("mv", tmpPath, cachePath)
	return wf.BackgroundJobItem("randomusers", 10*time.Minute, alfrusco.ShellLine(line))
}

func main() {
	flag.Parse()

	cmd := randomUserCommand{keyword: flag.Args()}
	alfrusco.Execute(alfrusco.EnvProvider{}, cmd, os.Stdout)
}
