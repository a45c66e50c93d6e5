package alfrusco

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/adlio/alfrusco/internal/log"
)

// Magic arguments: typing one of these as the query triggers a
// housekeeping action instead of running the workflow.
const (
	magicCache   = "workflow:cache"
	magicData    = "workflow:data"
	magicOpenLog = "workflow:openlog"
)

// handleMagicArgs intercepts housekeeping queries. It reports true
// when the query was fully handled and the workflow should not run.
// A partial prefix of a magic argument instead seeds the response with
// autocomplete suggestions and lets the workflow run as usual.
func handleMagicArgs(wf *Workflow, args []string) bool {
	if len(args) == 0 {
		return false
	}
	query := strings.TrimSpace(args[len(args)-1])

	switch query {
	case magicCache:
		openPath(wf.Config.CacheDir)
		return true
	case magicData:
		openPath(wf.Config.DataDir)
		return true
	case magicOpenLog:
		openPath(wf.logFile)
		return true
	}

	lowered := strings.ToLower(query)
	if query != "" && (strings.HasPrefix("workflow:", lowered) || strings.HasPrefix(lowered, "workflow:")) {
		wf.PrependItems(
			NewItem(magicCache).
				WithSubtitle("Open the workflow cache directory").
				WithAutocomplete(magicCache).
				Valid(false),
			NewItem(magicData).
				WithSubtitle("Open the workflow data directory").
				WithAutocomplete(magicData).
				Valid(false),
			NewItem(magicOpenLog).
				WithSubtitle("Open the workflow log file").
				WithAutocomplete(magicOpenLog).
				Valid(false),
		)
	}
	return false
}

// openPath reveals a file or directory with the platform opener.
func openPath(path string) {
	opener := "open"
	if runtime.GOOS != "darwin" {
		opener = "xdg-open"
	}
	if err := exec.Command(opener, path).Start(); err != nil {
		log.WithComponent("magic").Error("open failed", "path", path, "error", err)
	}
}
