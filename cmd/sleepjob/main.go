// Command sleepjob is a demo workflow whose background job is a plain
// /bin/sleep. While the sleep is running the script filter reruns every
// half second and shows a status row above a single Google link.
package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/adlio/alfrusco"
)

type sleepCommand struct {
	duration time.Duration
}

func (c sleepCommand) Run(wf *alfrusco.Workflow) error {
	wf.Response().SkipKnowledge(true)
	wf.Response().Rerun(500 * time.Millisecond)

	wf.BackgroundJobItem("sleep", c.duration,
		alfrusco.Program("/bin/sleep", strconv.Itoa(int(c.duration.Seconds()))))

	wf.AppendItem(alfrusco.NewURLItem("Google", "https://www.google.com").Item())
	return nil
}

func main() {
	seconds := flag.Int("duration-in-seconds", 5, "how long the background sleep runs")
	flag.Parse()

	cmd := sleepCommand{duration: time.Duration(*seconds) * time.Second}
	alfrusco.Execute(alfrusco.EnvProvider{}, cmd, os.Stdout)
}
