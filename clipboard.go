package alfrusco

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/adlio/alfrusco/internal/log"
)

// Environment contract for the clipboard re-invocation. URLItem
// modifiers set these as item variables; Alfred exports them into the
// environment when the workflow re-runs itself to perform the copy.
const (
	envCommand = "ALFRUSCO_COMMAND"
	envTitle   = "TITLE"
	envURL     = "URL"

	commandMarkdown = "markdown"
	commandRichText = "richtext"
)

// handleClipboard intercepts runs dispatched by a copy-link modifier.
// It reports true when the run was a clipboard command and the process
// should exit without invoking the workflow.
func handleClipboard() bool {
	command := os.Getenv(envCommand)
	if command == "" {
		return false
	}
	title := os.Getenv(envTitle)
	url := os.Getenv(envURL)

	logger := log.WithComponent("clipboard")
	var err error
	switch command {
	case commandMarkdown:
		err = CopyMarkdownLink(title, url)
	case commandRichText:
		err = CopyRichTextLink(title, url)
	default:
		logger.Warn("unknown clipboard command", "command", command)
		return true
	}
	if err != nil {
		logger.Error("clipboard copy failed", "command", command, "error", err)
	}
	return true
}

// CopyMarkdownLink places a [title](url) markdown link on the system
// clipboard.
func CopyMarkdownLink(title, url string) error {
	if err := clipboard.WriteAll(markdownLink(title, url)); err != nil {
		return fmt.Errorf("write markdown link to clipboard: %w", err)
	}
	return nil
}

// CopyRichTextLink places an HTML anchor on the clipboard. On macOS it
// is written as HTML flavor so pasting into rich editors produces a
// live link; elsewhere it falls back to the plain HTML text.
func CopyRichTextLink(title, url string) error {
	html := fmt.Sprintf(`<a href="%s">%s</a>`, url, title)
	if runtime.GOOS == "darwin" {
		return copyHTMLDarwin(html)
	}
	if err := clipboard.WriteAll(html); err != nil {
		return fmt.Errorf("write richtext link to clipboard: %w", err)
	}
	return nil
}

// copyHTMLDarwin sets the clipboard to HTML flavor via osascript. The
// payload is hex-encoded so no quoting of the HTML itself is needed.
func copyHTMLDarwin(html string) error {
	script := fmt.Sprintf("set the clipboard to «data HTML%s»", hex.EncodeToString([]byte(html)))
	cmd := exec.Command("osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript clipboard write: %w: %s", err, out)
	}
	return nil
}

func markdownLink(title, url string) string {
	return fmt.Sprintf("[%s](%s)", title, url)
}
