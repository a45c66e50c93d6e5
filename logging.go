package alfrusco

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adlio/alfrusco/internal/log"
)

// InitLogging configures logging for standalone tools that want the
// workflow log behavior without going through Execute.
func InitLogging(provider ConfigProvider) error {
	cfg, err := provider.Config()
	if err != nil {
		return fmt.Errorf("resolve workflow config: %w", err)
	}
	return setupLogging(cfg)
}

// setupLogging routes log output to stderr and a workflow.log file in
// the cache directory. Stdout is never written to: Alfred owns it.
func setupLogging(cfg *Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logPath := filepath.Join(cfg.CacheDir, "workflow.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Stderr-only logging still beats no logging.
		log.Setup(os.Stderr, level)
		return fmt.Errorf("open workflow log file: %w", err)
	}

	log.Setup(io.MultiWriter(os.Stderr, f), level)
	return nil
}
