package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// newLogger creates a timestamped logger at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	}), nil
}

// openLogFile opens path for appending, creating parent directories. An empty
// path selects ~/.tetris/tetris.log.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return nil, fmt.Errorf("no home directory for the default log file, use --log-file")
		}
		path = filepath.Join(dir, "tetris.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
