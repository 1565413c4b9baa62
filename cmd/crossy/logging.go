package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

func parseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// newFileLogger logs to ~/.crossy/crossy.log, since anything written to
// the terminal would tear the alternate screen. It falls back to discarding
// output when the file cannot be opened.
func newFileLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".crossy")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "crossy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	return newLogger(w, "crossy"), closeFn
}

// newLogger creates the process logger and makes it the default.
func newLogger(w io.Writer, prefix string) *log.Logger {
	lvl, _ := parseLevel(flagLogLevel)
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	log.SetDefault(logger)
	return logger
}
