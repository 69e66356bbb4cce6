// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn, error
	File   string    // rotating log file; takes precedence over Writer
	Writer io.Writer // defaults to os.Stderr
}

// New creates a logger and the function that releases its output.
// Log files rotate at 5 MB and keep three backups.
func New(opts Options) (*log.Logger, func() error) {
	w := opts.Writer
	closeFn := func() error { return nil }

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
		}
		w = lj
		closeFn = lj.Close
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "prenoms",
		Level:           ParseLevel(opts.Level),
		ReportTimestamp: opts.File != "",
	})
	return logger, closeFn
}

// ParseLevel converts a level name, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
