package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostics logger. Output is meant for stderr so it
// never mixes with task output. Unknown level names keep the warn default.
func NewLogger(w io.Writer, level string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "todo",
	})

	if level != "" {
		if lvl, err := log.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		}
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
