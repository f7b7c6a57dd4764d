package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger from the global flags.
// Without --log-file, logs go to fallback; a nil fallback discards them.
// The returned closer must be called before exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
