package main

import (
	"github.com/go-logr/logr"

	"corvid/engine"
)

// setupLogger returns a logr.Logger writing to path, or a no-op logger if
// path is empty. The returned closer flushes and releases the log file;
// it is nil when there is nothing to close.
func setupLogger(path string, verbose bool) (logr.Logger, func(), error) {
	if path == "" {
		return logr.Discard(), nil, nil
	}
	return engine.NewLogger(path, verbose)
}
