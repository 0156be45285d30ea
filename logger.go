package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// newLogger creates the process logger. Output goes to w, which must not
// be the stream a bar reads from.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(ErrInvalidConfig, "log level %q", level), err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "go-clock",
		ReportTimestamp: true,
	}), nil
}
