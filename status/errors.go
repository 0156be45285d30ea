package status

import "github.com/cockroachdb/errors"

var (
	// ErrStarted is returned when a status is modified or started after
	// it has already been started.
	ErrStarted = errors.New("status already started")

	// ErrInvalidColor is returned for color strings not of the form #RRGGBB.
	ErrInvalidColor = errors.New("invalid hex color")

	// ErrInvalidAlignment is returned for unknown alignment values.
	ErrInvalidAlignment = errors.New("invalid alignment")
)
