package gol

import "errors"

var (
	// ErrInvalidParams is returned before any allocation when Params cannot describe a run.
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrUnknownPattern is returned for a pattern selector with no seed behind it.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrGridTooLarge is returned when the two cell buffers would exceed MaxCells.
	ErrGridTooLarge = errors.New("grid too large")
	// ErrRendererUnavailable is wrapped by frame sinks that cannot reach their backend.
	// The run continues without visual output once it is seen.
	ErrRendererUnavailable = errors.New("renderer unavailable")
)
