package chart

import "errors"

var (
	// ErrInvalidInput is returned for empty or mismatched series and for
	// configurations that cannot be drawn.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO is returned when a canvas cannot be written to its destination.
	ErrIO = errors.New("io error")

	// ErrCanvasClosed is returned when a released canvas is used again.
	ErrCanvasClosed = errors.New("canvas closed")
)
