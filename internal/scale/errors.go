package scale

import "errors"

var (
	// ErrInvalidSpacing indicates a zero or negative tick spacing
	ErrInvalidSpacing = errors.New("invalid tick spacing")

	// ErrSurfaceDetached indicates a command against a surface that has
	// no attachment yet (or anymore)
	ErrSurfaceDetached = errors.New("surface not attached")
)
