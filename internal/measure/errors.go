package measure

import "errors"

// Configuration errors returned by Config.Validate. These are the only
// errors the picker surfaces to callers; everything past construction is
// absorbed to keep the interaction responsive.
var (
	// ErrInvalidRange indicates min/max are not a proper finite interval
	ErrInvalidRange = errors.New("invalid value range")

	// ErrInvalidStep indicates a zero or negative tick step
	ErrInvalidStep = errors.New("invalid tick step")

	// ErrStepMismatch indicates the major step is not a multiple of the minor step
	ErrStepMismatch = errors.New("major step not a multiple of minor step")

	// ErrInitialOutOfRange indicates the initial value falls outside the range
	ErrInitialOutOfRange = errors.New("initial value out of range")

	// ErrInvalidFactor indicates a conversion factor that cannot be inverted
	ErrInvalidFactor = errors.New("invalid conversion factor")
)
