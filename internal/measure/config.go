// Package measure defines the value-range configuration for a measurement
// unit, the conversion between paired units, and the value DTO published to
// observers.
package measure

import (
	"fmt"
	"math"
	"strconv"
)

// Config describes the value range of one measurement unit.
// Immutable once constructed; validate with Validate before use.
type Config struct {
	// Unit is the display label, e.g. "kg" or "lb"
	Unit string

	// Min and Max bound every value published for this unit
	Min float64
	Max float64

	// MinorStep is the value distance between adjacent ticks
	MinorStep float64

	// MajorStep is the value distance between emphasized (labeled) ticks.
	// Must be a positive integer multiple of MinorStep.
	MajorStep float64

	// DecimalPlaces controls default label formatting
	DecimalPlaces int

	// ConversionFactor converts a value in this unit to the paired unit,
	// with the primary unit as the base of the pairing
	ConversionFactor float64

	// Initial is the value the scale starts at
	Initial float64
}

// stepRatioTolerance bounds how far MajorStep/MinorStep may sit from a whole
// number before the configuration is rejected. Keeps non-integer steps like
// 0.1/1.0 usable without falling into float-modulo traps.
const stepRatioTolerance = 1e-6

// Validate checks the configuration invariants. It returns the first
// violation found, wrapped around a package sentinel error.
func (c Config) Validate() error {
	if math.IsNaN(c.Min) || math.IsInf(c.Min, 0) ||
		math.IsNaN(c.Max) || math.IsInf(c.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidRange, c.Min, c.Max)
	}
	if c.Min >= c.Max {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidRange, c.Min, c.Max)
	}
	if !(c.MinorStep > 0) {
		return fmt.Errorf("%w: minor step %v must be positive", ErrInvalidStep, c.MinorStep)
	}
	if !(c.MajorStep > 0) {
		return fmt.Errorf("%w: major step %v must be positive", ErrInvalidStep, c.MajorStep)
	}
	if _, ok := c.stepRatio(); !ok {
		return fmt.Errorf("%w: major step %v is not a multiple of minor step %v",
			ErrStepMismatch, c.MajorStep, c.MinorStep)
	}
	if c.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal places %d must not be negative", ErrInvalidStep, c.DecimalPlaces)
	}
	if c.Initial < c.Min || c.Initial > c.Max {
		return fmt.Errorf("%w: initial value %v outside [%v, %v]",
			ErrInitialOutOfRange, c.Initial, c.Min, c.Max)
	}
	return nil
}

// stepRatio returns MajorStep/MinorStep rounded to the nearest integer and
// whether the ratio is close enough to that integer to count as a multiple.
func (c Config) stepRatio() (int, bool) {
	ratio := c.MajorStep / c.MinorStep
	rounded := math.Round(ratio)
	if rounded < 1 || math.Abs(ratio-rounded) > stepRatioTolerance*rounded {
		return 0, false
	}
	return int(rounded), true
}

// MajorEvery returns how many minor ticks sit between consecutive major
// ticks. Only meaningful on a validated config.
func (c Config) MajorEvery() int {
	every, ok := c.stepRatio()
	if !ok {
		return 1
	}
	return every
}

// Clamp bounds v to [Min, Max].
func (c Config) Clamp(v float64) float64 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// Format renders v with the configured number of decimal places.
func (c Config) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', c.DecimalPlaces, 64)
}
