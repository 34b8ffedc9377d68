package scale

import (
	"fmt"
	"math"

	"github.com/mfranzen/caliper/internal/measure"
)

// Mapper is the affine transform between a scroll offset (in screen cells)
// and a domain value. Offset 0 corresponds to the range minimum; each
// Spacing cells of offset advance the value by one minor step.
type Mapper struct {
	spacing float64
	step    float64
	min     float64
}

// NewMapper builds the transform for the given range and tick spacing.
// Spacing and the minor step must be strictly positive; anything else is a
// configuration error, rejected before interaction begins.
func NewMapper(cfg measure.Config, spacing float64) (Mapper, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return Mapper{}, fmt.Errorf("%w: spacing %v must be positive and finite", ErrInvalidSpacing, spacing)
	}
	if !(cfg.MinorStep > 0) {
		return Mapper{}, fmt.Errorf("%w: minor step %v must be positive", measure.ErrInvalidStep, cfg.MinorStep)
	}
	return Mapper{spacing: spacing, step: cfg.MinorStep, min: cfg.Min}, nil
}

// OffsetToValue maps a scroll offset to its domain value.
func (m Mapper) OffsetToValue(offset float64) float64 {
	return offset/m.spacing*m.step + m.min
}

// ValueToOffset maps a domain value to the scroll offset that displays it.
// Exact inverse of OffsetToValue modulo floating-point rounding.
func (m Mapper) ValueToOffset(value float64) float64 {
	return (value - m.min) * m.spacing / m.step
}

// SnapOffset returns the nearest offset that rests exactly on a tick.
func (m Mapper) SnapOffset(offset float64) float64 {
	return math.Round(offset/m.spacing) * m.spacing
}

// Spacing returns the configured cell distance between adjacent ticks.
func (m Mapper) Spacing() float64 {
	return m.spacing
}
