package scale

import (
	"math"

	"github.com/mfranzen/caliper/internal/measure"
)

// Ticks derives the discrete tick layout of a scale from its range
// configuration: how many ticks exist, which are major, and what label each
// carries. Stateless beyond configuration.
type Ticks struct {
	cfg        measure.Config
	count      int
	majorEvery int
	showMinor  bool
	formatter  func(index int, major bool) string
}

// NewTicks derives the tick layout for cfg. The options carry the label
// formatter and the minor-label flag; rendering concerns stay with the host.
func NewTicks(cfg measure.Config, opts Options) (Ticks, error) {
	if err := cfg.Validate(); err != nil {
		return Ticks{}, err
	}
	return Ticks{
		cfg:        cfg,
		count:      int(math.Ceil((cfg.Max-cfg.Min)/cfg.MinorStep)) + 1,
		majorEvery: cfg.MajorEvery(),
		showMinor:  opts.ShowMinorLabels,
		formatter:  opts.Formatter,
	}, nil
}

// Count returns the number of ticks on the scale, endpoints included.
func (t Ticks) Count() int {
	return t.count
}

// ValueAt returns the domain value of the tick at index.
func (t Ticks) ValueAt(index int) float64 {
	return t.cfg.Min + float64(index)*t.cfg.MinorStep
}

// IsMajor reports whether the tick at index aligns to the major interval.
// The test runs on the integer tick index, not on a float remainder, so
// fractional steps like 0.1 classify correctly.
func (t Ticks) IsMajor(index int) bool {
	return index%t.majorEvery == 0
}

// Label returns the text for the tick at index. A custom formatter wins;
// otherwise major ticks (and minor ticks when enabled) format their value to
// the configured decimal places, and unlabeled ticks return "".
func (t Ticks) Label(index int) string {
	major := t.IsMajor(index)
	if t.formatter != nil {
		return t.formatter(index, major)
	}
	if major || t.showMinor {
		return t.cfg.Format(t.ValueAt(index))
	}
	return ""
}
