package scale

import "time"

// Options is the presentation and behavior configuration of a scale.
// Colors and line geometry live with the rendering layer; only the fields
// that drive the interaction model are held here.
type Options struct {
	// Spacing is the cell distance between adjacent ticks. Must be positive.
	Spacing float64

	// Vertical orients the scale top-to-bottom instead of left-to-right.
	// Pass-through for renderers; the interaction model is axis-agnostic.
	Vertical bool

	// AnimDuration is used for programmatic positioning (initial placement
	// and SetValue). Zero means jump without animating.
	AnimDuration time.Duration

	// ShowMinorLabels labels minor ticks in addition to major ones
	ShowMinorLabels bool

	// Formatter overrides the default tick label. Receives the tick index
	// and whether the tick is major.
	Formatter func(index int, major bool) string
}

// Interaction timing. The debounce window coalesces scroll bursts; the
// settle animation brings the offset to rest exactly on a tick.
const (
	// DebounceDelay is the quiet period after the last scroll event before
	// the scale snaps to the nearest tick.
	DebounceDelay = 250 * time.Millisecond

	// SettleDuration is the length of the snap animation.
	SettleDuration = 120 * time.Millisecond

	// frameInterval paces animation frames and attachment retries.
	frameInterval = time.Second / 60
)
