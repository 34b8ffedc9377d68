// Package scale implements the interaction model of a ruler-style value
// picker: the offset/value transform, tick derivation, and the controller
// that tracks scroll input, clamps and publishes values, and settles the
// surface onto the nearest tick after a quiet period.
package scale

import (
	"log/slog"
	"math"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mfranzen/caliper/internal/measure"
)

// State is the controller's position in its interaction lifecycle.
type State int

const (
	// Detached means the surface is not laid out yet (or never attached)
	Detached State = iota

	// Idle means the value is settled and the controller is listening
	Idle

	// Scrolling means offset events are actively arriving
	Scrolling

	// Snapping means a settle animation is running and scroll events
	// are ignored until it finishes
	Snapping
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Idle:
		return "idle"
	case Scrolling:
		return "scrolling"
	case Snapping:
		return "snapping"
	}
	return "unknown"
}

// maxAttachRetries bounds the initial-positioning retry loop. After the
// retries run out the controller gives up silently: the value is still
// correct internally, only the visual offset may be unsynced.
const maxAttachRetries = 4

// animKind distinguishes the debounced snap from programmatic positioning,
// so the settled hook only fires when user interaction comes to rest.
type animKind int

const (
	animSnap animKind = iota
	animPosition
)

type animState struct {
	kind      animKind
	tag       int
	from, to  float64
	total     int
	remaining int
}

// animationFrames converts a duration to a whole number of frame steps,
// at least one so zero-ish durations still terminate.
func animationFrames(d time.Duration) int {
	n := int(math.Ceil(float64(d) / float64(frameInterval)))
	if n < 1 {
		n = 1
	}
	return n
}

// Controller owns the scrollable surface's interaction: it listens for
// offset changes, maps them to clamped domain values, publishes changes,
// and runs the debounced snap-to-tick settle behavior. It is a Bubble Tea
// component; the host forwards every message to Update and calls ScrollBy
// (or mutates the surface and calls OffsetChanged) on gesture input.
//
// Everything runs on the single tea message loop. The Snapping state is the
// only reentrancy guard: while a settle animation moves the surface, offset
// events are ignored so the animation cannot re-trigger itself.
type Controller struct {
	cfg    measure.Config
	opts   Options
	mapper Mapper
	ticks  Ticks

	surface     Surface
	ownsSurface bool

	// OnChanged publishes every distinct clamped value. Best effort: a
	// panicking observer is logged and never destabilizes the controller.
	OnChanged func(value float64)

	// OnSettled fires when a debounced snap brings the surface to rest
	// on a tick. Optional.
	OnSettled func(value float64)

	id        int64
	state     State
	value     float64
	published float64

	retries   int
	gaveUp    bool
	settleTag int
	animTag   int
	anim      *animState
	disposed  bool
}

// New builds a controller for the given range and presentation options.
// Configuration errors are returned here, before any interaction begins.
// A nil surface means the controller creates and owns a SlideSurface; the
// host is then responsible for attaching it after its first layout.
func New(cfg measure.Config, opts Options, surface Surface) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cfg, opts.Spacing)
	if err != nil {
		return nil, err
	}
	ticks, err := NewTicks(cfg, opts)
	if err != nil {
		return nil, err
	}

	owns := false
	if surface == nil {
		surface = NewSlideSurface()
		owns = true
	}

	initial := cfg.Clamp(cfg.Initial)
	return &Controller{
		cfg:         cfg,
		opts:        opts,
		mapper:      mapper,
		ticks:       ticks,
		surface:     surface,
		ownsSurface: owns,
		id:          nextControllerID(),
		state:       Detached,
		value:       initial,
		published:   initial,
	}, nil
}

// Init schedules the first positioning attempt for the frame after the next
// layout pass. Part of the tea component contract.
func (c *Controller) Init() tea.Cmd {
	return c.attachCmd()
}

// Update consumes the controller's own timer messages and ignores
// everything else. Part of the tea component contract.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if c.disposed {
		return nil
	}
	switch msg := msg.(type) {
	case attachMsg:
		if msg.id != c.id {
			return nil
		}
		return c.attemptInitialPositioning()
	case settleMsg:
		if msg.id != c.id || msg.tag != c.settleTag {
			return nil
		}
		return c.beginSnap()
	case frameMsg:
		if msg.id != c.id || c.anim == nil || msg.tag != c.anim.tag {
			return nil
		}
		return c.stepAnimation()
	}
	return nil
}

// attemptInitialPositioning moves the surface to the offset of the initial
// value, retrying once per frame while the surface has no attachment.
func (c *Controller) attemptInitialPositioning() tea.Cmd {
	if !c.surface.Attached() {
		if c.retries >= maxAttachRetries {
			if !c.gaveUp {
				c.gaveUp = true
				slog.Debug("surface never attached, leaving offset unsynced",
					"unit", c.cfg.Unit, "retries", c.retries)
			}
			return nil
		}
		c.retries++
		return c.attachCmd()
	}
	return c.moveTo(c.value)
}

// moveTo commands the surface toward the offset of value, jumping when the
// configured animation duration is zero. Command failures are swallowed:
// a surface torn down mid-flight degrades the visuals, nothing else.
func (c *Controller) moveTo(value float64) tea.Cmd {
	target := c.mapper.ValueToOffset(value)
	if c.opts.AnimDuration <= 0 {
		if err := c.surface.SetOffset(target); err != nil {
			slog.Debug("positioning command failed", "error", err)
		}
		c.state = Idle
		return nil
	}
	return c.startAnimation(animPosition, target, c.opts.AnimDuration)
}

// OffsetChanged tells the controller the surface's offset moved under
// external input. Ignored while a settle animation owns the surface or the
// surface has no attachment. Publishes the new clamped value when it
// differs from the last published one, then (re)schedules the debounced
// snap. A fresh event supersedes any pending timer via the tag bump.
func (c *Controller) OffsetChanged() tea.Cmd {
	if c.disposed || c.state == Snapping || !c.surface.Attached() {
		return nil
	}
	c.state = Scrolling

	v := c.cfg.Clamp(c.mapper.OffsetToValue(c.surface.Offset()))
	if v != c.published {
		c.value = v
		c.published = v
		c.notifyChanged(v)
	}

	c.settleTag++
	return c.settleCmd(c.settleTag)
}

// ScrollBy nudges the surface by delta cells on behalf of the host's input
// layer and reports the move. The visual offset is kept within the ruler
// (the value clamp alone already guarantees published values stay in range).
func (c *Controller) ScrollBy(delta float64) tea.Cmd {
	if c.disposed || c.state == Snapping || !c.surface.Attached() {
		return nil
	}
	maxOffset := c.mapper.Spacing() * float64(c.ticks.Count()-1)
	next := math.Min(math.Max(c.surface.Offset()+delta, 0), maxOffset)
	if err := c.surface.SetOffset(next); err != nil {
		slog.Debug("scroll command failed", "error", err)
		return nil
	}
	return c.OffsetChanged()
}

// SetValue repositions the scale programmatically. The value is clamped,
// published when it changed, and the surface is moved per the configured
// animation duration. Safe to call while detached; the visual sync then
// catches up on the next successful positioning.
func (c *Controller) SetValue(value float64) tea.Cmd {
	if c.disposed {
		return nil
	}
	v := c.cfg.Clamp(value)
	if v != c.published {
		c.value = v
		c.published = v
		c.notifyChanged(v)
	} else {
		c.value = v
	}
	if !c.surface.Attached() {
		return nil
	}
	return c.moveTo(v)
}

// beginSnap starts the settle animation toward the nearest tick. Runs when
// the debounce timer fires after a quiet period with no new scroll input.
func (c *Controller) beginSnap() tea.Cmd {
	if !c.surface.Attached() {
		c.state = Idle
		return nil
	}
	offset := c.surface.Offset()
	target := c.mapper.SnapOffset(offset)
	if target == offset {
		c.state = Idle
		c.notifySettled(target)
		return nil
	}
	return c.startAnimation(animSnap, target, SettleDuration)
}

// startAnimation suppresses the scroll listener and begins stepping the
// surface toward target, one frame per tick message.
func (c *Controller) startAnimation(kind animKind, target float64, duration time.Duration) tea.Cmd {
	c.state = Snapping
	c.settleTag++ // supersede any pending debounce
	frames := animationFrames(duration)
	c.animTag++
	c.anim = &animState{
		kind:      kind,
		tag:       c.animTag,
		from:      c.surface.Offset(),
		to:        target,
		total:     frames,
		remaining: frames,
	}
	return c.frameCmd(c.anim.tag)
}

// stepAnimation advances the settle animation by one frame. Any failure
// while commanding the surface ends the animation and resumes listening;
// an interrupted settle is a no-op, not an error.
func (c *Controller) stepAnimation() tea.Cmd {
	a := c.anim
	a.remaining--

	pos := a.to
	if a.remaining > 0 {
		progress := 1 - float64(a.remaining)/float64(a.total)
		pos = a.from + (a.to-a.from)*easeOutCubic(progress)
	}

	if err := c.surface.SetOffset(pos); err != nil {
		slog.Debug("settle animation interrupted", "error", err)
		c.finishAnimation(false)
		return nil
	}
	if a.remaining <= 0 {
		c.finishAnimation(true)
		return nil
	}
	return c.frameCmd(a.tag)
}

// finishAnimation resumes listening whether the animation completed or was
// interrupted.
func (c *Controller) finishAnimation(completed bool) {
	a := c.anim
	c.anim = nil
	c.state = Idle
	if completed && a != nil && a.kind == animSnap {
		c.notifySettled(a.to)
	}
}

// Dispose cancels the pending debounce timer and any in-flight animation,
// then releases the owned surface. Must run before the host drops the
// controller so no dangling timer message finds live state.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.settleTag++
	c.anim = nil
	c.state = Detached
	if c.ownsSurface {
		if s, ok := c.surface.(*SlideSurface); ok {
			s.Detach()
		}
	}
}

// notifyChanged invokes the observer, absorbing panics so a failing
// callback cannot corrupt controller state or stop future notifications.
func (c *Controller) notifyChanged(v float64) {
	if c.OnChanged == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("value observer panicked", "recover", r)
		}
	}()
	c.OnChanged(v)
}

func (c *Controller) notifySettled(offset float64) {
	if c.OnSettled == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("settle observer panicked", "recover", r)
		}
	}()
	c.OnSettled(c.cfg.Clamp(c.mapper.OffsetToValue(offset)))
}

// Value returns the current clamped domain value.
func (c *Controller) Value() float64 {
	return c.value
}

// Offset returns the surface's current scroll position.
func (c *Controller) Offset() float64 {
	return c.surface.Offset()
}

// State returns the controller's lifecycle state.
func (c *Controller) State() State {
	if c.disposed || !c.surface.Attached() {
		return Detached
	}
	if c.state == Detached {
		return Idle
	}
	return c.state
}

// Ready reports whether the surface is attached and the controller can be
// rendered. Hosts show a neutral placeholder until this turns true.
func (c *Controller) Ready() bool {
	return !c.disposed && c.surface.Attached()
}

// Surface exposes the underlying scrollable surface to the host's input
// layer.
func (c *Controller) Surface() Surface {
	return c.surface
}

// Config returns the range configuration the controller was built with.
func (c *Controller) Config() measure.Config {
	return c.cfg
}

// Mapper returns the offset/value transform, for renderers that translate
// screen columns to tick indices.
func (c *Controller) Mapper() Mapper {
	return c.mapper
}

// Options returns the presentation options the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Count returns the number of ticks on the scale.
func (c *Controller) Count() int {
	return c.ticks.Count()
}

// IsMajor reports whether the tick at index is a major (emphasized) tick.
func (c *Controller) IsMajor(index int) bool {
	return c.ticks.IsMajor(index)
}

// Label returns the label text of the tick at index.
func (c *Controller) Label(index int) string {
	return c.ticks.Label(index)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
