// Package picker composes two unit configurations into a single measurement
// picker: one ruler scale at a time, a toggle between the units, and a
// unified change event carrying the value in whichever unit is active.
package picker

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/mfranzen/caliper/internal/measure"
	"github.com/mfranzen/caliper/internal/scale"
)

// Options configures a Picker beyond the two unit ranges.
type Options struct {
	// Scale carries the presentation options handed to the embedded
	// scale controller (spacing, orientation, animation, labels).
	Scale scale.Options

	// StartSecondary selects the secondary unit as initially active
	StartSecondary bool

	// OnChanged receives a fresh Value on every settled value change and
	// on every unit toggle. Best effort; panics are logged and absorbed.
	OnChanged func(measure.Value)

	// OnSettled fires with the tick value the scale came to rest on after
	// a debounced snap. Optional; hosts use it for persistence.
	OnSettled func(measure.Value)
}

// Picker owns the active-unit flag and the current value, expressed in the
// active unit. The embedded scale controller is reconstructed on every unit
// toggle because its range configuration differs per unit; until the fresh
// controller reports Ready the host shows a neutral placeholder.
type Picker struct {
	primary   measure.Config
	secondary measure.Config
	opts      Options

	usePrimary  bool
	value       float64
	ctrl        *scale.Controller
	layoutReady bool
	disposed    bool
}

// New validates both unit configurations and their conversion factors and
// builds the picker positioned at the active unit's initial value.
// Each unit's conversion factor maps a value in that unit to the paired
// unit, so the two factors are reciprocals of each other.
func New(primary, secondary measure.Config, opts Options) (*Picker, error) {
	if err := primary.Validate(); err != nil {
		return nil, fmt.Errorf("primary config: %w", err)
	}
	if err := secondary.Validate(); err != nil {
		return nil, fmt.Errorf("secondary config: %w", err)
	}
	if err := measure.ValidateFactor(primary.ConversionFactor); err != nil {
		return nil, fmt.Errorf("primary config: %w", err)
	}
	if err := measure.ValidateFactor(secondary.ConversionFactor); err != nil {
		return nil, fmt.Errorf("secondary config: %w", err)
	}

	p := &Picker{
		primary:    primary,
		secondary:  secondary,
		opts:       opts,
		usePrimary: !opts.StartSecondary,
	}
	active := p.activeConfig()
	p.value = active.Clamp(active.Initial)

	ctrl, err := p.newController(active, p.value)
	if err != nil {
		return nil, err
	}
	p.ctrl = ctrl
	return p, nil
}

// newController builds the embedded scale controller for cfg, positioned at
// initial, with the picker subscribed to its notifications.
func (p *Picker) newController(cfg measure.Config, initial float64) (*scale.Controller, error) {
	cfg.Initial = initial
	ctrl, err := scale.New(cfg, p.opts.Scale, nil)
	if err != nil {
		return nil, err
	}
	ctrl.OnChanged = p.onScaleChanged
	ctrl.OnSettled = p.onScaleSettled
	return ctrl, nil
}

// Init schedules the embedded controller's initial positioning.
func (p *Picker) Init() tea.Cmd {
	return p.ctrl.Init()
}

// Update forwards messages to the embedded controller.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if p.disposed {
		return nil
	}
	return p.ctrl.Update(msg)
}

// AttachSurface marks the host layout as known and attaches the owned
// scroll surface. Called once after the first layout pass and remembered,
// so controllers rebuilt on later unit toggles attach immediately.
func (p *Picker) AttachSurface() {
	p.layoutReady = true
	p.attachOwned()
}

func (p *Picker) attachOwned() {
	if s, ok := p.ctrl.Surface().(*scale.SlideSurface); ok {
		s.Attach()
	}
}

// ToggleUnit flips the active unit, converts the current value into it, and
// rebuilds the scale for the newly active range. The conversion multiplies
// by the outgoing unit's own factor, which maps its values to the paired
// unit in either direction. The converted value is published immediately;
// the fresh controller repositions asynchronously.
func (p *Picker) ToggleUnit() tea.Cmd {
	if p.disposed {
		return nil
	}

	factor := p.activeConfig().ConversionFactor
	p.usePrimary = !p.usePrimary

	active := p.activeConfig()
	p.value = active.Clamp(measure.Convert(p.value, factor))

	p.ctrl.Dispose()
	ctrl, err := p.newController(active, p.value)
	if err != nil {
		// Configs were validated at construction; a failure here means a
		// broken invariant, not a user error.
		slog.Error("rebuilding scale controller failed", "unit", active.Unit, "error", err)
		return nil
	}
	p.ctrl = ctrl
	if p.layoutReady {
		p.attachOwned()
	}

	p.publish()
	return p.ctrl.Init()
}

// SetValue repositions the scale programmatically in the active unit.
func (p *Picker) SetValue(value float64) tea.Cmd {
	if p.disposed {
		return nil
	}
	return p.ctrl.SetValue(value)
}

// ScrollBy forwards a scroll gesture to the embedded controller.
func (p *Picker) ScrollBy(delta float64) tea.Cmd {
	if p.disposed {
		return nil
	}
	return p.ctrl.ScrollBy(delta)
}

// onScaleChanged stores the scrolled value, already in the active unit, and
// republishes it as a unit-aware event.
func (p *Picker) onScaleChanged(value float64) {
	p.value = value
	p.publish()
}

func (p *Picker) onScaleSettled(value float64) {
	if p.opts.OnSettled == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("settle observer panicked", "recover", r)
		}
	}()
	p.opts.OnSettled(p.valueDTO(value))
}

// publish emits a freshly constructed Value to the external observer.
func (p *Picker) publish() {
	if p.opts.OnChanged == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("measurement observer panicked", "recover", r)
		}
	}()
	p.opts.OnChanged(p.valueDTO(p.value))
}

func (p *Picker) valueDTO(amount float64) measure.Value {
	return measure.Value{
		Amount:  amount,
		Unit:    p.activeConfig().Unit,
		Primary: p.usePrimary,
	}
}

// Value returns the current measurement in the active unit.
func (p *Picker) Value() measure.Value {
	return p.valueDTO(p.value)
}

// Ready reports whether the embedded controller can be rendered.
func (p *Picker) Ready() bool {
	return !p.disposed && p.ctrl.Ready()
}

// ActiveConfig returns the configuration of the active unit.
func (p *Picker) ActiveConfig() measure.Config {
	return p.activeConfig()
}

// Primary reports whether the primary unit is active.
func (p *Picker) Primary() bool {
	return p.usePrimary
}

// Units returns the unit labels of the pair, primary first.
func (p *Picker) Units() (string, string) {
	return p.primary.Unit, p.secondary.Unit
}

// Controller exposes the embedded scale controller to renderers.
func (p *Picker) Controller() *scale.Controller {
	return p.ctrl
}

// Dispose tears down the embedded controller, cancelling its pending
// timers and releasing its surface.
func (p *Picker) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.ctrl.Dispose()
}

func (p *Picker) activeConfig() measure.Config {
	if p.usePrimary {
		return p.primary
	}
	return p.secondary
}
