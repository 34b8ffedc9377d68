package picker

import (
	"errors"
	"math"
	"testing"

	"github.com/mfranzen/caliper/internal/measure"
	"github.com/mfranzen/caliper/internal/scale"
)

// kgConfig is the primary unit of the test pair; the factor maps a
// primary-unit value to the paired unit.
func kgConfig() measure.Config {
	return measure.Config{
		Unit:             "kg",
		Min:              40,
		Max:              200,
		MinorStep:        1,
		MajorStep:        10,
		DecimalPlaces:    1,
		ConversionFactor: 0.453592,
		Initial:          80,
	}
}

// lbConfig is the secondary unit, with the reciprocal factor.
func lbConfig() measure.Config {
	return measure.Config{
		Unit:             "lb",
		Min:              18,
		Max:              91,
		MinorStep:        0.5,
		MajorStep:        5,
		DecimalPlaces:    1,
		ConversionFactor: 1 / 0.453592,
		Initial:          36,
	}
}

func newTestPicker(t *testing.T, opts Options) *Picker {
	t.Helper()
	if opts.Scale.Spacing == 0 {
		opts.Scale.Spacing = 10
	}
	p, err := New(kgConfig(), lbConfig(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNew_Rejections(t *testing.T) {
	t.Run("invalid primary range", func(t *testing.T) {
		bad := kgConfig()
		bad.Min, bad.Max = 10, 5
		if _, err := New(bad, lbConfig(), Options{Scale: scale.Options{Spacing: 10}}); !errors.Is(err, measure.ErrInvalidRange) {
			t.Errorf("New = %v, want ErrInvalidRange", err)
		}
	})

	t.Run("zero conversion factor", func(t *testing.T) {
		bad := lbConfig()
		bad.ConversionFactor = 0
		if _, err := New(kgConfig(), bad, Options{Scale: scale.Options{Spacing: 10}}); !errors.Is(err, measure.ErrInvalidFactor) {
			t.Errorf("New = %v, want ErrInvalidFactor", err)
		}
	})

	t.Run("invalid spacing", func(t *testing.T) {
		if _, err := New(kgConfig(), lbConfig(), Options{}); !errors.Is(err, scale.ErrInvalidSpacing) {
			t.Errorf("New = %v, want ErrInvalidSpacing", err)
		}
	})
}

func TestInitialValue(t *testing.T) {
	p := newTestPicker(t, Options{})

	got := p.Value()
	if got.Amount != 80 || got.Unit != "kg" || !got.Primary {
		t.Errorf("Value() = %+v, want 80 kg primary", got)
	}
}

func TestStartSecondary(t *testing.T) {
	p := newTestPicker(t, Options{StartSecondary: true})

	got := p.Value()
	if got.Amount != 36 || got.Unit != "lb" || got.Primary {
		t.Errorf("Value() = %+v, want 36 lb secondary", got)
	}
}

// TestToggleUnit_Conversion checks that leaving the primary unit multiplies
// by the primary unit's own factor.
func TestToggleUnit_Conversion(t *testing.T) {
	var published []measure.Value
	p := newTestPicker(t, Options{
		OnChanged: func(v measure.Value) { published = append(published, v) },
	})

	p.ToggleUnit()

	want := 80 * 0.453592 // 36.28736
	got := p.Value()
	if math.Abs(got.Amount-want) > 1e-9 || got.Unit != "lb" || got.Primary {
		t.Errorf("Value() after toggle = %+v, want %.5f lb secondary", got, want)
	}

	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if published[0] != got {
		t.Errorf("published %+v, Value() %+v", published[0], got)
	}
}

// TestToggleUnit_ConversionFromSecondary checks the way back: leaving the
// secondary unit multiplies by the secondary unit's own factor, never its
// reciprocal. Mixing conventions here is what breaks the round trip.
func TestToggleUnit_ConversionFromSecondary(t *testing.T) {
	p := newTestPicker(t, Options{StartSecondary: true})

	p.ToggleUnit()

	want := 36 * (1 / 0.453592) // 79.36...
	got := p.Value()
	if math.Abs(got.Amount-want) > 1e-9 || got.Unit != "kg" || !got.Primary {
		t.Errorf("Value() after toggle = %+v, want %.5f kg primary", got, want)
	}
}

// TestToggleUnit_RoundTrip toggles twice and expects the original value
// back within floating-point tolerance.
func TestToggleUnit_RoundTrip(t *testing.T) {
	p := newTestPicker(t, Options{})

	p.ToggleUnit()
	p.ToggleUnit()

	got := p.Value()
	if math.Abs(got.Amount-80) > 1e-9 {
		t.Errorf("Amount after double toggle = %v, want 80 (drift %g)", got.Amount, got.Amount-80)
	}
	if got.Unit != "kg" || !got.Primary {
		t.Errorf("Value() after double toggle = %+v, want primary kg", got)
	}
}

// TestToggleUnit_RebuildsController verifies the embedded controller is
// reconstructed with the newly active configuration rather than reused.
func TestToggleUnit_RebuildsController(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.AttachSurface()
	old := p.Controller()

	cmd := p.ToggleUnit()
	if cmd == nil {
		t.Error("ToggleUnit() = nil, want the fresh controller's init command")
	}

	fresh := p.Controller()
	if fresh == old {
		t.Fatal("controller not rebuilt on unit toggle")
	}
	if got := fresh.Config().Unit; got != "lb" {
		t.Errorf("rebuilt controller unit = %q, want %q", got, "lb")
	}
	if want := 80 * 0.453592; math.Abs(fresh.Config().Initial-want) > 1e-9 {
		t.Errorf("rebuilt controller initial = %v, want %v", fresh.Config().Initial, want)
	}
	if old.Ready() {
		t.Error("old controller still ready after toggle")
	}
}

// TestToggleUnit_ClampsToActiveRange converts into a range that cannot
// hold the converted value and expects it clamped.
func TestToggleUnit_ClampsToActiveRange(t *testing.T) {
	secondary := lbConfig()
	secondary.Max = 30 // below 80 * 0.453592
	secondary.Initial = 20

	p, err := New(kgConfig(), secondary, Options{Scale: scale.Options{Spacing: 10}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p.ToggleUnit()
	if got := p.Value().Amount; got != 30 {
		t.Errorf("Amount after clamped toggle = %v, want 30", got)
	}
}

// TestScrollPublishesActiveUnit drives the embedded scale and verifies the
// scrolled value is republished as-is, in the active unit, no conversion.
func TestScrollPublishesActiveUnit(t *testing.T) {
	var published []measure.Value
	p := newTestPicker(t, Options{
		OnChanged: func(v measure.Value) { published = append(published, v) },
	})
	p.AttachSurface()

	p.ScrollBy(100) // 10 ticks of spacing 10 -> +10 kg from offset 0

	if len(published) == 0 {
		t.Fatal("no event published after scroll")
	}
	last := published[len(published)-1]
	if last.Unit != "kg" || !last.Primary {
		t.Errorf("published %+v, want primary kg", last)
	}
	if last.Amount != p.Value().Amount {
		t.Errorf("published %v, Value() %v", last.Amount, p.Value().Amount)
	}
}

func TestSetValue_Clamps(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.AttachSurface()

	p.SetValue(500)
	if got := p.Value().Amount; got != 200 {
		t.Errorf("Amount after SetValue(500) = %v, want 200", got)
	}
}

// TestReadiness covers the placeholder protocol: not ready before the
// first layout, ready after, and still ready right after a unit toggle
// once the layout is known.
func TestReadiness(t *testing.T) {
	p := newTestPicker(t, Options{})

	if p.Ready() {
		t.Error("Ready() = true before first layout")
	}

	p.AttachSurface()
	if !p.Ready() {
		t.Error("Ready() = false after AttachSurface")
	}

	p.ToggleUnit()
	if !p.Ready() {
		t.Error("Ready() = false after toggle with known layout")
	}
}

func TestObserverPanicSwallowed(t *testing.T) {
	calls := 0
	p := newTestPicker(t, Options{
		OnChanged: func(measure.Value) {
			calls++
			if calls == 1 {
				panic("observer bug")
			}
		},
	})

	p.ToggleUnit() // panics inside, swallowed
	p.ToggleUnit()

	if calls != 2 {
		t.Errorf("OnChanged calls = %d, want 2", calls)
	}
	if got := p.Value().Amount; math.Abs(got-80) > 1e-9 {
		t.Errorf("Amount = %v, want 80", got)
	}
}

func TestDispose(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.AttachSurface()
	p.Dispose()

	if p.Ready() {
		t.Error("Ready() = true after Dispose")
	}
	if cmd := p.ToggleUnit(); cmd != nil {
		t.Error("disposed picker acted on ToggleUnit")
	}
	if cmd := p.ScrollBy(10); cmd != nil {
		t.Error("disposed picker acted on ScrollBy")
	}
}

func TestUnits(t *testing.T) {
	p := newTestPicker(t, Options{})
	primary, secondary := p.Units()
	if primary != "kg" || secondary != "lb" {
		t.Errorf("Units() = %q, %q, want kg, lb", primary, secondary)
	}
}
