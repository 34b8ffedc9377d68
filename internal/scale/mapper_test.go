package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/mfranzen/caliper/internal/measure"
)

func testConfig() measure.Config {
	return measure.Config{
		Unit:          "kg",
		Min:           0,
		Max:           200,
		MinorStep:     1,
		MajorStep:     10,
		DecimalPlaces: 0,
		Initial:       80,
	}
}

func TestNewMapper_Rejections(t *testing.T) {
	cfg := testConfig()

	if _, err := NewMapper(cfg, 0); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("NewMapper(spacing=0) = %v, want ErrInvalidSpacing", err)
	}
	if _, err := NewMapper(cfg, -3); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("NewMapper(spacing=-3) = %v, want ErrInvalidSpacing", err)
	}

	cfg.MinorStep = 0
	if _, err := NewMapper(cfg, 10); !errors.Is(err, measure.ErrInvalidStep) {
		t.Errorf("NewMapper(minorStep=0) = %v, want ErrInvalidStep", err)
	}
}

func TestMapper_OffsetToValue(t *testing.T) {
	cfg := testConfig()
	m, err := NewMapper(cfg, 10)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{10, 1},
		{155, 15.5},
		{2000, 200},
	}
	for _, tt := range tests {
		if got := m.OffsetToValue(tt.offset); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OffsetToValue(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

// TestMapper_RoundTrip verifies offsetToValue(valueToOffset(v)) == v within
// floating-point tolerance across the whole range, including a fractional
// step configuration.
func TestMapper_RoundTrip(t *testing.T) {
	configs := []struct {
		name    string
		cfg     measure.Config
		spacing float64
	}{
		{"integer steps", testConfig(), 10},
		{"fractional steps", measure.Config{
			Unit: "kg", Min: 40, Max: 200, MinorStep: 0.1, MajorStep: 1, Initial: 80,
		}, 7},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMapper(tc.cfg, tc.spacing)
			if err != nil {
				t.Fatalf("NewMapper: %v", err)
			}
			for v := tc.cfg.Min; v <= tc.cfg.Max; v += tc.cfg.MinorStep / 3 {
				back := m.OffsetToValue(m.ValueToOffset(v))
				if math.Abs(back-v) > 1e-9 {
					t.Fatalf("round trip of %v = %v, drift %g", v, back, back-v)
				}
			}
		})
	}
}

func TestMapper_SnapOffset(t *testing.T) {
	m, err := NewMapper(testConfig(), 10)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{4.9, 0},
		{5, 10}, // round half away from zero
		{13, 10},
		{155, 160},
		{154.9, 150},
		{-4, 0},
		{-6, -10},
	}
	for _, tt := range tests {
		if got := m.SnapOffset(tt.offset); got != tt.want {
			t.Errorf("SnapOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
