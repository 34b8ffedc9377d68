package measure

import (
	"errors"
	"math"
	"testing"
)

// validConfig returns a config that passes Validate, for tests to break
// one field at a time.
func validConfig() Config {
	return Config{
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

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"min equals max", func(c *Config) { c.Min, c.Max = 50, 50 }, ErrInvalidRange},
		{"min above max", func(c *Config) { c.Min, c.Max = 60, 50 }, ErrInvalidRange},
		{"nan bound", func(c *Config) { c.Max = math.NaN() }, ErrInvalidRange},
		{"infinite bound", func(c *Config) { c.Min = math.Inf(-1) }, ErrInvalidRange},
		{"zero minor step", func(c *Config) { c.MinorStep = 0 }, ErrInvalidStep},
		{"negative minor step", func(c *Config) { c.MinorStep = -1 }, ErrInvalidStep},
		{"zero major step", func(c *Config) { c.MajorStep = 0 }, ErrInvalidStep},
		{"major not a multiple", func(c *Config) { c.MajorStep = 2.5 }, ErrStepMismatch},
		{"major smaller than minor", func(c *Config) { c.MajorStep = 0.5 }, ErrStepMismatch},
		{"negative decimals", func(c *Config) { c.DecimalPlaces = -1 }, ErrInvalidStep},
		{"initial below min", func(c *Config) { c.Initial = 39 }, ErrInitialOutOfRange},
		{"initial above max", func(c *Config) { c.Initial = 201 }, ErrInitialOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidate_FractionalSteps ensures non-integer steps are accepted as long
// as the major/minor ratio is a whole number. Guards against float-modulo
// fragility for configs like 0.1/1.0.
func TestValidate_FractionalSteps(t *testing.T) {
	cfg := validConfig()
	cfg.MinorStep = 0.1
	cfg.MajorStep = 1.0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with 0.1/1.0 steps = %v, want nil", err)
	}
	if got := cfg.MajorEvery(); got != 10 {
		t.Errorf("MajorEvery() = %d, want 10", got)
	}
}

func TestMajorEvery(t *testing.T) {
	cfg := validConfig()
	if got := cfg.MajorEvery(); got != 10 {
		t.Errorf("MajorEvery() = %d, want 10", got)
	}

	cfg.MinorStep = 0.5
	cfg.MajorStep = 5
	if got := cfg.MajorEvery(); got != 10 {
		t.Errorf("MajorEvery() with 0.5/5 = %d, want 10", got)
	}
}

func TestClamp(t *testing.T) {
	cfg := validConfig()

	tests := []struct {
		in   float64
		want float64
	}{
		{39.9, 40},
		{40, 40},
		{120, 120},
		{200, 200},
		{200.1, 200},
		{-5, 40},
		{1e9, 200},
	}
	for _, tt := range tests {
		if got := cfg.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cfg := validConfig()
	if got := cfg.Format(80.25); got != "80.2" {
		t.Errorf("Format(80.25) = %q, want %q", got, "80.2")
	}

	cfg.DecimalPlaces = 0
	if got := cfg.Format(80.25); got != "80" {
		t.Errorf("Format(80.25) with 0 decimals = %q, want %q", got, "80")
	}
}
