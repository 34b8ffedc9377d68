package config

import "github.com/mfranzen/caliper/internal/measure"

// UnitConfig describes one measurement unit of the picker pair.
type UnitConfig struct {
	Name             string  `yaml:"name"`
	Min              float64 `yaml:"min"`
	Max              float64 `yaml:"max"`
	MinorStep        float64 `yaml:"minor_step"`
	MajorStep        float64 `yaml:"major_step"`
	DecimalPlaces    int     `yaml:"decimal_places"`
	ConversionFactor float64 `yaml:"conversion_factor"`
	Initial          float64 `yaml:"initial"`
}

// Units is the unit pair the picker toggles between. Each unit's conversion
// factor maps values in that unit to the paired unit, so the two factors
// are reciprocals.
type Units struct {
	Primary   UnitConfig `yaml:"primary"`
	Secondary UnitConfig `yaml:"secondary"`
}

// Measurement converts the YAML shape into the validated domain config.
func (u UnitConfig) Measurement() measure.Config {
	return measure.Config{
		Unit:             u.Name,
		Min:              u.Min,
		Max:              u.Max,
		MinorStep:        u.MinorStep,
		MajorStep:        u.MajorStep,
		DecimalPlaces:    u.DecimalPlaces,
		ConversionFactor: u.ConversionFactor,
		Initial:          u.Initial,
	}
}

// DefaultUnits returns a kilograms/pounds body-weight pair.
func DefaultUnits() Units {
	return Units{
		Primary: UnitConfig{
			Name:             "kg",
			Min:              40,
			Max:              200,
			MinorStep:        0.5,
			MajorStep:        5,
			DecimalPlaces:    1,
			ConversionFactor: 1 / 0.453592,
			Initial:          80,
		},
		Secondary: UnitConfig{
			Name:             "lb",
			Min:              88,
			Max:              441,
			MinorStep:        1,
			MajorStep:        10,
			DecimalPlaces:    1,
			ConversionFactor: 0.453592,
			Initial:          176,
		},
	}
}

func (u *Units) applyDefaults() {
	defaults := DefaultUnits()
	if u.Primary == (UnitConfig{}) {
		u.Primary = defaults.Primary
	}
	if u.Secondary == (UnitConfig{}) {
		u.Secondary = defaults.Secondary
	}
}
