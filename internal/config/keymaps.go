package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Scrolling
	ScrollLeft  string `yaml:"scroll_left"`
	ScrollRight string `yaml:"scroll_right"`
	CoarseLeft  string `yaml:"coarse_left"`
	CoarseRight string `yaml:"coarse_right"`

	// Picker
	ToggleUnit string `yaml:"toggle_unit"`
	SetValue   string `yaml:"set_value"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ScrollLeft:  "h",
		ScrollRight: "l",
		CoarseLeft:  "H",
		CoarseRight: "L",
		ToggleUnit:  "u",
		SetValue:    "g",
		ShowHelp:    "?",
		Quit:        "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.ScrollLeft == "" {
		k.ScrollLeft = defaults.ScrollLeft
	}
	if k.ScrollRight == "" {
		k.ScrollRight = defaults.ScrollRight
	}
	if k.CoarseLeft == "" {
		k.CoarseLeft = defaults.CoarseLeft
	}
	if k.CoarseRight == "" {
		k.CoarseRight = defaults.CoarseRight
	}
	if k.ToggleUnit == "" {
		k.ToggleUnit = defaults.ToggleUnit
	}
	if k.SetValue == "" {
		k.SetValue = defaults.SetValue
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
