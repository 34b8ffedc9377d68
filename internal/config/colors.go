package config

// ColorScheme holds the theme colors as hex strings
type ColorScheme struct {
	Background    string `yaml:"background"`
	Title         string `yaml:"title"`
	Accent        string `yaml:"accent"`
	Subtle        string `yaml:"subtle"`
	Pointer       string `yaml:"pointer"`
	MajorTick     string `yaml:"major_tick"`
	MinorTick     string `yaml:"minor_tick"`
	TickLabel     string `yaml:"tick_label"`
	Readout       string `yaml:"readout"`
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// DefaultColorScheme returns the built-in theme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Background:    "#1f1f28",
		Title:         "#dcd7ba",
		Accent:        "#957fb8",
		Subtle:        "#54546d",
		Pointer:       "#e82424",
		MajorTick:     "#c8c093",
		MinorTick:     "#54546d",
		TickLabel:     "#a6a69c",
		Readout:       "#7e9cd8",
		StatusBarBg:   "#16161d",
		StatusBarText: "#a6a69c",
	}
}

func (c *ColorScheme) applyDefaults() {
	defaults := DefaultColorScheme()
	if c.Background == "" {
		c.Background = defaults.Background
	}
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Accent == "" {
		c.Accent = defaults.Accent
	}
	if c.Subtle == "" {
		c.Subtle = defaults.Subtle
	}
	if c.Pointer == "" {
		c.Pointer = defaults.Pointer
	}
	if c.MajorTick == "" {
		c.MajorTick = defaults.MajorTick
	}
	if c.MinorTick == "" {
		c.MinorTick = defaults.MinorTick
	}
	if c.TickLabel == "" {
		c.TickLabel = defaults.TickLabel
	}
	if c.Readout == "" {
		c.Readout = defaults.Readout
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = defaults.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = defaults.StatusBarText
	}
}
