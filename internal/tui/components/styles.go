// Package components provides the reusable render helpers of the picker UI.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mfranzen/caliper/internal/config"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the appearance of the app header
	TitleStyle lipgloss.Style

	// TabStyle defines inactive unit tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected unit tab
	ActiveTabStyle lipgloss.Style

	// PointerStyle defines the center pointer above the ruler
	PointerStyle lipgloss.Style

	// MajorTickStyle defines emphasized tick marks
	MajorTickStyle lipgloss.Style

	// MinorTickStyle defines regular tick marks
	MinorTickStyle lipgloss.Style

	// BaselineStyle defines the ruler baseline between ticks
	BaselineStyle lipgloss.Style

	// TickLabelStyle defines the numbers under major ticks
	TickLabelStyle lipgloss.Style

	// ReadoutStyle defines the large current-value readout
	ReadoutStyle lipgloss.Style

	// ReadoutUnitStyle defines the unit suffix next to the readout
	ReadoutUnitStyle lipgloss.Style

	// PlaceholderStyle defines the neutral box shown before the scale
	// is ready
	PlaceholderStyle lipgloss.Style

	// HistoryHeaderStyle defines the history panel heading
	HistoryHeaderStyle lipgloss.Style

	// HistoryEntryStyle defines one history line
	HistoryEntryStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// HelpBoxStyle defines the border around the help screen
	HelpBoxStyle lipgloss.Style

	// InputBoxStyle defines the border around the set-value prompt
	InputBoxStyle lipgloss.Style

	// ErrorTextStyle defines inline error messages
	ErrorTextStyle lipgloss.Style
)

var activeTabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      " ",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┘",
	BottomRight: "└",
}

var tabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┴",
	BottomRight: "┴",
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Foreground(lipgloss.Color(colors.Title)).
		Bold(true)

	PointerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Pointer)).
		Bold(true)

	MajorTickStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.MajorTick)).
		Bold(true)

	MinorTickStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.MinorTick))

	BaselineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	TickLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.TickLabel))

	ReadoutStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Readout))

	ReadoutUnitStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.TickLabel))

	PlaceholderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Foreground(lipgloss.Color(colors.Subtle)).
		Padding(1, 2)

	HistoryHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	HistoryEntryStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.TickLabel))

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1)

	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Pointer)).
		Italic(true)
}
