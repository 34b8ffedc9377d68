package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// RenderStatusBar draws the bottom bar with the scale state on the left and
// the key hints on the right, padded to the full width.
func RenderStatusBar(width int, state string, hints string) string {
	left := fmt.Sprintf(" %s ", state)
	right := fmt.Sprintf(" %s ", hints)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return StatusBarStyle.Width(width).Render(left)
	}
	return StatusBarStyle.Width(width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + right,
	)
}
