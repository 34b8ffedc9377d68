package components

import (
	"charm.land/lipgloss/v2"
)

// RenderUnitTabs draws the unit pair as a tab row with the active unit
// highlighted.
func RenderUnitTabs(primary, secondary string, primaryActive bool) string {
	var left, right string
	if primaryActive {
		left = ActiveTabStyle.Render(primary)
		right = TabStyle.Render(secondary)
	} else {
		left = TabStyle.Render(primary)
		right = ActiveTabStyle.Render(secondary)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)
}
