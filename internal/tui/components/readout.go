package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mfranzen/caliper/internal/measure"
)

// RenderReadout draws the current value with its unit suffix, e.g. "72.5 kg".
func RenderReadout(cfg measure.Config, value float64) string {
	amount := ReadoutStyle.Render(cfg.Format(value))
	unit := ReadoutUnitStyle.Render(" " + cfg.Unit)
	return lipgloss.JoinHorizontal(lipgloss.Center, amount, unit)
}
