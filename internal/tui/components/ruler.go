package components

import (
	"math"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/mfranzen/caliper/internal/scale"
)

// RulerProps carries everything needed to draw one ruler frame. Width is
// the extent along the scroll axis: columns for a horizontal ruler, rows
// for a vertical one.
type RulerProps struct {
	Controller *scale.Controller
	Width      int
}

const (
	pointerGlyph   = "▼"
	majorTickGlyph = "╹"
	minorTickGlyph = "╵"
	baselineGlyph  = "─"

	sidePointerGlyph   = "◀"
	sideMajorGlyph     = "┣"
	sideMinorGlyph     = "├"
	sideBaselineGlyph  = "│"
	verticalLabelWidth = 8
)

// RenderRuler draws the ruler strip centered on the controller's current
// offset. The tick under the pointer is whatever the scroll position
// currently lines up with, so the strip appears to slide beneath a fixed
// pointer.
func RenderRuler(props RulerProps) string {
	if props.Width < 3 || props.Controller == nil {
		return ""
	}
	if props.Controller.Options().Vertical {
		return renderVerticalRuler(props)
	}
	return renderHorizontalRuler(props)
}

// renderHorizontalRuler emits a pointer row, a tick row, and a label row.
func renderHorizontalRuler(props RulerProps) string {
	ctrl := props.Controller
	spacing := ctrl.Mapper().Spacing()
	offset := ctrl.Offset()
	center := props.Width / 2

	pointer := make([]string, props.Width)
	ticks := make([]string, props.Width)
	labels := make([]string, props.Width)
	for i := range pointer {
		pointer[i] = " "
		ticks[i] = BaselineStyle.Render(baselineGlyph)
		labels[i] = " "
	}
	pointer[center] = PointerStyle.Render(pointerGlyph)

	// Visible tick index window around the current offset.
	lo := int(math.Ceil((offset - float64(center)) / spacing))
	hi := int(math.Floor((offset + float64(props.Width-1-center)) / spacing))
	if lo < 0 {
		lo = 0
	}
	if hi > ctrl.Count()-1 {
		hi = ctrl.Count() - 1
	}

	for idx := lo; idx <= hi; idx++ {
		col := center + int(math.Round(float64(idx)*spacing-offset))
		if col < 0 || col >= props.Width {
			continue
		}
		if ctrl.IsMajor(idx) {
			ticks[col] = MajorTickStyle.Render(majorTickGlyph)
			placeLabel(labels, col, ctrl.Label(idx), props.Width)
		} else {
			ticks[col] = MinorTickStyle.Render(minorTickGlyph)
		}
	}

	rows := []string{
		strings.Join(pointer, ""),
		strings.Join(ticks, ""),
		strings.Join(labels, ""),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderVerticalRuler emits one line per screen row: a right-aligned label
// gutter, the tick glyph, and the pointer next to the center row.
func renderVerticalRuler(props RulerProps) string {
	ctrl := props.Controller
	spacing := ctrl.Mapper().Spacing()
	offset := ctrl.Offset()
	center := props.Width / 2

	ticks := make([]string, props.Width)
	labels := make([]string, props.Width)
	for row := range ticks {
		ticks[row] = BaselineStyle.Render(sideBaselineGlyph)
		labels[row] = strings.Repeat(" ", verticalLabelWidth)
	}

	lo := int(math.Ceil((offset - float64(center)) / spacing))
	hi := int(math.Floor((offset + float64(props.Width-1-center)) / spacing))
	if lo < 0 {
		lo = 0
	}
	if hi > ctrl.Count()-1 {
		hi = ctrl.Count() - 1
	}

	for idx := lo; idx <= hi; idx++ {
		row := center + int(math.Round(float64(idx)*spacing-offset))
		if row < 0 || row >= props.Width {
			continue
		}
		if ctrl.IsMajor(idx) {
			ticks[row] = MajorTickStyle.Render(sideMajorGlyph)
			text := ctrl.Label(idx)
			if n := utf8.RuneCountInString(text); text != "" && n <= verticalLabelWidth {
				pad := strings.Repeat(" ", verticalLabelWidth-n)
				labels[row] = pad + TickLabelStyle.Render(text)
			}
		} else {
			ticks[row] = MinorTickStyle.Render(sideMinorGlyph)
		}
	}

	lines := make([]string, props.Width)
	for row := range lines {
		pointer := " "
		if row == center {
			pointer = PointerStyle.Render(sidePointerGlyph)
		}
		lines[row] = labels[row] + " " + ticks[row] + " " + pointer
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// placeLabel centers a tick label under its column, skipping labels that
// would run past either edge or collide with one already placed. Cells are
// runes, not bytes, so multi-byte labels from a custom formatter line up.
func placeLabel(labels []string, col int, text string, width int) {
	if text == "" {
		return
	}
	runes := []rune(text)
	start := col - len(runes)/2
	if start < 0 || start+len(runes) > width {
		return
	}
	for i := range runes {
		if labels[start+i] != " " {
			return
		}
	}
	for i, r := range runes {
		labels[start+i] = TickLabelStyle.Render(string(r))
	}
}
