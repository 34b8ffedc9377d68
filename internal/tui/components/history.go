package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mfranzen/caliper/internal/history"
)

// RenderHistory draws the recent-measurements panel. Entries arrive newest
// first and are shown top to bottom in that order.
func RenderHistory(entries []history.Entry, limit int) string {
	header := HistoryHeaderStyle.Render("Recent")
	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			HistoryEntryStyle.Render("no measurements yet"),
		)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	var b strings.Builder
	b.WriteString(header)
	for _, e := range entries {
		amount := strconv.FormatFloat(e.Amount, 'f', -1, 64)
		line := fmt.Sprintf("%s  %s %s",
			e.RecordedAt.Local().Format("Jan 02 15:04"),
			amount,
			e.Unit,
		)
		b.WriteString("\n")
		b.WriteString(HistoryEntryStyle.Render(line))
	}
	return b.String()
}
