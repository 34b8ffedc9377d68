package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/mfranzen/caliper/internal/history"
	"github.com/mfranzen/caliper/internal/measure"
)

// historyRecordedMsg reports the outcome of persisting a settled measurement.
type historyRecordedMsg struct {
	err error
}

// recentLoadedMsg carries the refreshed history panel contents.
type recentLoadedMsg struct {
	entries []history.Entry
	err     error
}

// recordCmd persists one settled measurement off the update loop.
func recordCmd(store *history.Store, v measure.Value) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := store.Record(context.Background(), v)
		return historyRecordedMsg{err: err}
	}
}

// loadRecentCmd refreshes the history panel.
func loadRecentCmd(store *history.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.Recent(context.Background(), recentLimit)
		return recentLoadedMsg{entries: entries, err: err}
	}
}
