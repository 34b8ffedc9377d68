package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// First layout pass: the scroll surface exists now, so the
		// pending positioning retries can succeed.
		if !m.attached {
			m.attached = true
			m.picker.AttachSurface()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case SetValueMode:
			return m.updateSetValue(msg)
		case HelpMode:
			return m.updateHelp(msg)
		default:
			return m.updateNormal(msg)
		}

	case historyRecordedMsg:
		if msg.err != nil {
			slog.Error("recording measurement failed", "error", msg.err)
			m.statusMsg = "history write failed"
			return m, nil
		}
		return m, loadRecentCmd(m.store)

	case recentLoadedMsg:
		if msg.err != nil {
			slog.Error("loading history failed", "error", msg.err)
			return m, nil
		}
		m.recent = msg.entries
		return m, nil
	}

	// Everything else belongs to the scale: attach retries, debounce
	// timers, animation frames.
	cmd := m.picker.Update(msg)
	return m, m.drainSettle(cmd)
}

// drainSettle turns a settle notification raised during the last picker
// update into a persistence command.
func (m *Model) drainSettle(cmd tea.Cmd) tea.Cmd {
	if m.pendingRecord == nil {
		return cmd
	}
	v := *m.pendingRecord
	m.pendingRecord = nil
	rec := recordCmd(m.store, v)
	if cmd == nil {
		return rec
	}
	return tea.Batch(cmd, rec)
}

// updateNormal handles keys in the default scrolling mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.picker.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.mode = HelpMode
		m.prepareHelp()
		return m, nil

	case key.Matches(msg, m.keys.ToggleUnit):
		m.statusMsg = ""
		return m, m.picker.ToggleUnit()

	case key.Matches(msg, m.keys.SetValue):
		m.mode = SetValueMode
		m.inputErr = ""
		m.valueInput.SetValue("")
		return m, m.valueInput.Focus()

	case key.Matches(msg, m.keys.ScrollLeft):
		return m, m.drainSettle(m.picker.ScrollBy(-m.fineStep()))

	case key.Matches(msg, m.keys.ScrollRight):
		return m, m.drainSettle(m.picker.ScrollBy(m.fineStep()))

	case key.Matches(msg, m.keys.CoarseLeft):
		return m, m.drainSettle(m.picker.ScrollBy(-m.coarseStep()))

	case key.Matches(msg, m.keys.CoarseRight):
		return m, m.drainSettle(m.picker.ScrollBy(m.coarseStep()))
	}
	return m, nil
}

// fineStep is the scroll distance of one minor tick, in surface offset units.
func (m *Model) fineStep() float64 {
	return m.picker.Controller().Mapper().Spacing()
}

// coarseStep is the scroll distance of one major tick.
func (m *Model) coarseStep() float64 {
	return m.fineStep() * float64(m.picker.ActiveConfig().MajorEvery())
}

// updateSetValue handles keys in the jump-to-value prompt.
func (m *Model) updateSetValue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.valueInput.Value())
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.inputErr = "not a number: " + raw
			return m, nil
		}
		m.mode = NormalMode
		m.valueInput.Blur()
		return m, m.picker.SetValue(value)

	case "esc":
		m.mode = NormalMode
		m.valueInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.valueInput, cmd = m.valueInput.Update(msg)
	return m, cmd
}

// updateHelp handles keys in the help screen.
func (m *Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.mode = NormalMode
		return m, nil
	}

	var cmd tea.Cmd
	m.helpViewport, cmd = m.helpViewport.Update(msg)
	return m, cmd
}
