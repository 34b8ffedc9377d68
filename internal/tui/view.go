package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mfranzen/caliper/internal/tui/components"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(m.Config.ColorScheme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.mode == HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	view.Content = m.viewMain()
	return view
}

func (m *Model) viewMain() string {
	primary, secondary := m.picker.Units()

	sections := []string{
		components.TitleStyle.Render("caliper"),
		"",
		components.RenderUnitTabs(primary, secondary, m.picker.Primary()),
		"",
		components.RenderReadout(m.picker.ActiveConfig(), m.current.Amount),
		"",
	}

	if m.mode == SetValueMode {
		sections = append(sections, m.viewValuePrompt(), "")
	}

	sections = append(sections, m.viewRuler(), "", m.viewHistory())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

// viewRuler draws the ruler strip, or a neutral placeholder while the fresh
// controller spun up by a unit toggle has not positioned itself yet.
func (m *Model) viewRuler() string {
	rulerWidth := m.width - 4
	if rulerWidth > 81 {
		rulerWidth = 81
	}

	if !m.picker.Ready() {
		return components.PlaceholderStyle.Width(rulerWidth).
			Render("preparing scale")
	}

	return components.RenderRuler(components.RulerProps{
		Controller: m.picker.Controller(),
		Width:      rulerWidth,
	})
}

func (m *Model) viewValuePrompt() string {
	lines := fmt.Sprintf("Jump to value (%s)\n%s",
		m.picker.ActiveConfig().Unit, m.valueInput.View())
	if m.inputErr != "" {
		lines += "\n" + components.ErrorTextStyle.Render(m.inputErr)
	}
	return components.InputBoxStyle.Render(lines)
}

func (m *Model) viewHistory() string {
	return components.RenderHistory(m.recent, recentLimit)
}

func (m *Model) viewHelp() string {
	box := components.HelpBoxStyle.Render(m.helpViewport.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewStatusBar() string {
	state := m.picker.Controller().State().String()
	if m.statusMsg != "" {
		state = state + "  " + m.statusMsg
	}
	hints := fmt.Sprintf("%s help · %s quit",
		m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit)
	return components.RenderStatusBar(m.width, state, hints)
}
