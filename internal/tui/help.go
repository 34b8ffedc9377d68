package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/bubbles/v2/viewport"
	"github.com/charmbracelet/glamour"
)

// Glamour renderers are cached by width because construction is expensive.
var helpRendererCache sync.Map // map[int]*glamour.TermRenderer

func helpRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := helpRendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	helpRendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown builds the key reference from the configured bindings, so a
// remapped key shows up remapped in the help screen too.
func (m *Model) helpMarkdown() string {
	k := m.Config.KeyMappings
	rows := []struct {
		key  string
		desc string
	}{
		{k.ScrollLeft + " / left", "scroll left, decrease one tick"},
		{k.ScrollRight + " / right", "scroll right, increase one tick"},
		{k.CoarseLeft, "scroll left, decrease one major step"},
		{k.CoarseRight, "scroll right, increase one major step"},
		{k.ToggleUnit, "toggle between units"},
		{k.SetValue, "jump to a typed value"},
		{k.ShowHelp, "toggle this help"},
		{k.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString("# Keys\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "- `%s` %s\n", r.key, r.desc)
	}
	b.WriteString("\nScrolling settles on the nearest tick after a short pause. ")
	b.WriteString("Settled values are recorded to the history panel.\n")
	return b.String()
}

// prepareHelp renders the help markdown into the viewport, sized to the
// current terminal.
func (m *Model) prepareHelp() {
	width := m.width - 8
	if width < 20 {
		width = 20
	}
	height := m.height - 6
	if height < 5 {
		height = 5
	}

	content := m.helpMarkdown()
	if renderer, err := helpRenderer(width); err == nil {
		if rendered, err := renderer.Render(content); err == nil {
			content = strings.TrimSpace(rendered)
		}
	}

	if !m.helpReady {
		m.helpViewport = viewport.New()
		m.helpReady = true
	}
	m.helpViewport.SetWidth(width)
	m.helpViewport.SetHeight(height)
	m.helpViewport.SetContent(content)
	m.helpViewport.GotoTop()
}
