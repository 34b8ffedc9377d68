// Package tui is the terminal front end of the measurement picker: a ruler
// that slides beneath a fixed pointer, a unit toggle, and a history panel
// backed by sqlite.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/mfranzen/caliper/internal/config"
	"github.com/mfranzen/caliper/internal/history"
	"github.com/mfranzen/caliper/internal/measure"
	"github.com/mfranzen/caliper/internal/picker"
	"github.com/mfranzen/caliper/internal/scale"
	"github.com/mfranzen/caliper/internal/tui/components"
)

// Mode represents the current input mode of the application
type Mode int

const (
	// NormalMode is the default scrolling mode
	NormalMode Mode = iota
	// SetValueMode shows the jump-to-value prompt
	SetValueMode
	// HelpMode shows the key binding reference
	HelpMode
)

const recentLimit = 8

// Model represents the application state for the TUI. It is used behind a
// pointer so the picker callbacks can write straight into it.
type Model struct {
	Config *config.Config
	store  *history.Store
	picker *picker.Picker
	keys   keyMap

	mode   Mode
	width  int
	height int

	// attached flips once the first layout pass has run; the scroll
	// surface stays attached across unit toggles after that.
	attached bool

	current measure.Value

	// pendingRecord is set by the settle callback during a picker Update
	// and drained into a persistence command right after.
	pendingRecord *measure.Value

	recent []history.Entry

	valueInput textinput.Model
	inputErr   string

	helpViewport viewport.Model
	helpReady    bool

	statusMsg string
}

// NewModel creates and initializes the TUI model. The store may be nil, in
// which case settled measurements are simply not persisted.
func NewModel(cfg *config.Config, store *history.Store) (*Model, error) {
	components.InitStyles(cfg.ColorScheme)

	m := &Model{
		Config: cfg,
		store:  store,
		keys:   newKeyMap(cfg.KeyMappings),
		mode:   NormalMode,
	}

	p, err := picker.New(
		cfg.Units.Primary.Measurement(),
		cfg.Units.Secondary.Measurement(),
		picker.Options{
			Scale: scale.Options{
				Spacing:      4,
				AnimDuration: scale.SettleDuration,
			},
			OnChanged: func(v measure.Value) { m.current = v },
			OnSettled: func(v measure.Value) { m.pendingRecord = &v },
		},
	)
	if err != nil {
		return nil, fmt.Errorf("building picker: %w", err)
	}
	m.picker = p
	m.current = p.Value()

	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 12
	m.valueInput = ti

	return m, nil
}

// Init schedules the picker's initial positioning and the first history load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), loadRecentCmd(m.store))
}

// Picker exposes the underlying picker for tests.
func (m *Model) Picker() *picker.Picker {
	return m.picker
}
