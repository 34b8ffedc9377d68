package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/mfranzen/caliper/internal/config"
)

// keyMap holds the resolved key bindings built from the config strings.
type keyMap struct {
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	CoarseLeft  key.Binding
	CoarseRight key.Binding
	ToggleUnit  key.Binding
	SetValue    key.Binding
	ShowHelp    key.Binding
	Quit        key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	return keyMap{
		ScrollLeft: key.NewBinding(
			key.WithKeys(k.ScrollLeft, "left"),
			key.WithHelp(k.ScrollLeft, "scroll left, decrease one tick"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys(k.ScrollRight, "right"),
			key.WithHelp(k.ScrollRight, "scroll right, increase one tick"),
		),
		CoarseLeft: key.NewBinding(
			key.WithKeys(k.CoarseLeft),
			key.WithHelp(k.CoarseLeft, "scroll left, decrease one major step"),
		),
		CoarseRight: key.NewBinding(
			key.WithKeys(k.CoarseRight),
			key.WithHelp(k.CoarseRight, "scroll right, increase one major step"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys(k.ToggleUnit),
			key.WithHelp(k.ToggleUnit, "toggle unit"),
		),
		SetValue: key.NewBinding(
			key.WithKeys(k.SetValue),
			key.WithHelp(k.SetValue, "jump to value"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(k.ShowHelp),
			key.WithHelp(k.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(k.Quit, "ctrl+c"),
			key.WithHelp(k.Quit, "quit"),
		),
	}
}
