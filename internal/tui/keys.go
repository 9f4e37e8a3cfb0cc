package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the settings console
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Edit        key.Binding
	BulkEdit    key.Binding
	Toggle      key.Binding
	Confidence  key.Binding
	Alert       key.Binding
	Save        key.Binding
	Retry       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit value"),
		),
		BulkEdit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit thresholds"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Confidence: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "edit confidence"),
		),
		Alert: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "edit alert time"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry load"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the key bindings for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Toggle, k.Edit, k.Save, k.Help, k.Quit}
}

// FullHelp returns the key bindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSection, k.PrevSection},
		{k.Edit, k.BulkEdit, k.Toggle, k.Confidence, k.Alert},
		{k.Save, k.Retry, k.Quit},
	}
}
