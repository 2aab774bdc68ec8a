package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all editor keybindings.
type KeyMap struct {
	// Navigation
	FocusNext   key.Binding
	FocusPrev   key.Binding
	FocusFields key.Binding
	FocusVars   key.Binding
	Up          key.Binding
	Down        key.Binding

	// Fields
	CycleNext key.Binding
	CyclePrev key.Binding
	Edit      key.Binding
	Unset     key.Binding
	Cancel    key.Binding

	// Variables
	Search      key.Binding
	ClearSearch key.Binding

	// App
	TogglePreview key.Binding
	ToggleSwatch  key.Binding
	ToggleCSS     key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the editor keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		FocusFields: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("alt+1", "fields"),
		),
		FocusVars: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("alt+2", "variables"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next value"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev value"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit / commit"),
		),
		Unset: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "unset field"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter variables"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear filter"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview mode"),
		),
		ToggleSwatch: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle swatch"),
		),
		ToggleCSS: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "table / css"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("f1/?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp returns a subset of keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.CycleNext, k.Edit, k.FocusNext, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.CycleNext, k.CyclePrev, k.Edit, k.Unset, k.Cancel},
		{k.FocusNext, k.FocusPrev, k.FocusFields, k.FocusVars, k.Search, k.ClearSearch},
		{k.TogglePreview, k.ToggleSwatch, k.ToggleCSS, k.Reset, k.Help, k.Quit},
	}
}
