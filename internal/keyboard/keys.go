package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the editor key bindings
type Keys struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Editing
	Edit       key.Binding // Enter a hex color for the selected role
	DarkMode   key.Binding // Toggle light/dark palette
	Random     key.Binding // Synthesize a new palette
	Harmony    key.Binding // Cycle harmony mode
	AllRoles   key.Binding // Show derived roles too
	Presets    key.Binding // Open the preset picker
	SavePreset key.Binding
	Export     key.Binding // Show CSS and install command
	Reset      key.Binding

	// Global
	Confirm key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// Default returns the default key bindings
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit color"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Harmony: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "harmony"),
		),
		AllRoles: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all roles"),
		),
		Presets: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "presets"),
		),
		SavePreset: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save preset"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.DarkMode, k.Random, k.Presets, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.AllRoles},
		{k.DarkMode, k.Random, k.Harmony, k.Reset},
		{k.Presets, k.SavePreset, k.Export},
		{k.Help, k.Back, k.Quit},
	}
}
