package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	FocusSearch key.Binding
	ViewSaved   key.Binding
	ViewAccount key.Binding
	ViewLog     key.Binding

	// Recipe actions
	ToggleSave  key.Binding
	ReloadSaved key.Binding
	Logout      key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Forms
	Confirm   key.Binding
	NextField key.Binding
	PrevField key.Binding
	Register  key.Binding
	Guest     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		// View switching
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ViewSaved: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Saved recipes"),
		),
		ViewAccount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Account"),
		),
		ViewLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),

		// Recipe actions
		ToggleSave: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save/unsave"),
		),
		ReloadSaved: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload saved"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log out"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Forms
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open / confirm"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Register: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Register"),
		),
		Guest: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "Continue as guest"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.FocusSearch, k.ViewSaved, k.ViewAccount, k.ViewLog, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp},
		{k.Confirm, k.ToggleSave, k.ReloadSaved, k.Logout},
		{k.Register, k.Guest},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// viewHelp returns the bindings shown in the command bar for a view.
func (k keyMap) viewHelp(v View, typing bool) []key.Binding {
	switch {
	case v == ViewAccount:
		return []key.Binding{k.Confirm, k.Register, k.Guest, k.NextField, k.Escape}
	case typing:
		return []key.Binding{k.Escape, k.Confirm}
	case v == ViewLog:
		return []key.Binding{k.Escape, k.Up, k.Down, k.Bottom, k.Help, k.Quit}
	case v == ViewDetail:
		return []key.Binding{k.Escape, k.ToggleSave, k.Up, k.Down, k.Help, k.Quit}
	case v == ViewSaved:
		return []key.Binding{k.Confirm, k.ToggleSave, k.ReloadSaved, k.FocusSearch, k.Tab, k.Help, k.Quit}
	default:
		return []key.Binding{k.FocusSearch, k.Confirm, k.ToggleSave, k.ViewSaved, k.ViewAccount, k.Help, k.Quit}
	}
}
