package tui

import "github.com/charmbracelet/bubbles/key"

// BrowserKeyMap defines the key bindings of the creature browser.
type BrowserKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextView   key.Binding
	NextState  key.Binding
	PrevState  key.Binding
	NextCursor key.Binding
	Hold       key.Binding
	Possess    key.Binding
	BigPointer key.Binding
	Pause      key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.NextState, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.NextState, k.PrevState, k.NextCursor},
		{k.Hold, k.Possess, k.BigPointer, k.Pause},
		{k.Reload, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev creature"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next creature"),
		),
		NextView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next view"),
		),
		NextState: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next work state"),
		),
		PrevState: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev work state"),
		),
		NextCursor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next hand tool"),
		),
		Hold: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grab/drop"),
		),
		Possess: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle possess"),
		),
		BigPointer: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "big pointer"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause turns"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload files"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
