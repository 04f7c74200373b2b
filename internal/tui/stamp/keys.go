package stamp

import "github.com/charmbracelet/bubbles/key"

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Format},
		{k.Seconds, k.Minutes, k.Hours},
		{k.Color, k.Quit},
	}
}

type keyMap struct {
	Toggle  key.Binding
	Seconds key.Binding
	Minutes key.Binding
	Hours   key.Binding
	Color   key.Binding
	Format  key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space/p", "start/stop"),
	),
	Seconds: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "step 1s"),
	),
	Minutes: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "step 1m"),
	),
	Hours: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "step 1h"),
	),
	Color: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "next color"),
	),
	Format: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "hh:mm:ss / mm:ss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
