package main

import "github.com/charmbracelet/bubbles/key"

// Printable keys stay free for typing channel values, so the global
// bindings live on control keys and tab.
type keyMap struct {
	Pick      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
	UpDown    key.Binding
	Select    key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pick:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pick color")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.NextField, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pick, k.NextField, k.PrevField, k.Confirm, k.Quit}}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Select, k.Close}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Select, k.Close}}
}
