package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds only keys the text input does not use, since every printable
// key belongs to the input field.
type keyMap struct {
	add       key.Binding
	up        key.Binding
	down      key.Binding
	delete    key.Binding
	copy      key.Binding
	recreate  key.Binding
	buildInfo key.Binding
	back      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add note")),
	up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
	down:      key.NewBinding(key.WithKeys("down")),
	delete:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	recreate:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	buildInfo: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "version")),
	back:      key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.up, k.delete, k.copy, k.recreate, k.buildInfo, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
