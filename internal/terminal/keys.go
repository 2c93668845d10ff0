package terminal

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the keys the terminal handles itself. Every other key goes to
// the input line.
type keyMap struct {
	Submit    key.Binding
	Complete  key.Binding
	Up        key.Binding
	Down      key.Binding
	Interrupt key.Binding
	Skip      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

var keys = keyMap{
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
	Complete:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "cancel form / quit")),
	Skip:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip typing")),
	PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
}
