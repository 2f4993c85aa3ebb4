package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	help       key.Binding
	version    key.Binding
	disconnect key.Binding
	balance    key.Binding
	copy       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	help:       key.NewBinding(key.WithKeys("?")),
	version:    key.NewBinding(key.WithKeys("v")),
	disconnect: key.NewBinding(key.WithKeys("d")),
	balance:    key.NewBinding(key.WithKeys("b")),
	copy:       key.NewBinding(key.WithKeys("c")),
}
