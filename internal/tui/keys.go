package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	switchTo  key.Binding
	dashboard key.Binding
	expenses  key.Binding
	reports   key.Binding
	add       key.Binding
	logout    key.Binding
	refresh   key.Binding
	copy      key.Binding
	version   key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	switchTo:  key.NewBinding(key.WithKeys("ctrl+n")),
	dashboard: key.NewBinding(key.WithKeys("d")),
	expenses:  key.NewBinding(key.WithKeys("e")),
	reports:   key.NewBinding(key.WithKeys("r")),
	add:       key.NewBinding(key.WithKeys("a")),
	logout:    key.NewBinding(key.WithKeys("o")),
	refresh:   key.NewBinding(key.WithKeys("f")),
	copy:      key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
}
