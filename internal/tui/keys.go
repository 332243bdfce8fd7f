package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	test       key.Binding
	push       key.Binding
	pull       key.Binding
	sync       key.Binding
	auto       key.Binding
	longer     key.Binding
	shorter    key.Binding
	passphrase key.Binding
	bookmark   key.Binding
	info       key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
}

var keys = keyMap{
	test:       key.NewBinding(key.WithKeys("t")),
	push:       key.NewBinding(key.WithKeys("p")),
	pull:       key.NewBinding(key.WithKeys("l")),
	sync:       key.NewBinding(key.WithKeys("s")),
	auto:       key.NewBinding(key.WithKeys("a")),
	longer:     key.NewBinding(key.WithKeys("+", "=")),
	shorter:    key.NewBinding(key.WithKeys("-")),
	passphrase: key.NewBinding(key.WithKeys("k")),
	bookmark:   key.NewBinding(key.WithKeys("b")),
	info:       key.NewBinding(key.WithKeys("i")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
