package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	logout    key.Binding
	newConv   key.Binding
	documents key.Binding
	upload    key.Binding
	copyReply key.Binding
	submit    key.Binding
	toggle    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newConv:   key.NewBinding(key.WithKeys("n")),
	documents: key.NewBinding(key.WithKeys("d")),
	upload:    key.NewBinding(key.WithKeys("u")),
	copyReply: key.NewBinding(key.WithKeys("ctrl+y")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+f")),
}
