// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	add       key.Binding
	delete    key.Binding
	open      key.Binding
	manage    key.Binding
	copy      key.Binding
	copyItem  key.Binding
	editCover key.Binding
	paste     key.Binding
	about     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:       key.NewBinding(key.WithKeys("a")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	open:      key.NewBinding(key.WithKeys("o")),
	manage:    key.NewBinding(key.WithKeys("m")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyItem:  key.NewBinding(key.WithKeys("y")),
	editCover: key.NewBinding(key.WithKeys("e")),
	paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	about:     key.NewBinding(key.WithKeys("v")),
}
