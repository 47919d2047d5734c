package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/powertris/input"
)

var keyBindings = map[input.Action][]ebiten.Key{
	input.ActionLeft:     {ebiten.KeyArrowLeft},
	input.ActionRight:    {ebiten.KeyArrowRight},
	input.ActionSoftDrop: {ebiten.KeyArrowDown},
	input.ActionRotate:   {ebiten.KeyArrowUp},
	input.ActionHardDrop: {ebiten.KeySpace},
	input.ActionHold:     {ebiten.KeyC},
	input.ActionRestart:  {ebiten.KeyR},
}

// keyboard reports bound keys as held unless the debug UI owns the keyboard.
type keyboard struct {
	captured func() bool
}

func (k *keyboard) Down(a input.Action) bool {
	if k.captured != nil && k.captured() {
		return false
	}
	for _, key := range keyBindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
