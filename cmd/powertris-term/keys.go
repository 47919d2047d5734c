package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/powertris/input"
)

// actionForKey maps a key press to a game action.
func actionForKey(ev *tcell.EventKey) (input.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.ActionLeft, true
	case tcell.KeyRight:
		return input.ActionRight, true
	case tcell.KeyDown:
		return input.ActionSoftDrop, true
	case tcell.KeyUp:
		return input.ActionRotate, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.ActionHardDrop, true
		case 'c', 'C':
			return input.ActionHold, true
		case 'r', 'R':
			return input.ActionRestart, true
		case 'h':
			return input.ActionLeft, true
		case 'l':
			return input.ActionRight, true
		case 'j':
			return input.ActionSoftDrop, true
		case 'k':
			return input.ActionRotate, true
		}
	}
	return 0, false
}

// isQuit reports whether the key ends the program.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
