package game

import "github.com/gdamore/tcell/v2"

// action is what a key press asks the host to do.
type action int

const (
	actionNone action = iota
	actionStart
	actionQuit
)

// keyAction maps a key press to an action. Only starting and quitting are
// bound; the game has no movement controls.
func keyAction(key tcell.Key, ch rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionStart
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return actionQuit
		case ' ', 's', 'S':
			return actionStart
		}
	}
	return actionNone
}
