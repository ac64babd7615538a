package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translate maps a tcell key event to a movement key or a discrete action
// ok is false for keys the game ignores
func Translate(ev *tcell.EventKey) (key Key, action Action, ok bool) {
	return TranslateKey(ev.Key(), ev.Rune())
}

// TranslateKey is Translate over a raw key code and rune
func TranslateKey(code tcell.Key, r rune) (key Key, action Action, ok bool) {
	switch code {
	case tcell.KeyLeft:
		return KeyLeft, ActionNone, true
	case tcell.KeyRight:
		return KeyRight, ActionNone, true
	case tcell.KeyUp:
		return KeyUp, ActionNone, true
	case tcell.KeyDown:
		return KeyDown, ActionNone, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyCount, ActionQuit, true
	case tcell.KeyRune:
		switch r {
		case 'h':
			return KeyLeft, ActionNone, true
		case 'l':
			return KeyRight, ActionNone, true
		case 'k':
			return KeyUp, ActionNone, true
		case 'j':
			return KeyDown, ActionNone, true
		case 'q':
			return keyCount, ActionQuit, true
		case 'p':
			return keyCount, ActionTogglePause, true
		case 'c':
			return keyCount, ActionToggleCamera, true
		case 'm':
			return keyCount, ActionToggleMute, true
		}
	}
	return keyCount, ActionNone, false
}
