package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rfinnegan/skein/internal/engine/movement"
)

// keyToMovement translates a key event into a movement and whether the
// selection extends (shift held). Returns ok=false for keys that are not
// navigation.
func keyToMovement(ev *tcell.EventKey) (m movement.Movement, modify, ok bool) {
	modify = ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyLeft:
		if ctrl || alt {
			return movement.LeftWord, modify, true
		}
		return movement.Left, modify, true
	case tcell.KeyRight:
		if ctrl || alt {
			return movement.RightWord, modify, true
		}
		return movement.Right, modify, true
	case tcell.KeyUp:
		if alt {
			return movement.StartOfParagraph, modify, true
		}
		return movement.Up, modify, true
	case tcell.KeyDown:
		if alt {
			return movement.EndOfParagraph, modify, true
		}
		return movement.Down, modify, true
	case tcell.KeyPgUp:
		return movement.UpPage, modify, true
	case tcell.KeyPgDn:
		return movement.DownPage, modify, true
	case tcell.KeyHome:
		if ctrl {
			return movement.StartOfDocument, modify, true
		}
		return movement.LeftOfLine, modify, true
	case tcell.KeyEnd:
		if ctrl {
			return movement.EndOfDocument, modify, true
		}
		return movement.RightOfLine, modify, true
	case tcell.KeyCtrlA:
		return movement.LeftOfLine, modify, true
	case tcell.KeyCtrlE:
		return movement.RightOfLine, modify, true
	default:
		return 0, false, false
	}
}
