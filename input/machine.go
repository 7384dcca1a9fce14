package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deflect/engine"
)

// Action is the result of translating one terminal event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMute
	ActionResize
)

// Machine translates tcell events into pointer state and game actions
// Pointer position and button state are written straight into the
// shared PointerResource read by the paddle controller
type Machine struct {
	pointer *engine.PointerResource
}

func NewMachine(pointer *engine.PointerResource) *Machine {
	return &Machine{pointer: pointer}
}

// HandleEvent processes one terminal event
func (m *Machine) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		m.pointer.X = x
		m.pointer.Y = y
		m.pointer.Held = ev.Buttons()&tcell.Button1 != 0
		return ActionNone

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ActionQuit
			case 'm', 'M':
				return ActionToggleMute
			}
		}
		return ActionNone

	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}
