package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// doubleClickWindow bounds the press-to-press interval for double-click
// synthesis. tcell reports no distinct double-click code.
const doubleClickWindow = 400 * time.Millisecond

// specialKeys is the fixed table of named raw codes. It takes
// precedence over the Ctrl-letter range for the codes it names
// (Backspace's legacy byte 0x08, Tab, and the LF/CR Enter forms),
// which is why those never surface as Ctrl+H/I/J/M.
var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyBackspace:  KeyBackspace, // legacy 0x08
	tcell.KeyBackspace2: KeyBackspace, // DEL 0x7f
	tcell.KeyTab:        KeyTab,
	tcell.KeyEnter:      KeyEnter, // CR
	tcell.KeyCtrlJ:      KeyEnter, // LF
	tcell.KeyEsc:        KeyEscape,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// Translator converts raw backend events into canonical events.
// It carries the minimal state mouse classification needs (previous
// button mask, last click position and time). Key and resize
// translation is stateless.
type Translator struct {
	lastBtns  tcell.ButtonMask
	pressX    int
	pressY    int
	pressBtn  MouseButton
	clickX    int
	clickY    int
	clickBtn  MouseButton
	clickTime time.Time

	now func() time.Time // injectable for tests
}

// NewTranslator creates a translator with wall-clock time.
func NewTranslator() *Translator {
	return &Translator{now: time.Now}
}

// Translate maps one raw event to one canonical event, in priority
// order: absence, resize, mouse, named special table, Ctrl-letter
// range, literal character. An undecodable raw event yields EventNone
// and the loop continues.
func (t *Translator) Translate(raw tcell.Event) Event {
	switch ev := raw.(type) {
	case nil:
		return Event{Type: EventNone}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventKey:
		return translateKey(ev)
	default:
		return Event{Type: EventNone}
	}
}

func translateKey(ev *tcell.EventKey) Event {
	mod := translateMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return Event{Type: EventKey, Ch: ev.Rune(), Mod: mod}
	}

	if sk, ok := specialKeys[k]; ok {
		return Event{Type: EventKey, Key: sk, Mod: mod, Special: true}
	}

	// Control range 1..26: uppercase letter regardless of the key
	// actually pressed, so Ctrl+a and Ctrl+A normalize identically.
	if k >= 1 && k <= 26 {
		return Event{
			Type: EventKey,
			Ch:   'A' + rune(k) - 1,
			Mod:  mod | ModCtrl,
		}
	}

	// Everything else carries its raw value.
	return Event{Type: EventKey, Ch: rune(k), Mod: mod}
}

func translateMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// translateMouse decodes position and classifies button and action.
// Button identity resolves left/middle/right bits before wheel bits.
// Wheel bits never persist in the held mask, so a scroll always
// surfaces as a newly-pressed bit even mid-drag. Click and
// double-click are synthesized from press/release pairs on one cell.
func (t *Translator) translateMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btns := ev.Buttons()
	e := Event{Type: EventMouse, X: x, Y: y, Mod: translateMod(ev.Modifiers())}

	pressed := btns &^ t.lastBtns
	released := t.lastBtns &^ btns
	t.lastBtns = btns &^ (tcell.WheelUp | tcell.WheelDown)

	if pressed != 0 {
		e.Btn = classifyButton(pressed)
		e.Action = MouseActionPress
		switch e.Btn {
		case MouseBtnLeft, MouseBtnMiddle, MouseBtnRight:
			// Wheel presses have no release and must not disturb
			// click tracking.
			t.pressX, t.pressY, t.pressBtn = x, y, e.Btn
		}
		return e
	}

	if released != 0 {
		e.Btn = classifyButton(released)
		if x == t.pressX && y == t.pressY && e.Btn == t.pressBtn {
			now := t.now()
			if e.Btn == t.clickBtn && x == t.clickX && y == t.clickY &&
				now.Sub(t.clickTime) <= doubleClickWindow {
				e.Action = MouseActionDoubleClick
				t.clickTime = time.Time{}
			} else {
				e.Action = MouseActionClick
				t.clickX, t.clickY, t.clickBtn = x, y, e.Btn
				t.clickTime = now
			}
		} else {
			e.Action = MouseActionRelease
		}
		return e
	}

	// Pure motion carries no event in the canonical model.
	return Event{Type: EventNone}
}

func classifyButton(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	case m&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case m&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	default:
		return MouseBtnNone
	}
}
