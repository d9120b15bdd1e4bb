package terminal

import "strconv"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Key identifies a named special key
type Key uint16

const (
	KeyNone Key = iota

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionPress MouseAction = iota
	MouseActionRelease
	MouseActionClick
	MouseActionDoubleClick
)

// Event is the canonical representation of one input occurrence.
// Produced fresh on every Poll/Wait call, never retained.
//
// For key events, Special distinguishes named keys (Key holds the
// semantic code) from character input (Ch holds the value). Ctrl+letter
// arrives as Ch in 'A'..'Z' with ModCtrl set and Special false.
type Event struct {
	Type    EventType
	Key     Key
	Ch      rune
	Mod     Modifier
	Special bool

	// Mouse fields
	X, Y   int
	Btn    MouseButton
	Action MouseAction

	// Resize fields
	Width, Height int
}

// IsPrintable reports whether the event is an unmodified printable
// character (32..126).
func (e Event) IsPrintable() bool {
	return e.Type == EventKey && !e.Special && e.Mod == ModNone &&
		e.Ch >= 32 && e.Ch <= 126
}

// Rune returns the character value for printable events, 0 otherwise.
func (e Event) Rune() rune {
	if !e.IsPrintable() {
		return 0
	}
	return e.Ch
}

// IsCtrl reports whether the event is Ctrl plus the given letter,
// case-insensitively. The stored value is always uppercase.
func (e Event) IsCtrl(letter rune) bool {
	if e.Type != EventKey || e.Special || e.Mod&ModCtrl == 0 {
		return false
	}
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return e.Ch == letter
}

// Is reports whether the event is the given named special key.
func (e Event) Is(k Key) bool {
	return e.Type == EventKey && e.Special && e.Key == k
}

// FuncKey returns the 1-based ordinal for F1..F12 events, 0 otherwise.
func (e Event) FuncKey() int {
	if e.Type != EventKey || !e.Special {
		return 0
	}
	if e.Key < KeyF1 || e.Key > KeyF12 {
		return 0
	}
	return int(e.Key-KeyF1) + 1
}

// String returns a short description for debug logging
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Special {
			return "key:" + keyName(e.Key)
		}
		return "ch:" + string(e.Ch)
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

func keyName(k Key) string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6,
		KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	default:
		return "None"
	}
}
