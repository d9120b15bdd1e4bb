package editor

import (
	"github.com/lixenwraith/dbview/terminal"
)

// action identifies one session-terminating or editing command bound
// to a status-bar button.
type action uint8

const (
	actNone action = iota
	actSave
	actSetNull
	actSetEmpty
	actCancel
)

// button is one clickable status-bar region, recomputed each draw.
type button struct {
	x0, x1 int // inclusive byte columns on the status row
	act    action
}

// Edit runs a blocking full-screen editing session over one text value
// and returns its outcome. In read-only mode every mutating operation
// is disabled and the session terminates only via Cancel/Close.
func Edit(b terminal.Backend, title, initial string, readOnly bool) Result {
	s := NewSession(title, initial, readOnly)
	return s.Run(b)
}

// Run drives the session loop: draw, wait for one event, apply it,
// re-adjust the viewport. Terminates on Cancel, Save, Set-NULL, or
// Set-Empty.
func (s *Session) Run(b terminal.Backend) Result {
	s.running = true
	for s.running {
		s.draw(b)
		ev := b.Wait(-1)
		s.handle(ev)
		s.adjustScroll()
	}
	b.HideCursor()
	return s.result
}

func (s *Session) finish(act action) {
	switch act {
	case actSave:
		if s.readOnly {
			return
		}
		s.result = Result{Saved: true, Text: s.buf.String()}
	case actSetNull:
		if s.readOnly {
			return
		}
		s.result = Result{Saved: true, SetNull: true}
	case actSetEmpty:
		if s.readOnly {
			return
		}
		s.result = Result{Saved: true, Text: ""}
	case actCancel:
		s.result = Result{}
	default:
		return
	}
	s.running = false
}

func (s *Session) handle(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventMouse:
		s.handleMouse(ev)
	case terminal.EventKey:
		s.handleKey(ev)
	}
}

// handleMouse maps clicks on the status-bar button regions to the same
// outcomes as their keyboard equivalents.
func (s *Session) handleMouse(ev terminal.Event) {
	if ev.Btn != terminal.MouseBtnLeft {
		return
	}
	if ev.Action != terminal.MouseActionPress && ev.Action != terminal.MouseActionClick {
		return
	}
	if ev.Y != s.statusRow() {
		return
	}
	for _, bt := range s.buttons {
		if ev.X >= bt.x0 && ev.X <= bt.x1 {
			s.finish(bt.act)
			return
		}
	}
}

func (s *Session) handleKey(ev terminal.Event) {
	if ev.Special {
		switch ev.Key {
		case terminal.KeyLeft:
			s.MoveLeft()
		case terminal.KeyRight:
			s.MoveRight()
		case terminal.KeyUp:
			s.MoveUp()
		case terminal.KeyDown:
			s.MoveDown()
		case terminal.KeyHome:
			s.MoveLineStart()
		case terminal.KeyEnd:
			s.MoveLineEnd()
		case terminal.KeyPageUp:
			s.PageUp()
		case terminal.KeyPageDown:
			s.PageDown()
		case terminal.KeyEnter:
			s.InsertNewline()
		case terminal.KeyBackspace:
			s.Backspace()
		case terminal.KeyDelete:
			s.DeleteForward()
		case terminal.KeyEscape:
			s.finish(actCancel)
		}
		return
	}

	switch {
	case ev.IsCtrl('s'):
		s.finish(actSave)
	case ev.IsCtrl('n'):
		s.finish(actSetNull)
	case ev.IsCtrl('e'):
		s.finish(actSetEmpty)
	case ev.IsCtrl('k'):
		s.CutLine()
	case ev.IsCtrl('v'):
		s.Paste()
	case ev.Type == terminal.EventKey && !ev.Special && ev.Mod == terminal.ModNone && ev.Ch >= 32:
		s.Insert(ev.Ch)
	}
}
