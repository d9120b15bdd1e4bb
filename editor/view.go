package editor

import (
	"strconv"

	"github.com/lixenwraith/dbview/terminal"
)

// statusRow returns the screen row carrying the button bar.
func (s *Session) statusRow() int {
	return s.viewH + 1
}

// draw renders the full-screen session: title row, text viewport,
// status bar with clickable buttons.
func (s *Session) draw(b terminal.Backend) {
	b.BeginFrame()
	w, h := b.Size()
	s.viewW = w
	s.viewH = h - 2
	if s.viewH < 1 {
		s.viewH = 1
	}

	s.drawTitle(b, w)
	s.drawText(b, w)
	s.drawStatus(b, w)

	// Hardware cursor on the edit position when visible.
	cx := s.col - s.scrollX
	cy := s.line - s.scrollY
	if cx >= 0 && cx < s.viewW && cy >= 0 && cy < s.viewH {
		b.ShowCursor(cx, cy+1)
	} else {
		b.HideCursor()
	}

	b.EndFrame()
}

func (s *Session) drawTitle(b terminal.Backend, w int) {
	title := " " + s.title
	if s.readOnly {
		title += " [read-only]"
	} else if s.modified {
		title += " [+]"
	}
	b.SetColor(terminal.ColorTitle, terminal.AttrBold)
	b.DrawStringWidth(0, 0, title, w)
	b.ResetColor()
}

func (s *Session) drawText(b terminal.Backend, w int) {
	area := terminal.NewRegion(0, 1, w, s.viewH)
	b.BeginRegion(area)
	defer b.EndRegion()

	for row := 0; row < s.viewH; row++ {
		li := s.scrollY + row
		if li >= s.buf.LineCount() {
			break
		}
		line := s.buf.Line(li)
		if s.scrollX >= len(line) {
			continue
		}
		b.DrawString(0, 1+row, line[s.scrollX:])
	}
}

// drawStatus renders the button bar and records each button's
// clickable region for mouse dispatch.
func (s *Session) drawStatus(b terminal.Backend, w int) {
	y := s.statusRow()
	b.SetColor(terminal.ColorStatus, terminal.AttrNone)
	b.HLine(0, y, w, ' ')

	type btnDef struct {
		label string
		act   action
	}
	var defs []btnDef
	if s.readOnly {
		defs = []btnDef{{"[Esc] Close", actCancel}}
	} else {
		defs = []btnDef{
			{"[^S] Save", actSave},
			{"[^N] NULL", actSetNull},
			{"[^E] Empty", actSetEmpty},
			{"[Esc] Cancel", actCancel},
		}
	}

	s.buttons = s.buttons[:0]
	x := 1
	for _, d := range defs {
		b.SetColor(terminal.ColorButton, terminal.AttrNone)
		b.DrawString(x, y, d.label)
		s.buttons = append(s.buttons, button{x0: x, x1: x + len(d.label) - 1, act: d.act})
		x += len(d.label) + 2
	}

	// Cursor position, right-aligned.
	pos := strconv.Itoa(s.line+1) + ":" + strconv.Itoa(s.col+1)
	b.SetColor(terminal.ColorStatus, terminal.AttrDim)
	b.DrawString(w-len(pos)-1, y, pos)
	b.ResetColor()
}
