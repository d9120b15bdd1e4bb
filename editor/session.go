package editor

import (
	"unicode/utf8"

	"github.com/lixenwraith/dbview/clipboard"
)

// Clipboard is the OS clipboard dependency. Injectable so tests do not
// touch the real clipboard utility.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

type osClipboard struct{}

func (osClipboard) Write(text string) error { return clipboard.Write(text) }
func (osClipboard) Read() (string, error)   { return clipboard.Read() }

// Result is the outcome of one editing session.
type Result struct {
	Saved   bool
	SetNull bool
	Text    string
}

// Session is the state of one modal editing session. Created when the
// session opens, mutated only by editing operations, discarded when it
// closes.
type Session struct {
	title string
	buf   *Buffer

	// Cursor tracked both ways; kept consistent after every
	// cursor-affecting operation.
	cursor int // byte offset
	line   int
	col    int

	scrollY, scrollX int
	viewW, viewH     int

	readOnly bool
	modified bool

	// Internal clipboard slot plus the explicit consecutive-cut
	// marker (line index of the previous cut, -1 otherwise).
	slot    string
	lastCut int

	clip    Clipboard
	buttons []button
	running bool
	result  Result
}

// NewSession creates a session over the initial text.
func NewSession(title, initial string, readOnly bool) *Session {
	return &Session{
		title:    title,
		buf:      NewBuffer(initial),
		readOnly: readOnly,
		lastCut:  -1,
		clip:     osClipboard{},
	}
}

// Text returns the current buffer contents.
func (s *Session) Text() string { return s.buf.String() }

// Modified reports whether any mutation succeeded.
func (s *Session) Modified() bool { return s.modified }

// Cursor returns the cursor's (line, column) projection.
func (s *Session) Cursor() (line, col int) { return s.line, s.col }

// syncFromOffset recomputes the line/column projection after an
// offset-based move or a mutation.
func (s *Session) syncFromOffset() {
	s.line, s.col = s.buf.LineColAt(s.cursor)
}

// moveToLine recomputes the offset after a line-based move, clamping
// the column to the target line's length. The column is not remembered
// across the clamp.
func (s *Session) moveToLine(target int) {
	if target < 0 {
		target = 0
	}
	if target >= s.buf.LineCount() {
		target = s.buf.LineCount() - 1
	}
	s.cursor = s.buf.OffsetAt(target, s.col)
	s.syncFromOffset()
}

// MoveLeft moves the cursor one byte back, crossing line boundaries.
func (s *Session) MoveLeft() {
	if s.cursor > 0 {
		s.cursor--
		s.syncFromOffset()
	}
}

// MoveRight moves the cursor one byte forward, crossing line
// boundaries.
func (s *Session) MoveRight() {
	if s.cursor < s.buf.Len() {
		s.cursor++
		s.syncFromOffset()
	}
}

// MoveUp moves to the previous line, clamped.
func (s *Session) MoveUp() { s.moveToLine(s.line - 1) }

// MoveDown moves to the next line, clamped.
func (s *Session) MoveDown() { s.moveToLine(s.line + 1) }

// MoveLineStart moves to column 0 of the current line.
func (s *Session) MoveLineStart() {
	s.cursor = s.buf.OffsetAt(s.line, 0)
	s.syncFromOffset()
}

// MoveLineEnd moves past the last byte of the current line.
func (s *Session) MoveLineEnd() {
	s.cursor = s.buf.OffsetAt(s.line, s.buf.LineLen(s.line))
	s.syncFromOffset()
}

// PageUp shifts the target line up by one viewport height.
func (s *Session) PageUp() { s.moveToLine(s.line - s.pageSize()) }

// PageDown shifts the target line down by one viewport height.
func (s *Session) PageDown() { s.moveToLine(s.line + s.pageSize()) }

func (s *Session) pageSize() int {
	if s.viewH < 1 {
		return 1
	}
	return s.viewH
}

// Insert splices one character's bytes at the cursor and advances.
// Rejected in read-only mode.
func (s *Session) Insert(r rune) bool {
	if s.readOnly {
		return false
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	s.buf.Insert(s.cursor, enc[:n])
	s.cursor += n
	s.modified = true
	s.syncFromOffset()
	return true
}

// InsertNewline splices a terminator at the cursor.
func (s *Session) InsertNewline() bool {
	return s.Insert('\n')
}

// DeleteForward removes the byte at the cursor.
func (s *Session) DeleteForward() bool {
	if s.readOnly || s.cursor >= s.buf.Len() {
		return false
	}
	s.buf.Delete(s.cursor, 1)
	s.modified = true
	s.syncFromOffset()
	return true
}

// Backspace moves left then removes.
func (s *Session) Backspace() bool {
	if s.readOnly || s.cursor == 0 {
		return false
	}
	s.cursor--
	s.buf.Delete(s.cursor, 1)
	s.modified = true
	s.syncFromOffset()
	return true
}

// CutLine removes the current line plus its trailing terminator. A cut
// immediately following a cut that targeted the line now occupying the
// same index appends to the clipboard slot, enabling consecutive
// multi-line cuts; any other cut replaces the slot. The slot is
// mirrored to the OS clipboard; mirror failures are silent.
func (s *Session) CutLine() bool {
	if s.readOnly {
		return false
	}
	l := s.line
	start, end := s.buf.LineRange(l)
	if end == start && s.buf.LineCount() == 1 {
		// Nothing to cut in an empty buffer.
		return false
	}
	text := string(s.buf.text[start:end])
	if s.lastCut == l {
		s.slot += text
	} else {
		s.slot = text
	}
	s.lastCut = l

	s.buf.Delete(start, end-start)
	s.cursor = start
	if s.cursor > s.buf.Len() {
		s.cursor = s.buf.Len()
	}
	s.modified = true
	s.syncFromOffset()

	_ = s.clip.Write(s.slot)
	return true
}

// Paste splices clipboard contents at the cursor, preferring the OS
// clipboard when it reads successfully and non-empty, falling back to
// the internal slot otherwise.
func (s *Session) Paste() bool {
	if s.readOnly {
		return false
	}
	text := s.slot
	if os, err := s.clip.Read(); err == nil && os != "" {
		text = os
	}
	if text == "" {
		return false
	}
	s.buf.Insert(s.cursor, []byte(text))
	s.cursor += len(text)
	s.modified = true
	s.syncFromOffset()
	return true
}

// adjustScroll keeps the cursor inside the viewport. Called after
// every cursor-affecting operation, never during a mutation.
func (s *Session) adjustScroll() {
	if s.viewH > 0 {
		if s.line < s.scrollY {
			s.scrollY = s.line
		}
		if s.line >= s.scrollY+s.viewH {
			s.scrollY = s.line - s.viewH + 1
		}
	}
	if s.scrollY < 0 {
		s.scrollY = 0
	}
	if s.viewW > 0 {
		if s.col < s.scrollX {
			s.scrollX = s.col
		}
		if s.col >= s.scrollX+s.viewW {
			s.scrollX = s.col - s.viewW + 1
		}
	}
	if s.scrollX < 0 {
		s.scrollX = 0
	}
}
