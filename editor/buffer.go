// Package editor implements the modal full-screen editor used for
// long cell values: a mutable byte buffer with a derived line index,
// dual offset/line-column cursor tracking, scrolling, and OS clipboard
// interop.
package editor

// lineSpan is one line's byte range. n excludes the terminator.
type lineSpan struct {
	off, n int
}

// Buffer is a growable byte buffer with a derived line index. The
// index is fully rebuilt after every mutation, never partially
// patched; it always has at least one entry and fully covers the
// buffer, with an implicit trailing empty line when the buffer ends in
// a terminator.
type Buffer struct {
	text  []byte
	lines []lineSpan
}

// NewBuffer creates a buffer over the initial text.
func NewBuffer(initial string) *Buffer {
	b := &Buffer{text: []byte(initial)}
	b.rebuild()
	return b
}

// rebuild derives the full line index from the buffer contents.
func (b *Buffer) rebuild() {
	b.lines = b.lines[:0]
	start := 0
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			b.lines = append(b.lines, lineSpan{off: start, n: i - start})
			start = i + 1
		}
	}
	b.lines = append(b.lines, lineSpan{off: start, n: len(b.text) - start})
}

// String returns the full buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// LineCount returns the number of indexed lines (always >= 1).
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i without its terminator.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	sp := b.lines[i]
	return string(b.text[sp.off : sp.off+sp.n])
}

// LineLen returns the byte length of line i without its terminator.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return b.lines[i].n
}

// LineRange returns line i's byte range including its terminator when
// one is present.
func (b *Buffer) LineRange(i int) (start, end int) {
	if i < 0 || i >= len(b.lines) {
		return 0, 0
	}
	sp := b.lines[i]
	end = sp.off + sp.n
	if end < len(b.text) && b.text[end] == '\n' {
		end++
	}
	return sp.off, end
}

// LineColAt projects a byte offset onto its (line, column) pair. The
// offset is clamped to the buffer. An offset sitting on a line's
// terminator belongs to that line at column line-length.
func (b *Buffer) LineColAt(off int) (line, col int) {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	for i, sp := range b.lines {
		if off <= sp.off+sp.n {
			return i, off - sp.off
		}
	}
	last := len(b.lines) - 1
	return last, b.lines[last].n
}

// OffsetAt projects a (line, column) pair back onto a byte offset,
// clamping the line to the index and the column to the target line's
// length so vertical moves never produce an out-of-range offset.
func (b *Buffer) OffsetAt(line, col int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(b.lines) {
		line = len(b.lines) - 1
	}
	sp := b.lines[line]
	if col < 0 {
		col = 0
	}
	if col > sp.n {
		col = sp.n
	}
	return sp.off + col
}

// Insert splices p into the buffer at off and rebuilds the line index.
func (b *Buffer) Insert(off int, p []byte) {
	if len(p) == 0 {
		return
	}
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	b.text = append(b.text[:off], append(append([]byte(nil), p...), b.text[off:]...)...)
	b.rebuild()
}

// Delete removes n bytes at off and rebuilds the line index.
func (b *Buffer) Delete(off, n int) {
	if off < 0 || n <= 0 || off >= len(b.text) {
		return
	}
	if off+n > len(b.text) {
		n = len(b.text) - off
	}
	b.text = append(b.text[:off], b.text[off+n:]...)
	b.rebuild()
}
