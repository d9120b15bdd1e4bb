package editor

import (
	"strings"
	"testing"
)

// checkIndex verifies the line-index invariants: at least one span,
// contiguous coverage of the whole buffer, terminators only between
// spans.
func checkIndex(t *testing.T, b *Buffer) {
	t.Helper()
	if len(b.lines) == 0 {
		t.Fatal("expected at least one line span")
	}
	off := 0
	for i, sp := range b.lines {
		if sp.off != off {
			t.Errorf("line %d: expected offset %d, got %d", i, off, sp.off)
		}
		off = sp.off + sp.n
		if i < len(b.lines)-1 {
			if off >= len(b.text) || b.text[off] != '\n' {
				t.Errorf("line %d: expected terminator at %d", i, off)
			}
			off++
		}
	}
	if off != len(b.text) {
		t.Errorf("index covers %d bytes, buffer has %d", off, len(b.text))
	}
}

func TestBufferLineIndex(t *testing.T) {
	cases := []struct {
		text  string
		lines []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b", ""}},
		{"\n\n", []string{"", "", ""}},
		{"one\ntwo\nthree", []string{"one", "two", "three"}},
	}
	for _, c := range cases {
		b := NewBuffer(c.text)
		checkIndex(t, b)
		if b.LineCount() != len(c.lines) {
			t.Errorf("%q: expected %d lines, got %d", c.text, len(c.lines), b.LineCount())
			continue
		}
		for i, want := range c.lines {
			if got := b.Line(i); got != want {
				t.Errorf("%q line %d: expected %q, got %q", c.text, i, want, got)
			}
		}
	}
}

func TestBufferLineColRoundTrip(t *testing.T) {
	b := NewBuffer("ab\ncde\n\nf")
	for off := 0; off <= b.Len(); off++ {
		line, col := b.LineColAt(off)
		if back := b.OffsetAt(line, col); back != off {
			t.Errorf("offset %d: round-tripped through (%d,%d) to %d", off, line, col, back)
		}
	}
}

func TestBufferLineColAtTerminator(t *testing.T) {
	b := NewBuffer("ab\ncd")
	// Offset 2 sits on the first line's terminator and belongs to
	// that line at column 2.
	if line, col := b.LineColAt(2); line != 0 || col != 2 {
		t.Errorf("expected (0,2), got (%d,%d)", line, col)
	}
	if line, col := b.LineColAt(3); line != 1 || col != 0 {
		t.Errorf("expected (1,0), got (%d,%d)", line, col)
	}
}

func TestBufferOffsetAtClamps(t *testing.T) {
	b := NewBuffer("long line\nx")
	if off := b.OffsetAt(1, 50); off != b.Len() {
		t.Errorf("expected column clamped to %d, got %d", b.Len(), off)
	}
	if off := b.OffsetAt(99, 0); off != b.lines[len(b.lines)-1].off {
		t.Errorf("expected line clamped to last, got %d", off)
	}
	if off := b.OffsetAt(-1, -1); off != 0 {
		t.Errorf("expected 0, got %d", off)
	}
}

func TestBufferLineRange(t *testing.T) {
	b := NewBuffer("ab\ncd\n")
	cases := []struct {
		line       int
		start, end int
	}{
		{0, 0, 3}, // includes terminator
		{1, 3, 6},
		{2, 6, 6}, // implicit trailing empty line
	}
	for _, c := range cases {
		start, end := b.LineRange(c.line)
		if start != c.start || end != c.end {
			t.Errorf("line %d: expected [%d,%d), got [%d,%d)", c.line, c.start, c.end, start, end)
		}
	}
}

func TestBufferInsertDelete(t *testing.T) {
	b := NewBuffer("hello")
	b.Insert(5, []byte(" world"))
	checkIndex(t, b)
	if b.String() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", b.String())
	}

	b.Insert(5, []byte("\n"))
	checkIndex(t, b)
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}

	b.Delete(5, 1)
	checkIndex(t, b)
	if b.String() != "hello world" || b.LineCount() != 1 {
		t.Errorf("expected single line %q, got %q (%d lines)", "hello world", b.String(), b.LineCount())
	}

	// Out-of-range deletes are no-ops or clamped.
	b.Delete(-1, 3)
	b.Delete(100, 3)
	b.Delete(8, 100)
	checkIndex(t, b)
	if b.String() != "hello wo" {
		t.Errorf("expected %q, got %q", "hello wo", b.String())
	}
}

func TestBufferLargeRebuild(t *testing.T) {
	text := strings.Repeat("line\n", 1000)
	b := NewBuffer(text)
	checkIndex(t, b)
	if b.LineCount() != 1001 {
		t.Errorf("expected 1001 lines, got %d", b.LineCount())
	}
	b.Delete(0, 5)
	checkIndex(t, b)
	if b.LineCount() != 1000 {
		t.Errorf("expected 1000 lines after delete, got %d", b.LineCount())
	}
}
