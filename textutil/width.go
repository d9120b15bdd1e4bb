// Package textutil measures and shapes strings by display column width.
package textutil

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal columns the string
// occupies. Pure ASCII takes the fast path; everything else is
// measured grapheme-aware.
func DisplayWidth(s string) int {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return len(s)
	}
	return uniseg.StringWidth(s)
}

// RuneDisplayWidth returns the column width of one code point.
// Non-printable and zero-width code points count as one column.
func RuneDisplayWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 1
	}
	return w
}

// TruncateWidth cuts s so it occupies at most w columns, appending an
// ellipsis when anything was removed.
func TruncateWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if DisplayWidth(s) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	out := make([]rune, 0, w)
	used := 0
	for _, r := range s {
		rw := RuneDisplayWidth(r)
		if used+rw > w-1 {
			break
		}
		out = append(out, r)
		used += rw
	}
	return string(out) + "…"
}

// PadRight extends s with spaces to exactly w columns, truncating
// first when it is too long.
func PadRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	dw := DisplayWidth(s)
	if dw > w {
		s = TruncateWidth(s, w)
		dw = DisplayWidth(s)
	}
	for dw < w {
		s += " "
		dw++
	}
	return s
}
