// Package grid renders a scrollable result table into a target
// rectangle and resolves mouse coordinates back to data cells.
package grid

import (
	"github.com/lixenwraith/dbview/data"
	"github.com/lixenwraith/dbview/terminal"
)

// Params is the caller-assembled read-only view of one frame. The
// renderer never retains it past the call that receives it.
type Params struct {
	Rect   terminal.Region
	Table  *data.Table
	Widths []int // display columns per table column

	CurRow, CurCol       int
	ScrollRow, ScrollCol int

	Focused bool

	// In-progress inline edit of the cursor cell
	Editing bool
	EditBuf string
	EditPos int // byte offset into EditBuf

	Marked map[int]bool // row index -> marked
	Sorts  []data.SortTerm

	Border bool
}

// VisibleCol is one column included in the current layout.
type VisibleCol struct {
	Index int // index into Table.Columns / Widths
	X     int // left edge, relative to Rect
	W     int
}

// Layout is the resolved column and row geometry for one frame.
type Layout struct {
	Cols     []VisibleCol
	Dividers []int // relative x of the separator after each column

	BorderY int // -1 when absent
	HeaderY int
	SortY   int // -1 when no sort terms are active
	DataY   int
	DataH   int // data rows that fit; may be <= 0
}

// Compute walks columns from the horizontal scroll offset,
// accumulating widths. A column that would not fit entirely within the
// remaining width is excluded; partial columns are never rendered.
func Compute(p Params) Layout {
	l := Layout{BorderY: -1, SortY: -1}

	x := 0
	for c := p.ScrollCol; c < len(p.Widths); c++ {
		w := p.Widths[c]
		if w < 1 {
			w = 1
		}
		if x+w > p.Rect.W {
			break
		}
		l.Cols = append(l.Cols, VisibleCol{Index: c, X: x, W: w})
		div := x + w
		if div < p.Rect.W {
			l.Dividers = append(l.Dividers, div)
		}
		x = div + 1
	}

	y := 0
	if p.Border {
		l.BorderY = y
		y++
	}
	l.HeaderY = y
	y++
	if len(p.Sorts) > 0 {
		l.SortY = y
		y++
	}
	l.DataY = y
	l.DataH = p.Rect.H - y
	return l
}

// HitTest resolves an absolute screen coordinate to a data cell by
// re-walking the same column accumulation used for drawing. A
// coordinate outside any column or row yields ok=false, never an
// error.
func HitTest(p Params, x, y int) (row, col int, ok bool) {
	if p.Table == nil || len(p.Table.Columns) == 0 || p.Rect.Empty() {
		return 0, 0, false
	}
	if !p.Rect.Contains(x, y) {
		return 0, 0, false
	}

	l := Compute(p)
	rx := x - p.Rect.X
	ry := y - p.Rect.Y

	if ry < l.DataY {
		return 0, 0, false
	}
	row = ry - l.DataY + p.ScrollRow
	if row < 0 || row >= len(p.Table.Rows) {
		return 0, 0, false
	}

	for _, vc := range l.Cols {
		if rx >= vc.X && rx < vc.X+vc.W {
			return row, vc.Index, true
		}
	}
	return 0, 0, false
}
