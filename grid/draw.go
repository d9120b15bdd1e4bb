package grid

import (
	"strconv"

	"github.com/lixenwraith/dbview/data"
	"github.com/lixenwraith/dbview/terminal"
	"github.com/lixenwraith/dbview/textutil"
)

// Draw renders the table into the target rectangle: optional border
// row, header, sort-indicator row when sorting is active, then data
// rows until the bottom edge. A nil backend or table, or a zero-column
// data set, suppresses all drawing.
func Draw(b terminal.Backend, p Params) {
	if b == nil || p.Table == nil || len(p.Table.Columns) == 0 || p.Rect.Empty() {
		return
	}

	l := Compute(p)
	b.BeginRegion(p.Rect)
	defer b.EndRegion()

	if l.BorderY >= 0 {
		drawBorderRow(b, p, l)
	}
	drawHeader(b, p, l)
	if l.SortY >= 0 {
		drawSortRow(b, p, l)
	}
	drawRows(b, p, l)
	b.ResetColor()
}

func drawBorderRow(b terminal.Backend, p Params, l Layout) {
	y := p.Rect.Y + l.BorderY
	b.SetColor(terminal.ColorBorder, terminal.AttrNone)
	b.HLine(p.Rect.X, y, p.Rect.W, '─')
	for _, d := range l.Dividers {
		b.DrawChar(p.Rect.X+d, y, '┬')
	}
}

func drawHeader(b terminal.Backend, p Params, l Layout) {
	y := p.Rect.Y + l.HeaderY
	b.SetColor(terminal.ColorHeader, terminal.AttrBold)
	b.HLine(p.Rect.X, y, p.Rect.W, ' ')
	for _, vc := range l.Cols {
		b.DrawStringWidth(p.Rect.X+vc.X, y, cellText(p.Table.Columns[vc.Index].Name, vc.W), vc.W)
	}
	b.SetColor(terminal.ColorBorder, terminal.AttrNone)
	for _, d := range l.Dividers {
		b.DrawChar(p.Rect.X+d, y, '│')
	}
}

// sortIndicator builds the per-column sort cell: direction glyph,
// direction word, and 1-based priority among active terms.
func sortIndicator(p Params, col int) (string, terminal.Color) {
	for i, t := range p.Sorts {
		if t.Column != col {
			continue
		}
		ord := strconv.Itoa(i + 1)
		if t.Desc {
			return "▼ desc " + ord, terminal.ColorSortDesc
		}
		return "▲ asc " + ord, terminal.ColorSortAsc
	}
	return "", terminal.ColorDefault
}

func drawSortRow(b terminal.Backend, p Params, l Layout) {
	y := p.Rect.Y + l.SortY
	for _, vc := range l.Cols {
		text, color := sortIndicator(p, vc.Index)
		b.SetColor(color, terminal.AttrNone)
		b.DrawStringWidth(p.Rect.X+vc.X, y, text, vc.W)
	}
	b.SetColor(terminal.ColorBorder, terminal.AttrNone)
	for _, d := range l.Dividers {
		b.DrawChar(p.Rect.X+d, y, '│')
	}
}

func drawRows(b terminal.Backend, p Params, l Layout) {
	for i := 0; i < l.DataH; i++ {
		r := p.ScrollRow + i
		if r < 0 || r >= len(p.Table.Rows) {
			break
		}
		y := p.Rect.Y + l.DataY + i
		drawRow(b, p, l, r, y)
	}
}

func drawRow(b terminal.Backend, p Params, l Layout, r, y int) {
	row := p.Table.Rows[r]
	marked := p.Marked[r]

	for _, vc := range l.Cols {
		// A row shorter than the declared column count is skipped,
		// not an error.
		if vc.Index >= len(row) {
			continue
		}
		x := p.Rect.X + vc.X

		if p.Editing && r == p.CurRow && vc.Index == p.CurCol {
			drawEditOverlay(b, p, x, y, vc.W)
			continue
		}

		v := row[vc.Index]
		color, attrs := cellStyle(p, r, vc.Index, v, marked)
		b.SetColor(color, attrs)
		text := v.Text
		if v.Null {
			text = "NULL"
		}
		b.DrawStringWidth(x, y, cellText(text, vc.W), vc.W)
	}

	b.SetColor(terminal.ColorBorder, terminal.AttrNone)
	for _, d := range l.Dividers {
		b.DrawChar(p.Rect.X+d, y, '│')
	}
}

// cellText marks clipped content with a trailing ellipsis instead of
// cutting it silently at the cell edge.
func cellText(text string, w int) string {
	if textutil.DisplayWidth(text) <= w {
		return text
	}
	return textutil.TruncateWidth(text, w)
}

// cellStyle resolves styling precedence: the actively-edited cell wins
// over the cursor cell, which wins over plain styling. The edited cell
// is handled before this is called.
func cellStyle(p Params, r, c int, v data.Value, marked bool) (terminal.Color, terminal.Attr) {
	attrs := terminal.AttrNone
	if marked {
		attrs |= terminal.AttrBold
	}

	if r == p.CurRow && c == p.CurCol {
		if !p.Focused {
			attrs |= terminal.AttrDim
		}
		return terminal.ColorCursor, attrs
	}
	if v.Null {
		return terminal.ColorNull, attrs
	}
	col := p.Table.Columns[c]
	if col.PrimaryKey {
		return terminal.ColorPrimaryKey, attrs
	}
	if col.Type.Numeric() {
		return terminal.ColorNumeric, attrs
	}
	return terminal.ColorDefault, attrs
}

// drawEditOverlay shows the live edit buffer instead of the committed
// value, horizontally scrolled so the cursor byte stays inside the
// cell. The byte under the cursor renders in reverse video.
func drawEditOverlay(b terminal.Backend, p Params, x, y, w int) {
	if w <= 0 {
		return
	}
	scroll := 0
	if p.EditPos >= w {
		scroll = p.EditPos - w + 1
	}
	for i := 0; i < w; i++ {
		idx := scroll + i
		ch := byte(' ')
		if idx < len(p.EditBuf) {
			ch = p.EditBuf[idx]
		}
		attrs := terminal.AttrNone
		if idx == p.EditPos {
			attrs = terminal.AttrReverse
		}
		b.SetColor(terminal.ColorEditing, attrs)
		b.DrawChar(x+i, y, rune(ch))
	}
}

// DrawPendingRow renders the in-progress new-row draft as a trailing
// overlay row below the last data row (clamped to the rectangle).
func DrawPendingRow(b terminal.Backend, p Params, draft []string) {
	if b == nil || p.Table == nil || len(p.Table.Columns) == 0 || p.Rect.Empty() {
		return
	}
	l := Compute(p)
	if l.DataH <= 0 {
		return
	}

	ry := l.DataY + (len(p.Table.Rows) - p.ScrollRow)
	if ry >= p.Rect.H {
		ry = p.Rect.H - 1
	}
	if ry < l.DataY {
		ry = l.DataY
	}
	y := p.Rect.Y + ry

	b.BeginRegion(p.Rect)
	defer b.EndRegion()

	b.SetColor(terminal.ColorEditing, terminal.AttrNone)
	b.HLine(p.Rect.X, y, p.Rect.W, ' ')
	for _, vc := range l.Cols {
		text := ""
		if vc.Index < len(draft) {
			text = draft[vc.Index]
		}
		b.DrawStringWidth(p.Rect.X+vc.X, y, cellText(text, vc.W), vc.W)
	}
	b.ResetColor()
}
