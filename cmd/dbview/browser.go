package main

import (
	"log"
	"strconv"

	"github.com/lixenwraith/dbview/data"
	"github.com/lixenwraith/dbview/editor"
	"github.com/lixenwraith/dbview/grid"
	"github.com/lixenwraith/dbview/terminal"
	"github.com/lixenwraith/dbview/textutil"
)

// browser is the demo browse loop over one sample table. Real callers
// own equivalent state in their workspace/tab layer; this exercises
// every entry point the core exposes.
type browser struct {
	tbl    *data.Table
	widths []int

	curRow, curCol       int
	scrollRow, scrollCol int

	marked map[int]bool
	sorts  []data.SortTerm
	page   data.Pagination

	drafting bool
	draft    []string
	draftCol int

	running bool
}

func newBrowser(tbl *data.Table) *browser {
	return &browser{
		tbl:    tbl,
		widths: grid.AutoWidths(tbl, 24),
		marked: make(map[int]bool),
		page:   data.Pagination{Total: len(tbl.Rows)},
	}
}

func (br *browser) run(b terminal.Backend) {
	br.running = true
	for br.running {
		br.draw(b)
		ev := b.Wait(-1)
		br.handle(b, ev)
	}
}

func (br *browser) gridParams(b terminal.Backend) grid.Params {
	w, h := b.Size()
	return grid.Params{
		Rect:      terminal.NewRegion(0, 0, w, h-1),
		Table:     br.tbl,
		Widths:    br.widths,
		CurRow:    br.curRow,
		CurCol:    br.curCol,
		ScrollRow: br.scrollRow,
		ScrollCol: br.scrollCol,
		Focused:   true,
		Marked:    br.marked,
		Sorts:     br.sorts,
		Border:    true,
	}
}

func (br *browser) draw(b terminal.Backend) {
	b.BeginFrame()
	b.HideCursor()

	p := br.gridParams(b)
	grid.Draw(b, p)
	if br.drafting {
		grid.DrawPendingRow(b, p, br.draft)
	}
	br.drawStatus(b)

	b.EndFrame()
}

func (br *browser) drawStatus(b terminal.Backend) {
	w, h := b.Size()
	y := h - 1
	b.SetColor(terminal.ColorStatus, terminal.AttrNone)
	b.HLine(0, y, w, ' ')

	total := strconv.Itoa(br.page.Total)
	if br.page.Approximate {
		total = "~" + total
	}
	left := " row " + strconv.Itoa(br.curRow+1) + "/" + total +
		"  col " + strconv.Itoa(br.curCol+1)
	if n := len(br.marked); n > 0 {
		left += "  marked " + strconv.Itoa(n)
	}

	hints := "Enter:edit  s:sort  space:mark  i:new row  q:quit "
	leftW := w - len(hints)
	if leftW < 0 {
		leftW = 0
	}
	b.DrawString(0, y, textutil.PadRight(left, leftW))
	b.SetColor(terminal.ColorStatus, terminal.AttrDim)
	b.DrawString(w-len(hints), y, hints)
	b.ResetColor()
}

func (br *browser) handle(b terminal.Backend, ev terminal.Event) {
	switch ev.Type {
	case terminal.EventMouse:
		br.handleMouse(b, ev)
	case terminal.EventKey:
		if br.drafting {
			br.handleDraftKey(ev)
		} else {
			br.handleKey(b, ev)
		}
	}
	br.clampCursor()
	br.adjustScroll(b)
}

func (br *browser) handleMouse(b terminal.Backend, ev terminal.Event) {
	switch ev.Btn {
	case terminal.MouseBtnWheelUp:
		br.curRow -= 3
		return
	case terminal.MouseBtnWheelDown:
		br.curRow += 3
		return
	case terminal.MouseBtnLeft:
	default:
		return
	}

	row, col, ok := grid.HitTest(br.gridParams(b), ev.X, ev.Y)
	if !ok {
		return
	}
	br.curRow, br.curCol = row, col
	if ev.Action == terminal.MouseActionDoubleClick {
		br.editCell(b)
	}
}

func (br *browser) handleKey(b terminal.Backend, ev terminal.Event) {
	if ev.Special {
		switch ev.Key {
		case terminal.KeyUp:
			br.curRow--
		case terminal.KeyDown:
			br.curRow++
		case terminal.KeyLeft:
			br.curCol--
		case terminal.KeyRight:
			br.curCol++
		case terminal.KeyHome:
			br.curCol = 0
		case terminal.KeyEnd:
			br.curCol = len(br.tbl.Columns) - 1
		case terminal.KeyPageUp:
			br.curRow -= br.pageRows(b)
		case terminal.KeyPageDown:
			br.curRow += br.pageRows(b)
		case terminal.KeyEnter:
			br.editCell(b)
		case terminal.KeyEscape:
			br.running = false
		}
		return
	}

	if ev.IsCtrl('c') {
		br.running = false
		return
	}

	switch ev.Rune() {
	case 'q':
		br.running = false
	case ' ':
		br.marked[br.curRow] = !br.marked[br.curRow]
		if !br.marked[br.curRow] {
			delete(br.marked, br.curRow)
		}
	case 's':
		br.cycleSort(br.curCol, false)
	case 'S':
		br.cycleSort(br.curCol, true)
	case 'i':
		br.drafting = true
		br.draft = make([]string, len(br.tbl.Columns))
		br.draftCol = 0
	}
}

// handleDraftKey edits the pending-row draft: printable characters
// fill the current draft cell, Tab advances, Enter commits, Escape
// discards.
func (br *browser) handleDraftKey(ev terminal.Event) {
	if ev.Special {
		switch ev.Key {
		case terminal.KeyTab:
			br.draftCol = (br.draftCol + 1) % len(br.draft)
		case terminal.KeyBackspace:
			cell := br.draft[br.draftCol]
			if len(cell) > 0 {
				br.draft[br.draftCol] = cell[:len(cell)-1]
			}
		case terminal.KeyEnter:
			br.commitDraft()
		case terminal.KeyEscape:
			br.drafting = false
			br.draft = nil
		}
		return
	}
	if r := ev.Rune(); r != 0 {
		br.draft[br.draftCol] += string(r)
	}
}

func (br *browser) commitDraft() {
	row := make(data.Row, len(br.draft))
	for i, text := range br.draft {
		row[i] = data.Value{Text: text, Null: text == ""}
	}
	br.tbl.Rows = append(br.tbl.Rows, row)
	br.page.Total = len(br.tbl.Rows)
	br.widths = grid.AutoWidths(br.tbl, 24)
	br.drafting = false
	br.draft = nil
	log.Printf("draft row committed, %d rows", len(br.tbl.Rows))
}

// cycleSort toggles asc -> desc -> off for a column. Additive sorts
// append as lower-priority terms.
func (br *browser) cycleSort(col int, additive bool) {
	for i, t := range br.sorts {
		if t.Column != col {
			continue
		}
		if !t.Desc {
			br.sorts[i].Desc = true
		} else {
			br.sorts = append(br.sorts[:i], br.sorts[i+1:]...)
		}
		return
	}
	term := data.SortTerm{Column: col}
	if additive {
		br.sorts = append(br.sorts, term)
	} else {
		br.sorts = []data.SortTerm{term}
	}
}

func (br *browser) editCell(b terminal.Backend) {
	if br.curRow < 0 || br.curRow >= len(br.tbl.Rows) {
		return
	}
	row := br.tbl.Rows[br.curRow]
	if br.curCol < 0 || br.curCol >= len(row) {
		return
	}
	col := br.tbl.Columns[br.curCol]
	v := row[br.curCol]

	initial := v.Text
	if v.Null {
		initial = ""
	}
	readOnly := col.AutoIncrement
	res := editor.Edit(b, col.Name, initial, readOnly)
	if !res.Saved {
		return
	}
	if res.SetNull {
		row[br.curCol] = data.Value{Null: true}
	} else {
		row[br.curCol] = data.Value{Text: res.Text}
	}
	br.widths = grid.AutoWidths(br.tbl, 24)
}

func (br *browser) pageRows(b terminal.Backend) int {
	l := grid.Compute(br.gridParams(b))
	if l.DataH < 1 {
		return 1
	}
	return l.DataH
}

func (br *browser) clampCursor() {
	if br.curRow < 0 {
		br.curRow = 0
	}
	if n := len(br.tbl.Rows); br.curRow >= n && n > 0 {
		br.curRow = n - 1
	}
	if br.curCol < 0 {
		br.curCol = 0
	}
	if n := len(br.tbl.Columns); br.curCol >= n {
		br.curCol = n - 1
	}
}

func (br *browser) adjustScroll(b terminal.Backend) {
	l := grid.Compute(br.gridParams(b))
	if l.DataH > 0 {
		if br.curRow < br.scrollRow {
			br.scrollRow = br.curRow
		}
		if br.curRow >= br.scrollRow+l.DataH {
			br.scrollRow = br.curRow - l.DataH + 1
		}
	}
	if br.curCol < br.scrollCol {
		br.scrollCol = br.curCol
	}
	// Scroll right until the cursor column is included in the layout.
	for br.scrollCol < br.curCol {
		included := false
		for _, vc := range l.Cols {
			if vc.Index == br.curCol {
				included = true
				break
			}
		}
		if included {
			break
		}
		br.scrollCol++
		l = grid.Compute(br.gridParams(b))
	}
	if br.scrollRow < 0 {
		br.scrollRow = 0
	}
	if br.scrollCol < 0 {
		br.scrollCol = 0
	}
}

// sampleTable builds the demo data set.
func sampleTable() *data.Table {
	cols := []data.Column{
		{Name: "id", Type: data.TypeInt, PrimaryKey: true, AutoIncrement: true},
		{Name: "name", Type: data.TypeText},
		{Name: "email", Type: data.TypeText, Nullable: true},
		{Name: "score", Type: data.TypeFloat, Nullable: true},
		{Name: "created_at", Type: data.TypeTime},
	}
	rows := []data.Row{
		{{Text: "1"}, {Text: "ada"}, {Text: "ada@example.org"}, {Text: "97.5"}, {Text: "2024-01-12 09:15:00"}},
		{{Text: "2"}, {Text: "grace"}, {Null: true}, {Text: "88.0"}, {Text: "2024-02-03 14:02:11"}},
		{{Text: "3"}, {Text: "linus"}, {Text: "linus@example.org"}, {Null: true}, {Text: "2024-02-28 18:40:37"}},
		{{Text: "4"}, {Text: "margaret"}, {Text: "mh@example.org"}, {Text: "99.9"}, {Text: "2024-03-15 08:00:59"}},
		{{Text: "5"}, {Text: "dennis"}, {Null: true}, {Null: true}, {Text: "2024-04-01 12:30:00"}},
	}
	return &data.Table{Columns: cols, Rows: rows}
}
