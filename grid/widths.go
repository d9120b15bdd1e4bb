package grid

import (
	"github.com/lixenwraith/dbview/data"
	"github.com/lixenwraith/dbview/textutil"
)

// AutoWidths computes per-column display widths from header and cell
// content, clamped to maxW columns each. NULL renders four wide.
func AutoWidths(t *data.Table, maxW int) []int {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = textutil.DisplayWidth(c.Name)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			w := 4 // "NULL"
			if !row[i].Null {
				w = textutil.DisplayWidth(row[i].Text)
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
		if widths[i] > maxW {
			widths[i] = maxW
		}
	}
	return widths
}
