package terminal

import "github.com/gdamore/tcell/v2"

// Color is a logical color identifier into the fixed palette. The
// concrete backend registers one style pair per identifier at init;
// an unmapped identifier falls back to the default pair.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHeader
	ColorBorder
	ColorCursor
	ColorEditing
	ColorPrimaryKey
	ColorNumeric
	ColorNull
	ColorMarked
	ColorSortAsc
	ColorSortDesc
	ColorTitle
	ColorStatus
	ColorButton
	ColorButtonHot

	numColors
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// palette maps logical identifiers to concrete style pairs. Kept small
// and fixed; registered per Screen instance at Init.
var palette = [numColors]struct {
	fg, bg tcell.Color
}{
	ColorDefault:    {tcell.ColorDefault, tcell.ColorDefault},
	ColorHeader:     {tcell.ColorWhite, tcell.ColorNavy},
	ColorBorder:     {tcell.ColorGray, tcell.ColorDefault},
	ColorCursor:     {tcell.ColorBlack, tcell.ColorSilver},
	ColorEditing:    {tcell.ColorBlack, tcell.ColorYellow},
	ColorPrimaryKey: {tcell.ColorAqua, tcell.ColorDefault},
	ColorNumeric:    {tcell.ColorTeal, tcell.ColorDefault},
	ColorNull:       {tcell.ColorMaroon, tcell.ColorDefault},
	ColorMarked:     {tcell.ColorYellow, tcell.ColorDefault},
	ColorSortAsc:    {tcell.ColorGreen, tcell.ColorDefault},
	ColorSortDesc:   {tcell.ColorRed, tcell.ColorDefault},
	ColorTitle:      {tcell.ColorWhite, tcell.ColorNavy},
	ColorStatus:     {tcell.ColorSilver, tcell.ColorDarkBlue},
	ColorButton:     {tcell.ColorWhite, tcell.ColorDarkSlateGray},
	ColorButtonHot:  {tcell.ColorBlack, tcell.ColorSilver},
}

// styleFor converts a logical color plus attributes to a tcell style.
func styleFor(table *[numColors]tcell.Style, c Color, attrs Attr) tcell.Style {
	st := table[ColorDefault]
	if c < numColors {
		st = table[c]
	}
	if attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
