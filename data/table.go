// Package data defines the tabular shapes the rendering core consumes
// from the query/session layer. The core never mutates them.
package data

// ColType is the coarse column type classification the renderer
// distinguishes.
type ColType uint8

const (
	TypeText ColType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeTime
	TypeBlob
)

// Numeric reports whether values of this type are numbers.
func (t ColType) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// Column carries the schema metadata the renderer styles by.
type Column struct {
	Name          string
	Type          ColType
	PrimaryKey    bool
	Nullable      bool
	AutoIncrement bool
	Default       string
	HasDefault    bool
}

// Value is one typed cell value with its null flag.
type Value struct {
	Text string
	Null bool
}

// Row is one result row. A row shorter than the declared column count
// is legal; the renderer skips the missing tail.
type Row []Value

// Table is one query result window.
type Table struct {
	Columns []Column
	Rows    []Row
}

// SortTerm describes one active sort. Priority is the term's position
// in the slice (first = highest).
type SortTerm struct {
	Column int
	Desc   bool
}

// Pagination describes the loaded window within the full result.
type Pagination struct {
	Offset      int
	Total       int
	Approximate bool
}
