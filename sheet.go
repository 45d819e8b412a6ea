package divsheet

// Named ranges the tracker workbook must define.
const (
	TargetCurrencyName = "TARGET_CURRENCY"
	TickerName         = "TICKER"
	TimestampName      = "TIMESTAMP"
)

// Cell is the position and text value of a single cell.
type Cell struct {
	Row   int // 1-based
	Col   int // 1-based
	Value string
}

// RangeSpan is the interval of rows [Start, Last] holding ticker data.
type RangeSpan struct {
	Start int
	Last  int
}

// Empty reports whether nothing was previously written in the span.
func (s RangeSpan) Empty() bool { return s.Last <= s.Start }

// Sheet is the access to the tracker spreadsheet.
//
// Rows and columns are 1-based. A blank cell reads as "".
type Sheet interface {
	// ReadNamedRange returns the first cell of a named range.
	ReadNamedRange(name string) (Cell, error)
	// WriteNamedRange sets the value of the first cell of a named range.
	WriteNamedRange(name string, value any) error
	// ReadColumn returns the text of the cells of column col from startRow down to,
	// excluding, the first blank cell.
	ReadColumn(col, startRow int) ([]string, error)
	// LastRow returns the last non blank row of column col, or 0 if the column is empty.
	LastRow(col int) (int, error)
	// ClearRange clears the cells of column col from fromRow to toRow included.
	ClearRange(col, fromRow, toRow int) error
	// WriteColumn writes values in column col, one per row, starting at startRow.
	// A nil value clears its cell.
	WriteColumn(col, startRow int, values []any) error
}
