package divsheet

import "fmt"

// Clear clears the output columns over span, including any value left right below it.
//
// It returns the number of cleared columns, zero when span is empty. Clear and Write
// address the same columns, so a shorter ticker list never leaves stale rows behind.
func Clear(sheet Sheet, span RangeSpan) (int, error) {
	if span.Empty() {
		return 0, nil
	}
	cleared := 0
	for _, f := range OutputFields() {
		col := ColumnOf(f)
		stragglers, err := sheet.ReadColumn(col, span.Last+1)
		if err != nil {
			return cleared, fmt.Errorf("reading %s column: %w", f, err)
		}
		if err := sheet.ClearRange(col, span.Start, span.Last+len(stragglers)); err != nil {
			return cleared, fmt.Errorf("clearing %s column: %w", f, err)
		}
		cleared++
	}
	return cleared, nil
}

// Write writes batch in the output columns, one record per row starting at startRow.
// An empty batch writes nothing.
func Write(sheet Sheet, batch Batch, startRow int) error {
	if len(batch) == 0 {
		return nil
	}
	for _, f := range OutputFields() {
		if err := sheet.WriteColumn(ColumnOf(f), startRow, batch.Column(f)); err != nil {
			return fmt.Errorf("writing %s column: %w", f, err)
		}
	}
	return nil
}
