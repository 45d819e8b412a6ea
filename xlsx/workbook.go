// Package xlsx gives access to the tracker workbook stored as an .xlsx file.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/etnz/divsheet"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the name of the tracker sheet.
const DefaultSheet = "Portfolio"

// Workbook is a divsheet.Sheet backed by an excelize file.
//
// Changes are kept in memory until Save is called.
type Workbook struct {
	file  *excelize.File
	path  string
	sheet string
}

// Open opens the workbook at path, using its sheet named sheet (DefaultSheet if empty).
func Open(path, sheet string) (*Workbook, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	if i, err := f.GetSheetIndex(sheet); err != nil || i < 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %q has no sheet %q", path, sheet)
	}
	return &Workbook{file: f, path: path, sheet: sheet}, nil
}

// Create creates a new tracker workbook at path with the named ranges and column headers
// of a tracker, target currency set to target.
func Create(path, sheet, target string) (*Workbook, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f := excelize.NewFile()
	w := &Workbook{file: f, path: path, sheet: sheet}
	if err := w.layout(target); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot create workbook %q: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot save workbook %q: %w", path, err)
	}
	return w, nil
}

func (w *Workbook) layout(target string) error {
	f := w.file
	if err := f.SetSheetName("Sheet1", w.sheet); err != nil {
		return err
	}
	cells := map[string]any{
		"C1": "Last refresh",
		"F1": "Currency",
		"G1": target,
	}
	for _, fld := range divsheet.Fields() {
		cell, err := excelize.CoordinatesToCellName(divsheet.ColumnOf(fld), 3)
		if err != nil {
			return err
		}
		cells[cell] = Header(fld)
	}
	for cell, v := range cells {
		if err := f.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	names := map[string]string{
		divsheet.TimestampName:      "$D$1",
		divsheet.TargetCurrencyName: "$G$1",
		divsheet.TickerName:         "$B$3",
	}
	for name, ref := range names {
		err := f.SetDefinedName(&excelize.DefinedName{Name: name, RefersTo: w.sheet + "!" + ref})
		if err != nil {
			return err
		}
	}
	return nil
}

// Header returns the column header of field f, e.g. "Current Price".
func Header(f divsheet.Field) string {
	words := strings.Split(f.String(), "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Path returns the file path of the workbook.
func (w *Workbook) Path() string { return w.path }

// Save writes the workbook back to its file.
func (w *Workbook) Save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("cannot save workbook %q: %w", w.path, err)
	}
	return nil
}

// Close releases the workbook without saving.
func (w *Workbook) Close() error { return w.file.Close() }

// definedName returns the sheet and first cell a workbook name refers to.
func (w *Workbook) definedName(name string) (sheet, cell string, err error) {
	for _, dn := range w.file.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != w.sheet {
			continue
		}
		return parseRef(dn.RefersTo, w.sheet)
	}
	return "", "", fmt.Errorf("named range %q is not defined", name)
}

// parseRef parses references like Portfolio!$B$3 or 'My Sheet'!$B$3:$B$9 into the
// sheet and the first cell, e.g. "B3". sheet is the default when ref has none.
func parseRef(ref, sheet string) (string, string, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		sheet = strings.Trim(ref[:i], "'")
		ref = ref[i+1:]
	}
	ref, _, _ = strings.Cut(ref, ":")
	cell := strings.ReplaceAll(ref, "$", "")
	if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
		return "", "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return sheet, cell, nil
}

// ReadNamedRange implements divsheet.Sheet.
func (w *Workbook) ReadNamedRange(name string) (divsheet.Cell, error) {
	sheet, cell, err := w.definedName(name)
	if err != nil {
		return divsheet.Cell{}, err
	}
	col, row, _ := excelize.CellNameToCoordinates(cell)
	v, err := w.file.GetCellValue(sheet, cell)
	if err != nil {
		return divsheet.Cell{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return divsheet.Cell{Row: row, Col: col, Value: v}, nil
}

// WriteNamedRange implements divsheet.Sheet.
func (w *Workbook) WriteNamedRange(name string, value any) error {
	sheet, cell, err := w.definedName(name)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// ReadColumn implements divsheet.Sheet. Numbers are read as their displayed text.
func (w *Workbook) ReadColumn(col, startRow int) ([]string, error) {
	var values []string
	for row := startRow; ; row++ {
		v, err := w.get(col, row)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(v) == "" {
			return values, nil
		}
		values = append(values, strings.TrimSpace(v))
	}
}

// LastRow implements divsheet.Sheet.
func (w *Workbook) LastRow(col int) (int, error) {
	rows, err := w.file.GetRows(w.sheet)
	if err != nil {
		return 0, fmt.Errorf("reading sheet %q: %w", w.sheet, err)
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) >= col && strings.TrimSpace(rows[i][col-1]) != "" {
			return i + 1, nil
		}
	}
	return 0, nil
}

// ClearRange implements divsheet.Sheet.
func (w *Workbook) ClearRange(col, fromRow, toRow int) error {
	for row := fromRow; row <= toRow; row++ {
		if err := w.set(col, row, nil); err != nil {
			return err
		}
	}
	return nil
}

// WriteColumn implements divsheet.Sheet.
func (w *Workbook) WriteColumn(col, startRow int, values []any) error {
	for i, v := range values {
		if err := w.set(col, startRow+i, v); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) get(col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return w.file.GetCellValue(w.sheet, cell)
}

// set sets a cell value, nil clears the cell.
func (w *Workbook) set(col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if v == nil {
		v = ""
	}
	return w.file.SetCellValue(w.sheet, cell, v)
}
