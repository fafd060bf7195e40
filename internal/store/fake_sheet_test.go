package store_test

import (
	"context"
	"fmt"

	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// fakeSheet is an in-memory stand-in for the Sheets backend: a header row
// plus positional data rows, with switchable failure modes.
type fakeSheet struct {
	header []string
	rows   [][]string

	readErr   error
	appendErr error
	writeErr  error

	// writeErrOnce makes exactly the next WriteCells fail, to exercise
	// the single immediate retry
	writeErrOnce error

	appendCalls int
	writeCalls  []writeCall
}

type writeCall struct {
	rowIndex int
	cells    []sheet.Cell
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{header: sheet.Header()}
}

func (f *fakeSheet) ReadAll(ctx context.Context) ([]sheet.Row, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]sheet.Row, 0, len(f.rows))
	for i, raw := range f.rows {
		values := make(map[string]string, len(f.header))
		for j, name := range f.header {
			if j < len(raw) {
				values[name] = raw[j]
			} else {
				values[name] = ""
			}
		}
		out = append(out, sheet.Row{Index: i + 2, Values: values})
	}
	return out, nil
}

func (f *fakeSheet) Append(ctx context.Context, values []string) error {
	f.appendCalls++
	if f.appendErr != nil {
		return f.appendErr
	}
	row := make([]string, len(values))
	copy(row, values)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeSheet) WriteCells(ctx context.Context, rowIndex int, cells []sheet.Cell) error {
	f.writeCalls = append(f.writeCalls, writeCall{rowIndex: rowIndex, cells: cells})
	if f.writeErrOnce != nil {
		err := f.writeErrOnce
		f.writeErrOnce = nil
		return err
	}
	if f.writeErr != nil {
		return f.writeErr
	}

	i := rowIndex - 2
	if i < 0 || i >= len(f.rows) {
		return fmt.Errorf("%w: row %d out of range", sheet.ErrWrite, rowIndex)
	}
	for _, c := range cells {
		for len(f.rows[i]) <= c.Col {
			f.rows[i] = append(f.rows[i], "")
		}
		f.rows[i][c.Col] = c.Value
	}
	return nil
}

// cell reads one stored cell by field name.
func (f *fakeSheet) cell(t interface{ Fatalf(string, ...interface{}) }, rowIndex int, field string) string {
	col, err := sheet.ColumnOf(field)
	if err != nil {
		t.Fatalf("unknown field %s: %v", field, err)
	}
	row := f.rows[rowIndex-2]
	if col >= len(row) {
		return ""
	}
	return row[col]
}
