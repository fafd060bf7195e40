package store

import (
	"context"
	"sort"
	"time"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// Upserter writes client records: whole-row append on create, column-scoped
// patch on update. It never overwrites columns the caller did not name.
type Upserter struct {
	Sheet SheetAPI
	Clock func() time.Time
}

func NewUpserter(s SheetAPI) *Upserter {
	return &Upserter{Sheet: s, Clock: time.Now}
}

// Create appends one row for the record, filling every field the record
// leaves unset with its registry default. Callers must have resolved the
// email to ErrNotFound first; duplicates are not re-checked here.
func (u *Upserter) Create(ctx context.Context, rec *entity.ClientRecord) error {
	if rec.LastUpdateAt == "" {
		rec.LastUpdateAt = u.Clock().Format(sheet.TimeLayout)
	}
	return u.Sheet.Append(ctx, RowFromRecord(rec))
}

// Patch writes only the named columns of the row, plus last_update_at,
// in one batched call. Keys not present in the registry are dropped so an
// unknown field from a newer front-end never breaks the write.
func (u *Upserter) Patch(ctx context.Context, rowIndex int, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == sheet.FieldLastUpdateAt || !sheet.IsRegistered(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	cells := make([]sheet.Cell, 0, len(names)+1)
	for _, name := range names {
		col, err := sheet.ColumnOf(name)
		if err != nil {
			return err
		}
		cells = append(cells, sheet.Cell{Col: col, Value: fields[name]})
	}

	// last_update_at is stamped on every write, supplied or not
	tsCol, err := sheet.ColumnOf(sheet.FieldLastUpdateAt)
	if err != nil {
		return err
	}
	cells = append(cells, sheet.Cell{Col: tsCol, Value: u.Clock().Format(sheet.TimeLayout)})

	return u.Sheet.WriteCells(ctx, rowIndex, cells)
}
