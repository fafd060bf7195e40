package store

import (
	"context"
	"strings"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// SheetAPI is the slice of the sheet client the store layer needs.
type SheetAPI interface {
	ReadAll(ctx context.Context) ([]sheet.Row, error)
	Append(ctx context.Context, values []string) error
	WriteCells(ctx context.Context, rowIndex int, cells []sheet.Cell) error
}

// Resolver finds the row backing an email. Linear scan over the whole
// sheet; O(n) in clients, which is the known scaling bound of this store.
type Resolver struct {
	Sheet SheetAPI
}

func NewResolver(s SheetAPI) *Resolver {
	return &Resolver{Sheet: s}
}

// FindByEmail returns the 1-based sheet row and decoded record for the
// email, matched case-insensitively. A backend failure is returned as-is,
// never collapsed into ErrNotFound, so callers cannot mistake a transient
// outage for "no such user".
func (r *Resolver) FindByEmail(ctx context.Context, email string) (int, *entity.ClientRecord, error) {
	rows, err := r.Sheet.ReadAll(ctx)
	if err != nil {
		return 0, nil, err
	}

	want := strings.ToLower(strings.TrimSpace(email))
	for _, row := range rows {
		got := strings.ToLower(strings.TrimSpace(row.Values[sheet.FieldEmail]))
		if got != "" && got == want {
			return row.Index, RecordFromRow(row.Values), nil
		}
	}
	return 0, nil, entity.ErrNotFound
}
