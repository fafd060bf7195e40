package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// patchWithRetry issues the column-scoped patch with at most one immediate
// retry on a rejected write. No backoff queue: after the retry the error
// surfaces to the user.
func patchWithRetry(ctx context.Context, store ClientStore, rowIndex int, fields map[string]string) error {
	err := store.Patch(ctx, rowIndex, fields)
	if err != nil && errors.Is(err, sheet.ErrWrite) {
		err = store.Patch(ctx, rowIndex, fields)
	}
	return err
}
