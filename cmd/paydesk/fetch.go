package main

import (
	"context"

	"github.com/schollz/progressbar/v3"

	"github.com/paydesk/paydesk/internal/api"
	"github.com/paydesk/paydesk/internal/listview"
)

// fetchAllWithProgress exhausts a paginated source, advancing the
// spinner as pages arrive.
func fetchAllWithProgress[R listview.Row](ctx context.Context, source listview.Source[R], q listview.Query, bar *progressbar.ProgressBar) ([]R, error) {
	last := 0
	return api.FetchAll(ctx, source, q, func(fetched int) {
		_ = bar.Add(fetched - last)
		last = fetched
	})
}
