package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/service"
)

// Cacheable is a row that can round-trip through the cache: the list
// surface plus a stable identifier.
type Cacheable interface {
	listview.Row
	RowID() string
}

// CacheRows serializes a fetched row set into the cache, replacing the
// previous set for this resource and viewer.
func CacheRows[R Cacheable](ctx context.Context, cache service.RowCache, resource, subjectID string, rows []R) error {
	cached := make([]service.CachedRow, 0, len(rows))
	for _, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode row %s: %w", row.RowID(), err)
		}
		cached = append(cached, service.CachedRow{
			ID:        row.RowID(),
			CreatedAt: row.RowTime(),
			Payload:   payload,
		})
	}

	return cache.ReplaceRows(ctx, resource, subjectID, cached)
}

// LoadRows decodes the cached set for this resource and viewer,
// returning the rows and the last sync time.
func LoadRows[R any](ctx context.Context, cache service.RowCache, resource, subjectID string) ([]R, time.Time, error) {
	cached, syncedAt, err := cache.Rows(ctx, resource, subjectID)
	if err != nil {
		return nil, time.Time{}, err
	}

	rows := make([]R, 0, len(cached))
	for _, c := range cached {
		var row R
		if err := json.Unmarshal(c.Payload, &row); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to decode cached row %s: %w", c.ID, err)
		}
		rows = append(rows, row)
	}

	return rows, syncedAt, nil
}
