package main

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
	"github.com/paydesk/paydesk/internal/session"
	"github.com/paydesk/paydesk/internal/storage"
)

func testApp(t *testing.T) *app {
	t.Helper()

	cache, err := storage.NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	store := &session.MemoryStore{}
	require.NoError(t, store.SetToken("tok-123"))

	return &app{
		store:  store,
		claims: &session.Claims{SubjectID: "RET001"},
		cache:  cache,
	}
}

func fetchSpec(rows []model.Transaction, err error) listSpec[model.Transaction] {
	return listSpec[model.Transaction]{
		report:  "Transactions",
		cacheAs: "transactions",
		columns: export.TransactionColumns(),
		fetch: func(context.Context, *app, listview.Query) ([]model.Transaction, error) {
			return rows, err
		},
	}
}

func TestLoadRows(t *testing.T) {
	ctx := context.Background()

	t.Run("session error is fatal and clears the store", func(t *testing.T) {
		a := testApp(t)
		spec := fetchSpec(nil, fmt.Errorf("%w: server rejected token (401)", common.ErrSessionExpired))

		rows, notice, err := loadRows(ctx, a, spec, listview.Query{}, false)
		assert.ErrorIs(t, err, common.ErrSessionExpired)
		assert.Empty(t, rows)
		assert.Empty(t, notice, "auth failures must not degrade to a notice frame")

		_, tokenErr := a.store.Token()
		assert.ErrorIs(t, tokenErr, common.ErrNoSession)
	})

	t.Run("network error degrades to a notice", func(t *testing.T) {
		a := testApp(t)
		spec := fetchSpec(nil, fmt.Errorf("%w: connection refused", common.ErrAPIUnavailable))

		rows, notice, err := loadRows(ctx, a, spec, listview.Query{}, false)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NotEmpty(t, notice)

		_, tokenErr := a.store.Token()
		assert.NoError(t, tokenErr, "network failures keep the session")
	})

	t.Run("success caches for offline use", func(t *testing.T) {
		a := testApp(t)
		fetched := []model.Transaction{{ID: "T1"}}
		spec := fetchSpec(fetched, nil)

		rows, notice, err := loadRows(ctx, a, spec, listview.Query{}, false)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Empty(t, notice)

		cached, notice, err := loadRows(ctx, a, spec, listview.Query{}, true)
		require.NoError(t, err)
		assert.Len(t, cached, 1)
		assert.Contains(t, notice, "offline data")
	})

	t.Run("empty offline cache reports itself", func(t *testing.T) {
		a := testApp(t)
		spec := fetchSpec(nil, nil)

		rows, notice, err := loadRows(ctx, a, spec, listview.Query{}, true)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Contains(t, notice, "offline cache is empty")
	})
}
