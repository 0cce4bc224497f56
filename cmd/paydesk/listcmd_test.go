package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListCmd(t *testing.T, args map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	listFlags(cmd)
	for name, value := range args {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestParseListFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := parseListFlags(newListCmd(t, nil))
		require.NoError(t, err)

		assert.True(t, opts.filter.StartDate.IsZero())
		assert.True(t, opts.filter.EndDate.IsZero())
		assert.Equal(t, "ALL", opts.filter.Status)
		assert.Equal(t, 1, opts.page)
		assert.Equal(t, 10, opts.pageSize)
		assert.False(t, opts.doExport)
		assert.False(t, opts.offline)
	})

	t.Run("full flag set", func(t *testing.T) {
		opts, err := parseListFlags(newListCmd(t, map[string]string{
			"from":      "2026-03-01",
			"to":        "2026-03-15",
			"status":    "FAILED",
			"search":    "airtel",
			"page":      "3",
			"page-size": "25",
			"export":    "true",
			"offline":   "true",
		}))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), opts.filter.StartDate)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), opts.filter.EndDate)
		assert.Equal(t, "FAILED", opts.filter.Status)
		assert.Equal(t, "airtel", opts.filter.Search)
		assert.Equal(t, 3, opts.page)
		assert.Equal(t, 25, opts.pageSize)
		assert.True(t, opts.doExport)
		assert.True(t, opts.offline)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := parseListFlags(newListCmd(t, map[string]string{"from": "01/03/2026"}))
		assert.Error(t, err)
	})

	t.Run("from after to", func(t *testing.T) {
		_, err := parseListFlags(newListCmd(t, map[string]string{
			"from": "2026-03-15",
			"to":   "2026-03-01",
		}))
		assert.Error(t, err)
	})
}
