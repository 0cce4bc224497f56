package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/storage"
)

// listSpec parameterizes one resource command: endpoint fetch, export
// column mapping, and naming. Every list command instantiates the same
// pipeline with one of these instead of reimplementing it.
type listSpec[R storage.Cacheable] struct {
	fetch   func(ctx context.Context, a *app, q listview.Query) ([]R, error)
	report  string
	cacheAs string
	columns []export.Column[R]
}

// listFlags registers the flags every list command shares.
func listFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().String("status", "ALL", "status filter (ALL, SUCCESS, PENDING, FAILED)")
	cmd.Flags().String("search", "", "free-text search over the fetched rows")
	cmd.Flags().Int("page", 1, "page to display")
	cmd.Flags().Int("page-size", 0, "rows per page")
	cmd.Flags().Bool("export", false, "export the full filtered set to a spreadsheet")
	cmd.Flags().Bool("offline", false, "list from the offline cache instead of the API")
}

// listOptions is the parsed flag state.
type listOptions struct {
	filter   listview.Filter
	page     int
	pageSize int
	doExport bool
	offline  bool
}

func parseListFlags(cmd *cobra.Command) (listOptions, error) {
	opts := listOptions{}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	status, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("search")
	opts.page, _ = cmd.Flags().GetInt("page")
	opts.pageSize, _ = cmd.Flags().GetInt("page-size")
	opts.doExport, _ = cmd.Flags().GetBool("export")
	opts.offline, _ = cmd.Flags().GetBool("offline")

	if opts.pageSize <= 0 {
		opts.pageSize = pageSize()
	}

	var err error
	opts.filter.StartDate, err = parseDate(from)
	if err != nil {
		return opts, common.NewUserError("invalid --from date, expected YYYY-MM-DD", err)
	}
	opts.filter.EndDate, err = parseDate(to)
	if err != nil {
		return opts, common.NewUserError("invalid --to date, expected YYYY-MM-DD", err)
	}
	// Start after end never reaches the filter layer.
	if !opts.filter.StartDate.IsZero() && !opts.filter.EndDate.IsZero() &&
		opts.filter.StartDate.After(opts.filter.EndDate) {
		return opts, common.NewUserError("--from must not be after --to", nil)
	}

	opts.filter.Status = status
	opts.filter.Search = search

	return opts, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// runList executes the shared pipeline: guard (done by the caller via
// newApp), fetch or cache load, filter/sort, then either render one page
// or export the full filtered set.
func runList[R storage.Cacheable](cmd *cobra.Command, spec listSpec[R]) error {
	opts, err := parseListFlags(cmd)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()

	if opts.doExport {
		return exportList(ctx, a, spec, opts)
	}

	rows, notice, err := loadRows(ctx, a, spec, listview.Query{
		StartDate: opts.filter.StartDate,
		EndDate:   opts.filter.EndDate,
		Status:    opts.filter.Status,
	}, opts.offline)
	if err != nil {
		return err
	}

	filtered := listview.Apply(rows, opts.filter)

	total := listview.TotalPages(len(filtered), opts.pageSize)
	current := listview.ClampPage(opts.page, total)
	page := listview.PageSlice(filtered, current, opts.pageSize)

	if notice != "" {
		fmt.Println(cli.FormatWarning(notice))
	}

	if len(page) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions found"))
		return nil
	}

	headers := make([]string, len(spec.columns))
	for i, col := range spec.columns {
		headers[i] = col.Header
	}
	cells := make([][]string, len(page))
	for i, row := range page {
		cells[i] = export.CellStrings(row, spec.columns)
	}

	fmt.Print(cli.RenderTable(headers, cells))
	fmt.Println()
	fmt.Printf("%s  %s\n",
		cli.RenderPageButtons(listview.PageButtons(current, total), current),
		cli.SubtleStyle.Render(fmt.Sprintf("page %d of %d, %d rows", current, total, len(filtered))))

	return nil
}

// loadRows fetches from the API (caching on success) or reads the
// offline cache. Network failures degrade to an empty set with a notice,
// but authentication failures are fatal: the command returns the error
// and renders nothing.
func loadRows[R storage.Cacheable](ctx context.Context, a *app, spec listSpec[R], q listview.Query, offline bool) ([]R, string, error) {
	if offline {
		rows, syncedAt, err := storage.LoadRows[R](ctx, a.cache, spec.cacheAs, a.claims.SubjectID)
		if err != nil {
			return nil, "offline cache unavailable: " + common.UserMessage(err), nil
		}
		if syncedAt.IsZero() {
			return nil, "offline cache is empty; run without --offline first", nil
		}
		return rows, fmt.Sprintf("offline data, last synced %s", syncedAt.Format("02 Jan 2006 15:04")), nil
	}

	rows, err := spec.fetch(ctx, a, q)
	if err != nil {
		if common.IsSessionError(err) {
			_ = a.store.Clear()
			return nil, "", fmt.Errorf("%w (run `paydesk login`)", err)
		}
		return nil, common.UserMessage(err), nil
	}

	if err := storage.CacheRows(ctx, a.cache, spec.cacheAs, a.claims.SubjectID, rows); err != nil {
		common.LogError(err, "failed to refresh offline cache", common.Fields{"resource": spec.cacheAs})
	}

	return rows, "", nil
}

// exportList writes the full filtered set (a dedicated re-fetch that
// ignores display pagination) as a spreadsheet.
func exportList[R storage.Cacheable](ctx context.Context, a *app, spec listSpec[R], opts listOptions) error {
	var rows []R
	var err error

	if opts.offline {
		rows, _, err = storage.LoadRows[R](ctx, a.cache, spec.cacheAs, a.claims.SubjectID)
		if err != nil {
			return common.NewUserError("offline cache unavailable", err)
		}
	} else {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Fetching "+spec.report),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		source := func(ctx context.Context, q listview.Query) ([]R, error) {
			return spec.fetch(ctx, a, q)
		}
		rows, err = fetchAllWithProgress(ctx, source, listview.Query{
			StartDate: opts.filter.StartDate,
			EndDate:   opts.filter.EndDate,
			Status:    opts.filter.Status,
		}, bar)
		_ = bar.Finish()
		if err != nil {
			return common.NewUserError("failed to fetch rows for export", err)
		}
	}

	filtered := listview.Apply(rows, opts.filter)

	path, err := export.WriteXLSX(exportDir(), spec.report, time.Now(), filtered, spec.columns)
	if err != nil {
		if errors.Is(err, common.ErrNoData) {
			fmt.Println(cli.FormatWarning("No Data: nothing to export"))
			return nil
		}
		return common.NewUserError("export failed", err)
	}

	fmt.Println(cli.FormatSuccess("Exported " + path))
	return nil
}
