package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paydesk/paydesk/internal/api"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/storage"
	"github.com/paydesk/paydesk/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open an interactive, searchable table over a resource list.

Search is debounced, status and pages cycle with single keys, and the
wallet balance refreshes on a timer while the dashboard is open.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("resource", "transactions",
		"resource to browse (transactions, ledger, aeps, tds, wallet, fund-requests, beneficiaries)")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	resource, _ := cmd.Flags().GetString("resource")

	var cfg tui.Config
	switch resource {
	case "transactions":
		cfg = dashboardConfig(a, transactionsSpec(), "Transactions")
	case "ledger":
		cfg = dashboardConfig(a, ledgerSpec(), "Wallet Ledger")
	case "aeps":
		cfg = dashboardConfig(a, aepsSpec(), "AEPS Transactions")
	case "tds":
		cfg = dashboardConfig(a, tdsSpec(), "Commission / TDS Report")
	case "wallet":
		cfg = dashboardConfig(a, walletHistorySpec(), "Wallet History")
	case "fund-requests":
		cfg = dashboardConfig(a, fundRequestSpec(), "Fund Requests")
	case "beneficiaries":
		cfg = dashboardConfig(a, beneficiarySpec(), "Beneficiaries")
	default:
		return common.NewUserError(fmt.Sprintf("unknown resource %q", resource), nil)
	}

	return tui.Run(cmd.Context(), cfg)
}

// dashboardConfig wires one resource spec into the dashboard: fetch maps
// rows to display items, export performs the dedicated full re-fetch,
// and the balance line polls the wallet.
func dashboardConfig[R storage.Cacheable](a *app, spec listSpec[R], title string) tui.Config {
	headers := make([]string, len(spec.columns))
	for i, col := range spec.columns {
		headers[i] = col.Header
	}

	return tui.Config{
		Title:         title,
		Columns:       headers,
		PageSize:      pageSize(),
		DebounceDelay: viper.GetDuration("search.debounce"),
		PollInterval:  viper.GetDuration("wallet.poll_interval"),

		Fetch: func(ctx context.Context) ([]tui.Item, error) {
			rows, err := spec.fetch(ctx, a, listview.Query{})
			if err != nil {
				return nil, err
			}
			if cacheErr := storage.CacheRows(ctx, a.cache, spec.cacheAs, a.claims.SubjectID, rows); cacheErr != nil {
				common.LogError(cacheErr, "failed to refresh offline cache", common.Fields{"resource": spec.cacheAs})
			}

			items := make([]tui.Item, len(rows))
			for i, row := range rows {
				items[i] = tui.Item{
					ID:     row.RowID(),
					Time:   row.RowTime(),
					Status: row.RowStatus(),
					Cells:  export.CellStrings(row, spec.columns),
				}
			}
			return items, nil
		},

		Export: func([]tui.Item) (string, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			source := func(ctx context.Context, q listview.Query) ([]R, error) {
				return spec.fetch(ctx, a, q)
			}
			rows, err := api.FetchAll(ctx, source, listview.Query{}, nil)
			if err != nil {
				return "", err
			}
			return export.WriteXLSX(exportDir(), spec.report, time.Now(), rows, spec.columns)
		},

		Balance: func(ctx context.Context) (string, error) {
			balance, err := a.client.Balance(ctx, a.claims.SubjectID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Wallet: Rs. %s  ·  AEPS: Rs. %s  ·  as of %s",
				balance.Balance.String(), balance.AEPS.String(),
				balance.FetchedAt.Format("15:04:05")), nil
		},
	}
}
