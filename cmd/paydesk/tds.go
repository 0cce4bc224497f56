package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func tdsSpec() listSpec[model.CommissionRecord] {
	return listSpec[model.CommissionRecord]{
		report:  "TDS_Report",
		cacheAs: "commissions",
		columns: export.CommissionColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.CommissionRecord, error) {
			return a.client.Commissions(ctx, a.claims.SubjectID, q)
		},
	}
}

func tdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tds",
		Short: "List the commission and TDS report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, tdsSpec())
		},
	}

	listFlags(cmd)

	return cmd
}
