package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func aepsSpec() listSpec[model.Transaction] {
	return listSpec[model.Transaction]{
		report:  "AEPS_Transactions",
		cacheAs: "aeps",
		columns: export.TransactionColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.Transaction, error) {
			return a.client.AEPSTransactions(ctx, a.claims.SubjectID, q)
		},
	}
}

func aepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aeps",
		Short: "List AEPS transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, aepsSpec())
		},
	}

	listFlags(cmd)

	return cmd
}
