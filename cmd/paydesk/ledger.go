package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func ledgerSpec() listSpec[model.LedgerEntry] {
	return listSpec[model.LedgerEntry]{
		report:  "Ledger",
		cacheAs: "ledger",
		columns: export.LedgerColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.LedgerEntry, error) {
			return a.client.Ledger(ctx, a.claims.SubjectID, q)
		},
	}
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List the wallet ledger with running balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, ledgerSpec())
		},
	}

	listFlags(cmd)

	return cmd
}
