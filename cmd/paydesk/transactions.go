package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func transactionsSpec() listSpec[model.Transaction] {
	return listSpec[model.Transaction]{
		report:  "Transactions",
		cacheAs: "transactions",
		columns: export.TransactionColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.Transaction, error) {
			return a.client.Transactions(ctx, a.claims.SubjectID, q)
		},
	}
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recharge and bill-payment transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if txID, _ := cmd.Flags().GetString("receipt"); txID != "" {
				return writeReceipt(cmd, txID, false)
			}
			if txID, _ := cmd.Flags().GetString("print"); txID != "" {
				return writeReceipt(cmd, txID, true)
			}
			return runList(cmd, transactionsSpec())
		},
	}

	listFlags(cmd)
	cmd.Flags().String("receipt", "", "write a PDF receipt for the given transaction ID")
	cmd.Flags().String("print", "", "write a printable HTML receipt for the given transaction ID")

	return cmd
}

// writeReceipt renders one transaction's full detail as a PDF or a
// printable HTML document. The transaction is looked up in the offline
// cache first, then via the API.
func writeReceipt(cmd *cobra.Command, txID string, printable bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	tx, err := findTransaction(ctx, a, txID)
	if err != nil {
		return err
	}

	var path string
	if printable {
		path, err = export.WritePrintable(exportDir(), *tx, time.Now())
	} else {
		path, err = export.WriteReceipt(exportDir(), *tx, time.Now())
	}
	if err != nil {
		return common.NewUserError("receipt generation failed", err)
	}

	if printable {
		fmt.Println(cli.FormatSuccess("Wrote " + path + " (open in a browser to print)"))
	} else {
		fmt.Println(cli.FormatSuccess("Wrote " + path))
	}
	return nil
}

func findTransaction(ctx context.Context, a *app, txID string) (*model.Transaction, error) {
	spec := transactionsSpec()

	cached, _, _ := loadRows(ctx, a, spec, listview.Query{}, true)
	for _, tx := range cached {
		if tx.ID == txID {
			return &tx, nil
		}
	}

	rows, err := a.client.Transactions(ctx, a.claims.SubjectID, listview.Query{})
	if err != nil {
		return nil, common.NewUserError("failed to look up transaction", err)
	}
	for _, tx := range rows {
		if tx.ID == txID {
			return &tx, nil
		}
	}

	return nil, common.NewUserError(fmt.Sprintf("transaction %s not found", txID), common.ErrNotFound)
}
