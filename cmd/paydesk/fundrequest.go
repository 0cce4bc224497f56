package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/api"
	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/forms"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func fundRequestSpec() listSpec[model.FundRequest] {
	return listSpec[model.FundRequest]{
		report:  "Fund_Requests",
		cacheAs: "fund_requests",
		columns: export.FundRequestColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.FundRequest, error) {
			return a.client.FundRequests(ctx, a.claims.SubjectID, q)
		},
	}
}

func fundRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-request",
		Short: "Manage wallet fund requests",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List fund requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, fundRequestSpec())
		},
	}
	listFlags(list)

	add := &cobra.Command{
		Use:   "add",
		Short: "Submit a fund request",
		RunE:  runFundRequestAdd,
	}
	add.Flags().String("bank", "", "bank deposited into")
	add.Flags().String("mode", "", "deposit mode (IMPS, NEFT, CASH)")
	add.Flags().String("utr", "", "bank UTR / reference number")
	add.Flags().String("amount", "", "deposited amount")
	add.Flags().String("remark", "", "optional remark")

	cmd.AddCommand(list, add)

	return cmd
}

func runFundRequestAdd(cmd *cobra.Command, _ []string) error {
	bank, _ := cmd.Flags().GetString("bank")
	mode, _ := cmd.Flags().GetString("mode")
	utr, _ := cmd.Flags().GetString("utr")
	amount, _ := cmd.Flags().GetString("amount")
	remark, _ := cmd.Flags().GetString("remark")

	draft := forms.Draft{
		"bank":   bank,
		"mode":   mode,
		"utr":    utr,
		"amount": amount,
	}
	if errs := forms.ValidateFundRequest(draft); !errs.OK() {
		return errs.AsError()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	request, err := a.client.CreateFundRequest(cmd.Context(), a.claims.SubjectID, api.FundRequestInput{
		Bank:   bank,
		Mode:   mode,
		UTR:    utr,
		Amount: amount,
		Remark: remark,
	})
	if err != nil {
		return common.NewUserError("fund request failed", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Fund request %s submitted for Rs. %s (%s)",
		request.ID, request.Amount.String(), request.Status)))
	return nil
}
