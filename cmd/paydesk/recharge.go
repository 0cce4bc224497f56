package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paydesk/paydesk/internal/api"
	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/forms"
)

func rechargeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recharge",
		Short: "Place a mobile recharge or bill payment",
	}

	do := &cobra.Command{
		Use:   "do",
		Short: "Place a recharge",
		RunE:  runRecharge,
	}
	do.Flags().String("operator", "", "operator code (see `paydesk recharge operators`)")
	do.Flags().String("circle", "", "telecom circle code")
	do.Flags().String("account", "", "10-digit mobile number")
	do.Flags().String("amount", "", "recharge amount")

	operators := &cobra.Command{
		Use:   "operators",
		Short: "List recharge operators",
		RunE:  runOperators,
	}
	operators.Flags().String("service", "PREPAID", "service type (PREPAID, POSTPAID, DTH, BILL)")

	circles := &cobra.Command{
		Use:   "circles",
		Short: "List telecom circles",
		RunE:  runCircles,
	}

	cmd.AddCommand(do, operators, circles)

	return cmd
}

func runRecharge(cmd *cobra.Command, _ []string) error {
	operator, _ := cmd.Flags().GetString("operator")
	circle, _ := cmd.Flags().GetString("circle")
	account, _ := cmd.Flags().GetString("account")
	amount, _ := cmd.Flags().GetString("amount")

	// Validation failures block the network call.
	draft := forms.Draft{
		"operator": operator,
		"circle":   circle,
		"account":  account,
		"amount":   amount,
	}
	if errs := forms.ValidateRecharge(draft); !errs.OK() {
		return errs.AsError()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tx, err := a.client.Recharge(cmd.Context(), a.claims.SubjectID, api.RechargeRequest{
		Operator: operator,
		Circle:   circle,
		Account:  account,
		Amount:   amount,
	})
	if err != nil {
		return common.NewUserError("recharge failed", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recharge %s: %s for Rs. %s",
		tx.Status, tx.Account, tx.Amount.String())))
	fmt.Println(cli.SubtleStyle.Render("Transaction ID: " + tx.ID))
	return nil
}

func runOperators(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	svc, _ := cmd.Flags().GetString("service")
	operators, err := a.client.Operators(cmd.Context(), svc)
	if err != nil {
		return common.NewUserError("failed to fetch operators", err)
	}
	if len(operators) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No operators found"))
		return nil
	}

	rows := make([][]string, len(operators))
	for i, op := range operators {
		rows[i] = []string{op.Code, op.Name, op.Service}
	}
	fmt.Print(cli.RenderTable([]string{"Code", "Name", "Service"}, rows))
	return nil
}

func runCircles(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	circles, err := a.client.Circles(cmd.Context())
	if err != nil {
		return common.NewUserError("failed to fetch circles", err)
	}
	if len(circles) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No circles found"))
		return nil
	}

	rows := make([][]string, len(circles))
	for i, c := range circles {
		rows[i] = []string{c.Code, c.Name}
	}
	fmt.Print(cli.RenderTable([]string{"Code", "Name"}, rows))
	return nil
}
