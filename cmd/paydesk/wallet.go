package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/export"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

func walletHistorySpec() listSpec[model.WalletEntry] {
	return listSpec[model.WalletEntry]{
		report:  "Wallet_History",
		cacheAs: "wallet",
		columns: export.WalletColumns(),
		fetch: func(ctx context.Context, a *app, q listview.Query) ([]model.WalletEntry, error) {
			return a.client.WalletHistory(ctx, a.claims.SubjectID, q)
		},
	}
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show the wallet balance",
		RunE:  runWallet,
	}

	cmd.Flags().Bool("watch", false, "keep polling the balance until interrupted")

	history := &cobra.Command{
		Use:   "history",
		Short: "List wallet top-ups and settlements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, walletHistorySpec())
		},
	}
	listFlags(history)
	cmd.AddCommand(history)

	return cmd
}

func runWallet(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	watch, _ := cmd.Flags().GetBool("watch")

	show := func(balance *model.WalletBalance, err error) {
		if err != nil {
			fmt.Println(cli.FormatWarning(common.UserMessage(err)))
			return
		}
		fmt.Printf("%s  main: Rs. %s  aeps: Rs. %s\n",
			cli.SubtleStyle.Render(balance.FetchedAt.Format("15:04:05")),
			balance.Balance.String(), balance.AEPS.String())
	}

	if !watch {
		balance, err := a.client.Balance(cmd.Context(), a.claims.SubjectID)
		if err != nil {
			return common.NewUserError("failed to fetch balance", err)
		}
		show(balance, nil)
		return nil
	}

	interval := viper.GetDuration("wallet.poll_interval")
	if interval <= 0 {
		interval = 30 * time.Second
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Polling balance every %s, ctrl+c to stop", interval)))
	a.client.PollBalance(cmd.Context(), a.claims.SubjectID, interval, show)
	return nil
}
