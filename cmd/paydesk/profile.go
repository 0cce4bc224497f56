package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/forms"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE:  runChangePassword,
	})

	return cmd
}

func runChangePassword(cmd *cobra.Command, _ []string) error {
	prompt := func(label string) (string, error) {
		fmt.Print(label + ": ")
		value, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(value), err
	}

	oldPassword, err := prompt("Current password")
	if err != nil {
		return err
	}
	newPassword, err := prompt("New password")
	if err != nil {
		return err
	}
	confirm, err := prompt("Confirm new password")
	if err != nil {
		return err
	}

	draft := forms.Draft{
		"old":     oldPassword,
		"new":     newPassword,
		"confirm": confirm,
	}
	if errs := forms.ValidatePasswordChange(draft); !errs.OK() {
		return errs.AsError()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
		return common.NewUserError("password not changed", err)
	}

	fmt.Println(cli.FormatSuccess("Password changed"))
	return nil
}
