package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/session"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the portal and store the session token",
		RunE:  runLogin,
	}

	cmd.Flags().StringP("user", "u", "", "retailer user ID")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := newAnonymousApp()
	if err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		fmt.Print("User ID: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
		userID = strings.TrimSpace(line)
	}
	if userID == "" {
		return common.NewUserError("user ID is required", nil)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	token, err := a.client.Login(cmd.Context(), userID, string(password))
	if err != nil {
		return common.NewUserError("login failed", err)
	}

	if err := a.store.SetToken(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	claims, err := session.DecodeClaims(token)
	if err != nil {
		// The token is stored either way; the claims are display only.
		fmt.Println(cli.FormatSuccess("Logged in"))
		return nil
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Welcome, %s. Session valid until %s.",
		claims.DisplayName, claims.ExpiresAt.Format("02 Jan 2006 15:04"))))
	fmt.Println(cli.SubtleStyle.Render("Run `paydesk dashboard` to get started."))
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := config.DataDir()
			if err != nil {
				return err
			}
			if err := session.NewFileStore(dir).Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's claims",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := config.DataDir()
			if err != nil {
				return err
			}

			claims, _, err := session.Guard(session.NewFileStore(dir), "", time.Now())
			if err != nil {
				return fmt.Errorf("%w (run `paydesk login`)", err)
			}

			content := fmt.Sprintf("User ID: %s\nName:    %s\nRole:    %s\nExpires: %s",
				claims.SubjectID, claims.DisplayName, claims.Role,
				claims.ExpiresAt.Format("02 Jan 2006 15:04"))
			fmt.Println(cli.RenderBox("Session", content))
			return nil
		},
	}
}
