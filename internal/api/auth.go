package api

import (
	"context"
	"fmt"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, userID, password string) (string, error) {
	var data struct {
		AccessToken string `json:"access_token"`
	}

	body := map[string]string{
		"user_id":  userID,
		"password": password,
	}
	if err := c.post(ctx, "/auth/login", body, &data); err != nil {
		return "", err
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("login succeeded but no access token was returned")
	}

	c.logger.Info("Logged in", "user_id", userID)
	return data.AccessToken, nil
}

// ChangePassword updates the account password. The new password is
// validated client-side before this call.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.post(ctx, "/profile/password", body, nil)
}
