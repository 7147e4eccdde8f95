package api

import (
	"context"
	"fmt"
	"net/url"
)

// Login exchanges credentials for a user record and bearer token.
func (c *Client) Login(ctx context.Context, creds LoginCredentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, "POST", "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and logs it in. An empty Role is left to the
// backend, which defaults to USER.
func (c *Client) Register(ctx context.Context, data RegisterData) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, "POST", "/auth/register", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the authenticated user's record.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var resp ProfileResponse
	if err := c.doJSON(ctx, "GET", "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ForgotPassword requests a password-reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, "POST", "/auth/forgot-password", body, nil)
}

// ResetPassword sets a new password using a reset token from email.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return c.doJSON(ctx, "POST", "/auth/reset-password", body, nil)
}

// VerifyResetToken checks whether a password-reset token is still valid.
func (c *Client) VerifyResetToken(ctx context.Context, token string) error {
	return c.doJSON(ctx, "GET", "/auth/verify-reset-token/"+url.PathEscape(token), nil, nil)
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.doJSON(ctx, "PUT", "/auth/change-password", body, nil)
}

// GoogleAuthURL is the provider-authorization URL for the external-identity
// login flow. The provider redirects back to the client's callback with a
// token and user payload.
func (c *Client) GoogleAuthURL() string {
	return fmt.Sprintf("%s/auth/google", c.BaseURL)
}
