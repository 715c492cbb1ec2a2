package api

import (
	"context"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login/", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register/", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword changes the current user's password.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/api/users/change-password/", change, nil)
}
