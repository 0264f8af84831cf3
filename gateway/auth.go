package gateway

import (
	"context"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Register creates a patient account. A token in the response is persisted
// and held for later requests.
func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	resp := models.AuthResponse{}
	if err := c.postAnonymous(ctx, "/auth/register/", reg, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	c.holdToken(ctx, resp.Token)
	return resp, nil
}

// Login exchanges credentials for a session token. Any token already held
// is not sent and is replaced on success.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp := models.AuthResponse{}
	if err := c.postAnonymous(ctx, "/auth/login/", creds, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	c.holdToken(ctx, resp.Token)
	return resp, nil
}

// Logout asks the API to revoke the token, then forgets it locally whatever
// the API said. The remote error, if any, is returned after the local clear.
func (c *Client) Logout(ctx context.Context) error {
	remoteErr := c.post(ctx, "/auth/logout/", nil, nil)
	if err := c.setToken(ctx, ""); err != nil {
		zap.S().Errorw("failed to clear stored token", "error", err)
	}
	return remoteErr
}

// ClearToken forgets the held token without contacting the API
func (c *Client) ClearToken(ctx context.Context) error {
	return c.setToken(ctx, "")
}

func (c *Client) holdToken(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := c.setToken(ctx, token); err != nil {
		zap.S().Errorw("failed to persist session token", "error", err)
	}
}
