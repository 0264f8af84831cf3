package gateway

import (
	"context"
	"net/http"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// GetUserProfile returns the signed in user
func (c *Client) GetUserProfile(ctx context.Context) (models.User, error) {
	user := models.User{}
	err := c.get(ctx, "/users/profile/", &user)
	return user, err
}

// UpdateProfile patches the editable profile fields
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	return c.Request(ctx, http.MethodPatch, "/users/update-profile/", update, nil)
}

// GetEmergencyHistory lists every emergency raised by userID
func (c *Client) GetEmergencyHistory(ctx context.Context, userID string) ([]models.Emergency, error) {
	return getList[models.Emergency](ctx, c, itemPath("/users/", userID, "emergency-history/"), "emergencies")
}
