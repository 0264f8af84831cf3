package gateway

import (
	"context"
	"net/url"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// GetEmergencies lists the patient's emergencies in the order the API returns them
func (c *Client) GetEmergencies(ctx context.Context) ([]models.Emergency, error) {
	return getList[models.Emergency](ctx, c, "/emergencies/")
}

// CreateEmergency raises a new emergency alert
func (c *Client) CreateEmergency(ctx context.Context, req models.EmergencyRequest) (models.EmergencyCreated, error) {
	created := models.EmergencyCreated{}
	err := c.post(ctx, "/emergencies/", req, &created)
	return created, err
}

// GetEmergency fetches a single emergency
func (c *Client) GetEmergency(ctx context.Context, id string) (models.Emergency, error) {
	e := models.Emergency{}
	err := c.get(ctx, "/emergencies/"+url.PathEscape(id)+"/", &e)
	return e, err
}

// UpdateEmergencyStatus asks the API to move an emergency to another status
func (c *Client) UpdateEmergencyStatus(ctx context.Context, id string, update models.StatusUpdate) (models.CommandResult, error) {
	result := models.CommandResult{}
	err := c.post(ctx, itemPath("/emergencies/", id, "update-status/"), update, &result)
	return result, err
}

// CompleteEmergency marks an emergency resolved
func (c *Client) CompleteEmergency(ctx context.Context, id string, completion models.Completion) (models.CommandResult, error) {
	result := models.CommandResult{}
	err := c.post(ctx, itemPath("/emergencies/", id, "complete/"), completion, &result)
	return result, err
}

// GetEmergencyNotifications lists the notifications sent for an emergency
func (c *Client) GetEmergencyNotifications(ctx context.Context, id string) ([]models.Notification, error) {
	return getList[models.Notification](ctx, c, itemPath("/emergencies/", id, "notifications/"), "notifications")
}
