package gateway

import (
	"context"
	"encoding/json"

	"github.com/linesmerrill/emergency-dashboard/models"
)

const unreadPath = "/notifications/unread/"

// GetNotifications lists all notifications for the patient
func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return getList[models.Notification](ctx, c, "/notifications/", "notifications")
}

// GetUnreadNotifications returns the unread notifications and their count.
// A bare array is accepted too, in which case the count is its length.
func (c *Client) GetUnreadNotifications(ctx context.Context) (models.UnreadNotifications, error) {
	var raw json.RawMessage
	if err := c.get(ctx, unreadPath, &raw); err != nil {
		return models.UnreadNotifications{}, err
	}
	list, err := unwrap[models.Notification](c, unreadPath, raw, "notifications")
	if err != nil {
		return models.UnreadNotifications{}, err
	}

	unread := models.UnreadNotifications{Notifications: list, Count: len(list)}
	var envelope struct {
		Count *int `json:"count"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Count != nil {
		unread.Count = *envelope.Count
	}
	return unread, nil
}

// MarkNotificationRead marks one notification read
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.post(ctx, itemPath("/notifications/", id, "mark-read/"), nil, nil)
}

// MarkAllNotificationsRead marks every notification read
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/mark-all-read/", nil, nil)
}
