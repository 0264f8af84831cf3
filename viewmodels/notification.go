package viewmodels

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Notifications is the notification view-model
type Notifications struct {
	api NotificationAPI
}

// NewNotifications returns the notification view-model
func NewNotifications(api NotificationAPI) *Notifications {
	return &Notifications{api: api}
}

// Inbox is the notifications page
type Inbox struct {
	All    []models.Notification
	Unread int
}

// Inbox reads every notification and the unread count
func (n *Notifications) Inbox(ctx context.Context) (Inbox, error) {
	all, err := n.api.GetNotifications(ctx)
	if err != nil {
		return Inbox{}, err
	}
	unread := 0
	for _, item := range all {
		if !item.Read() {
			unread++
		}
	}
	return Inbox{All: all, Unread: unread}, nil
}

// Unread returns the unread notifications as the API counts them
func (n *Notifications) Unread(ctx context.Context) (models.UnreadNotifications, error) {
	return n.api.GetUnreadNotifications(ctx)
}

// MarkRead marks one notification read and re-reads the inbox
func (n *Notifications) MarkRead(ctx context.Context, id string) (Inbox, error) {
	if err := n.api.MarkNotificationRead(ctx, id); err != nil {
		return Inbox{}, err
	}
	return n.Inbox(ctx)
}

// MarkAllRead marks everything read and re-reads the inbox
func (n *Notifications) MarkAllRead(ctx context.Context) (Inbox, error) {
	if err := n.api.MarkAllNotificationsRead(ctx); err != nil {
		return Inbox{}, err
	}
	return n.Inbox(ctx)
}
