package models

import "time"

// Notification holds a notification created by the API for an emergency
type Notification struct {
	ID                   string     `json:"id"`
	Emergency            string     `json:"emergency,omitempty"`
	EmergencyDescription string     `json:"emergency_description,omitempty"`
	NotificationType     string     `json:"notification_type"`
	RecipientType        string     `json:"recipient_type"`
	Status               string     `json:"status"`
	Title                string     `json:"title"`
	Message              string     `json:"message"`
	HospitalName         string     `json:"hospital_name,omitempty"`
	UserName             string     `json:"user_name,omitempty"`
	EmergencyContactName string     `json:"emergency_contact_name,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	ReadAt               *time.Time `json:"read_at,omitempty"`
}

// Read reports whether the notification has been marked read
func (n Notification) Read() bool {
	return n.Status == "READ" || n.ReadAt != nil
}

// UnreadNotifications is the body of the unread endpoint
type UnreadNotifications struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
}
