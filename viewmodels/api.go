// Package viewmodels turns API reads and commands into what a page shows.
// View-models hold no state between calls; every command is followed by a
// fresh read so a page never shows a status the API did not report.
package viewmodels

// go generate: mockery --name API

import (
	"context"
	"errors"

	"github.com/linesmerrill/emergency-dashboard/models"
)

var (
	// ErrActionNotAllowed is returned when the emergency's current status does not offer the action
	ErrActionNotAllowed = errors.New("action not allowed in current status")
	// ErrNotConfirmed is returned by a delete that was not confirmed
	ErrNotConfirmed = errors.New("deletion not confirmed")
	// ErrInvalidPriority is returned for a priority outside LOW, MEDIUM, HIGH and CRITICAL
	ErrInvalidPriority = errors.New("invalid priority")
)

// EmergencyAPI is what the emergency view-model needs from the gateway
type EmergencyAPI interface {
	GetEmergencies(ctx context.Context) ([]models.Emergency, error)
	CreateEmergency(ctx context.Context, req models.EmergencyRequest) (models.EmergencyCreated, error)
	GetEmergency(ctx context.Context, id string) (models.Emergency, error)
	UpdateEmergencyStatus(ctx context.Context, id string, update models.StatusUpdate) (models.CommandResult, error)
	CompleteEmergency(ctx context.Context, id string, completion models.Completion) (models.CommandResult, error)
	GetEmergencyNotifications(ctx context.Context, id string) ([]models.Notification, error)
	GetEmergencyHistory(ctx context.Context, userID string) ([]models.Emergency, error)
}

// HospitalAPI is what the hospital view-model needs from the gateway
type HospitalAPI interface {
	GetHospitals(ctx context.Context) ([]models.Hospital, error)
	CreateHospital(ctx context.Context, h models.Hospital) (models.Hospital, error)
	GetNearbyHospitals(ctx context.Context, search models.NearbySearch) ([]models.Hospital, error)
	RespondToEmergency(ctx context.Context, hospitalID string, resp models.EmergencyResponse) (models.CommandResult, error)
}

// ContactAPI is what the contact view-model needs from the gateway
type ContactAPI interface {
	GetEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error)
	CreateEmergencyContact(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error)
	UpdateEmergencyContact(ctx context.Context, id string, contact models.EmergencyContact) (models.EmergencyContact, error)
	DeleteEmergencyContact(ctx context.Context, id string) error
}

// NotificationAPI is what the notification view-model needs from the gateway
type NotificationAPI interface {
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetUnreadNotifications(ctx context.Context) (models.UnreadNotifications, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// AmbulanceAPI is what the ambulance view-model needs from the gateway
type AmbulanceAPI interface {
	GetAmbulances(ctx context.Context) ([]models.Ambulance, error)
	GetAvailableAmbulances(ctx context.Context) ([]models.Ambulance, error)
	CreateAmbulance(ctx context.Context, a models.Ambulance) (models.Ambulance, error)
}

// ProfileAPI is what the profile view-model needs from the gateway
type ProfileAPI interface {
	GetUserProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

// DashboardAPI is what the dashboard view-model needs from the gateway
type DashboardAPI interface {
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
	GetEmergencies(ctx context.Context) ([]models.Emergency, error)
}

// API is the whole gateway surface used by the view-models
type API interface {
	EmergencyAPI
	HospitalAPI
	ContactAPI
	NotificationAPI
	AmbulanceAPI
	ProfileAPI
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}
