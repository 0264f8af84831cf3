package models

import "time"

// Priority is the urgency a patient attaches to an emergency alert
type Priority string

// Priorities accepted by the emergencies endpoint
const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Priorities lists every priority in ascending urgency, used to build form options
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Emergency holds the structure of an emergency record as returned by the API
type Emergency struct {
	ID                   string     `json:"id"`
	Patient              string     `json:"patient,omitempty"`
	PatientName          string     `json:"patient_name,omitempty"`
	Priority             Priority   `json:"priority"`
	Status               Status     `json:"status"`
	Description          string     `json:"description"`
	LocationLatitude     string     `json:"location_latitude,omitempty"`
	LocationLongitude    string     `json:"location_longitude,omitempty"`
	LocationAddress      string     `json:"location_address,omitempty"`
	AssignedHospital     string     `json:"assigned_hospital,omitempty"`
	HospitalName         string     `json:"hospital_name,omitempty"`
	EstimatedArrivalTime *time.Time `json:"estimated_arrival_time,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	ResponseNotes        string     `json:"response_notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// Location returns the address when one was entered, otherwise the coordinates
func (e Emergency) Location() string {
	if e.LocationAddress != "" {
		return e.LocationAddress
	}
	if e.LocationLatitude != "" || e.LocationLongitude != "" {
		return e.LocationLatitude + ", " + e.LocationLongitude
	}
	return "GPS Location"
}

// ShortID is the first eight characters of the id, used as a display reference
func (e Emergency) ShortID() string {
	if len(e.ID) <= 8 {
		return e.ID
	}
	return e.ID[:8]
}

// EmergencyRequest is the body sent to create a new emergency. Coordinates
// are decimal-degree strings and are left out entirely when no location
// could be resolved.
type EmergencyRequest struct {
	Priority          Priority `json:"priority"`
	Description       string   `json:"description"`
	LocationAddress   string   `json:"location_address"`
	LocationLatitude  string   `json:"location_latitude,omitempty"`
	LocationLongitude string   `json:"location_longitude,omitempty"`
}

// EmergencyCreated is the response of a successful create
type EmergencyCreated struct {
	Emergency         Emergency `json:"emergency"`
	NotificationsSent int       `json:"notifications_sent"`
	Message           string    `json:"message"`
}

// StatusUpdate is the body of the update-status command
type StatusUpdate struct {
	Status               Status     `json:"status"`
	ResponseNotes        string     `json:"response_notes,omitempty"`
	EstimatedArrivalTime *time.Time `json:"estimated_arrival_time,omitempty"`
}

// Completion is the body of the complete command
type Completion struct {
	CompletionNotes string `json:"completion_notes"`
}

// EmergencyResponse is the body a hospital sends when it takes an emergency
type EmergencyResponse struct {
	EmergencyID             string `json:"emergency_id"`
	EstimatedArrivalMinutes Count  `json:"estimated_arrival_minutes"`
	ResponseNotes           string `json:"response_notes,omitempty"`
}

// CommandResult is the envelope returned by emergency commands
type CommandResult struct {
	Emergency Emergency `json:"emergency"`
	Message   string    `json:"message"`
}
