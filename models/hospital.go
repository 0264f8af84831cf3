package models

// Hospital holds the structure of a facility in the hospital directory.
// Coordinates travel as decimal strings. DistanceToUser is only set on
// nearby search results.
type Hospital struct {
	ID                   string   `json:"id,omitempty"`
	Name                 string   `json:"name"`
	RegistrationNumber   string   `json:"registration_number"`
	PhoneNumber          string   `json:"phone_number"`
	Email                string   `json:"email"`
	Website              string   `json:"website"`
	Address              string   `json:"address"`
	City                 string   `json:"city"`
	State                string   `json:"state"`
	Pincode              string   `json:"pincode"`
	Latitude             string   `json:"latitude"`
	Longitude            string   `json:"longitude"`
	HasEmergencyServices bool     `json:"has_emergency_services"`
	HasAmbulance         bool     `json:"has_ambulance"`
	Operates24x7         bool     `json:"operates_24x7"`
	TotalAmbulances      Count    `json:"total_ambulances"`
	AvailableAmbulances  Count    `json:"available_ambulances"`
	Specializations      string   `json:"specializations"`
	DistanceToUser       *float64 `json:"distance_to_user,omitempty"`
}

// NearbySearch is the body of the nearby hospitals search
type NearbySearch struct {
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	RadiusKM              int     `json:"radius_km"`
	EmergencyServicesOnly bool    `json:"emergency_services_only"`
}
